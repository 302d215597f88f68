package components

import (
	"github.com/automoto/hookshot/physics"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*physics.Object
}

var Object = donburi.NewComponentType[ObjectData]()
