package components

import (
	"github.com/automoto/hookshot/physics"
	"github.com/yohamta/donburi"
)

// Space is the singleton collision space every body lives in.
var Space = donburi.NewComponentType[physics.Space]()
