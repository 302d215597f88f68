package components

import (
	"github.com/automoto/hookshot/hook"
	"github.com/yohamta/donburi"
)

type HookData struct {
	*hook.Controller
}

var Hook = donburi.NewComponentType[HookData]()
