package components

import (
	"github.com/automoto/hookshot/movement"
	"github.com/automoto/hookshot/physics"
	"github.com/yohamta/donburi"
)

type AgentData struct {
	Name   string
	Mover  *movement.Mover
	Launch bool    // fling targets with a ballistic launch instead of pulling
	Apex   float64 // launch apex height above the block

	HookMask physics.LayerMask // layers worth hooking

	Target        physics.Body // body the agent is currently after
	RetryCooldown float64      // seconds until the next hook attempt
}

var Agent = donburi.NewComponentType[AgentData]()
