package systems

import (
	"github.com/automoto/hookshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateHooks(ecs *ecs.ECS) {
	dt := step(ecs)
	components.Hook.Each(ecs.World, func(e *donburi.Entry) {
		components.Hook.Get(e).Tick(dt)
	})
}
