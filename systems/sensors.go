package systems

import (
	"github.com/automoto/hookshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateSensors(ecs *ecs.ECS) {
	dt := step(ecs)
	components.Sensor.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Sensor.Get(e)
		s.LastDelta = s.Tick(dt)
	})
}
