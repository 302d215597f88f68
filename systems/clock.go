package systems

import (
	"github.com/automoto/hookshot/components"
	"github.com/yohamta/donburi/ecs"
)

// step returns the fixed tick length, or zero when the world has no clock.
func step(ecs *ecs.ECS) float64 {
	if c := clock(ecs); c != nil {
		return c.Step
	}
	return 0
}

func clock(ecs *ecs.ECS) *components.ClockData {
	if e, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(e)
	}
	return nil
}

// UpdateClock advances the tick counter. It runs last.
func UpdateClock(ecs *ecs.ECS) {
	if c := clock(ecs); c != nil {
		c.Tick++
	}
}
