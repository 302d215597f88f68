package factory

import (
	"github.com/automoto/hookshot/archetypes"
	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int, groundProbe float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := physics.NewSpace(width, height, cellWidth, cellHeight, groundProbe)
	components.Space.Set(space, spaceData)
	return space
}

// spaceOf returns the world's collision space, or nil before CreateSpace.
func spaceOf(ecs *ecs.ECS) *physics.Space {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(spaceEntry)
	}
	return nil
}

func CreateClock(ecs *ecs.ECS, step float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Step: step})
	return clock
}
