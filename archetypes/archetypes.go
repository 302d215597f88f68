package archetypes

import (
	"github.com/automoto/hookshot/components"
	cfg "github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	FloatingObstacle = newArchetype(
		tags.Obstacle,
		tags.Floating,
		components.Object,
		components.Tween,
		components.TweenTarget,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Object,
		components.Physics,
	)
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Physics,
	)
	Agent = newArchetype(
		tags.Agent,
		components.Agent,
		components.Object,
		components.Physics,
		components.State,
		components.Sensor,
		components.Hook,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
