package factory

import (
	"github.com/automoto/hookshot/archetypes"
	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/leveldata"
	"github.com/automoto/hookshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// blockFriction is how fast a landed block stops sliding, units/s^2.
const blockFriction = 600

// CreateBlock adds a hookable block that falls under gravity.
func CreateBlock(ecs *ecs.ECS, s leveldata.Spawn, sim config.SimConfig) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)
	addBox(ecs, block, s.Rect, tags.LayerHookable, tags.ResolvBlock)

	components.Block.SetValue(block, components.BlockData{Name: s.Name})
	components.Physics.SetValue(block, components.PhysicsData{
		Gravity:  sim.Gravity,
		MaxFall:  sim.MaxFall,
		Friction: blockFriction,
	})
	return block
}
