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

// CreatePlayer adds a player body. Agents can see players but not hook them.
func CreatePlayer(ecs *ecs.ECS, s leveldata.Spawn, sim config.SimConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	addBox(ecs, player, s.Rect, tags.LayerPlayer, tags.ResolvPlayer)

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: sim.Gravity,
		MaxFall: sim.MaxFall,
	})
	return player
}
