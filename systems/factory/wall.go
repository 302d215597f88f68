package factory

import (
	"github.com/automoto/hookshot/archetypes"
	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/leveldata"
	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround adds a solid box agents and blocks stand on.
func CreateGround(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	addBox(ecs, ground, r, tags.LayerGround, tags.ResolvSolid)
	return ground
}

// CreateObstacle adds a solid box that also blocks sight and hook lines.
func CreateObstacle(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	addBox(ecs, obstacle, r, tags.LayerObstacle, tags.ResolvSolid, tags.ResolvObstacle)
	return obstacle
}

// addBox creates the collision object for e and links both ways.
func addBox(ecs *ecs.ECS, e *donburi.Entry, r leveldata.Rect, layer physics.Layer, resolvTags ...string) *physics.Object {
	space := spaceOf(ecs)
	if space == nil {
		panic("factory: CreateSpace must run before spawning bodies")
	}
	obj := space.AddBody(r.Center(), r.W, r.H, layer, resolvTags...)
	obj.Owner = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}
