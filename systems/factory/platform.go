package factory

import (
	"github.com/automoto/hookshot/archetypes"
	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/leveldata"
	"github.com/automoto/hookshot/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingObstacle adds an obstacle that slides Travel units along its
// axis and back, Period seconds per leg.
func CreateFloatingObstacle(ecs *ecs.ECS, f leveldata.Floater) *donburi.Entry {
	floater := archetypes.FloatingObstacle.Spawn(ecs)
	obj := addBox(ecs, floater, f.Rect, tags.LayerObstacle, tags.ResolvSolid, tags.ResolvObstacle)

	axis := components.TweenY
	from := obj.Y
	if f.Axis == "x" {
		axis = components.TweenX
		from = obj.X
	}
	to := from + f.Travel

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(from), float32(to), float32(f.Period), ease.InOutSine),
		gween.New(float32(to), float32(from), float32(f.Period), ease.InOutSine),
	)
	components.Tween.Set(floater, tw)
	components.TweenTarget.SetValue(floater, axis)

	return floater
}
