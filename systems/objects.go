package systems

import (
	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves tweened platforms and syncs every object with the
// collision space.
func UpdateObjects(ecs *ecs.ECS) {
	dt := float32(step(ecs))
	tags.Floating.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Tween.Get(e)
		v, _, done := seq.Update(dt)
		obj := components.Object.Get(e)
		if *components.TweenTarget.Get(e) == components.TweenX {
			obj.X = float64(v)
		} else {
			obj.Y = float64(v)
		}
		if done {
			seq.Reset()
		}
	})

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
