package systems

import (
	"math"

	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/gamemath"
	"github.com/automoto/hookshot/hook"
	"github.com/automoto/hookshot/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity, friction and velocity for every body
// with PhysicsData, resolving against solids one axis at a time. Bodies on
// the end of a travelling hook are positioned by the hook and skipped.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := step(ecs)
	space := spaceOf(ecs)
	if space == nil || dt <= 0 {
		return
	}
	hooked := hookedBodies(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e).Object
		if !obj.Active() || hooked[obj] {
			return
		}
		p := components.Physics.Get(e)

		if p.OnGround != nil && p.Friction > 0 {
			p.SpeedX = gamemath.ApplyFriction(p.SpeedX, p.Friction*dt)
		}

		p.SpeedY -= p.Gravity * dt
		if p.MaxFall > 0 {
			p.SpeedY = math.Max(p.SpeedY, -p.MaxFall)
		}

		if _, hit := space.MoveX(obj, p.SpeedX*dt); hit != nil {
			p.SpeedX = 0
		}

		p.OnGround = nil
		if _, hit := space.MoveY(obj, p.SpeedY*dt); hit != nil {
			if p.SpeedY < 0 {
				p.OnGround = hit
			}
			p.SpeedY = 0
		}
	})
}

// hookedBodies collects the bodies currently being pulled by a hook.
func hookedBodies(ecs *ecs.ECS) map[physics.Body]bool {
	out := map[physics.Body]bool{}
	components.Hook.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Hook.Get(e)
		if ctrl.State() == hook.Traveling && ctrl.Session() != nil {
			out[ctrl.Session().Body] = true
		}
	})
	return out
}

func spaceOf(ecs *ecs.ECS) *physics.Space {
	if e, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(e)
	}
	return nil
}
