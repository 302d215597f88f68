package systems

import (
	"github.com/automoto/hookshot/components"
	cfg "github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/hook"
	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement drives each agent's mover from its state and current
// target, and hands the resulting velocity to physics.
func UpdateMovement(ecs *ecs.ECS) {
	dt := step(ecs)
	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		state := components.State.Get(e)
		mover := agent.Mover
		mover.Tick(dt)

		switch {
		case mover.IsStunned():
			state.Set(cfg.StateStunned)
		case components.Hook.Get(e).State() == hook.Traveling:
			state.Set(cfg.StateHooking)
			mover.Stop()
		case agent.Target != nil:
			state.Set(cfg.StateTracking)
			chase(agent, dt)
		default:
			state.Set(cfg.StateSearching)
			mover.Stop()
		}
		state.StateTimer++

		components.Physics.Get(e).SpeedX = mover.VelocityX()
	})
}

// chase walks up to players. Hookables are watched, and backed away from
// when too close to pull.
func chase(agent *components.AgentData, dt float64) {
	mover := agent.Mover
	if !agent.Target.Active() {
		mover.Stop()
		return
	}
	target := agent.Target.Position()
	mover.LookAt(target)
	if physics.HasLayer(agent.Target, agent.HookMask) {
		mover.Flee(target, dt)
		return
	}
	mover.Approach(target, dt)
}
