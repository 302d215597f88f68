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

// hookRetry is how long an agent waits between hook attempts, in seconds.
const hookRetry = 0.5

// UpdateTargeting picks each agent's target from what its sensor sees.
// Hookables win over players. A target that drops out of view is only
// forgotten once the sensor's grace period runs out.
func UpdateTargeting(ecs *ecs.ECS) {
	dt := step(ecs)
	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		if agent.RetryCooldown > 0 {
			agent.RetryCooldown -= dt
		}

		ctrl := components.Hook.Get(e)
		if agent.Mover.IsStunned() || ctrl.State() == hook.Traveling {
			return
		}
		sens := components.Sensor.Get(e)

		if block := firstVisible(sens, agent.HookMask); block != nil {
			agent.Target = block
			ctrl.AssignTarget(block)
			sens.ResetLostTarget()
			if agent.RetryCooldown <= 0 {
				agent.RetryCooldown = hookRetry
				attempt(e, agent, ctrl.Controller, block)
			}
			return
		}

		if player := firstVisible(sens, tags.LayerPlayer.Mask()); player != nil {
			agent.Target = player
			sens.ResetLostTarget()
			return
		}

		if agent.Target != nil && sens.HasLostTarget() {
			agent.Target = nil
			ctrl.AssignTarget(nil)
			components.State.Get(e).Set(cfg.StateSearching)
		}
	})
}

// firstVisible queries one layer of mask at a time, lowest first.
func firstVisible(sens *components.SensorData, mask physics.LayerMask) physics.Body {
	for _, l := range mask.Layers() {
		b, err := sens.QueryByMask(l.Mask())
		if err == nil && b != nil {
			return b
		}
	}
	return nil
}

// attempt pulls or launches block. Failures surface through the
// controller's release notifications.
func attempt(e *donburi.Entry, agent *components.AgentData, ctrl *hook.Controller, block physics.Body) {
	anchor := components.Object.Get(e).Object
	if agent.Launch {
		_, _ = ctrl.Launch(anchor, block, agent.Apex)
		return
	}
	ctrl.Interact(anchor, block)
}
