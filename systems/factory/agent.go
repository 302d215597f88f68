package factory

import (
	"fmt"

	"github.com/automoto/hookshot/archetypes"
	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/gamemath"
	"github.com/automoto/hookshot/hook"
	"github.com/automoto/hookshot/input"
	"github.com/automoto/hookshot/leveldata"
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/movement"
	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/sensor"
	"github.com/automoto/hookshot/tags"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAgent adds a hook-wielding agent with its own sensor, hook
// controller, mover and input bus.
func CreateAgent(ecs *ecs.ECS, s leveldata.AgentSpawn, t config.Tuning, log zerolog.Logger) (*donburi.Entry, error) {
	script, err := input.ParseScript(s.Script)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", s.Name, err)
	}

	agent := archetypes.Agent.Spawn(ecs)
	obj := addBox(ecs, agent, s.Rect, tags.LayerEnemy, tags.ResolvAgent)
	space := spaceOf(ecs)
	log = log.With().Str("agent", s.Name).Logger()

	bus := input.NewBus()
	mover := movement.New(t.Movement, obj, movement.WithLogger(log))
	mover.LookAt(obj.Position().Add(mathutil.Vec2{X: s.Facing}))
	mover.Listen(bus)

	sens := sensor.New(t.Sensor, mover, space, sensor.WithLogger(log))
	ctrl := hook.New(t.Hook, space, bus,
		hook.WithLogger(log),
		hook.WithGravity(t.Ballistic.Gravity),
	)
	ctrl.Subscribe(hook.Funcs{
		Completed: func(sess *hook.Session) { captureBlock(ecs, sess.Body) },
		Launch: func(sess *hook.Session, sol gamemath.LaunchSolution) {
			launchBlock(sess.Body, sol)
		},
	})

	components.Agent.SetValue(agent, components.AgentData{
		Name:     s.Name,
		Mover:    mover,
		Launch:   s.Launch,
		Apex:     t.Ballistic.ApexHeight,
		HookMask: t.Hook.TargetMask,
	})
	components.State.SetValue(agent, components.StateData{
		CurrentState:  config.StateSearching,
		PreviousState: config.StateNone,
	})
	components.Physics.SetValue(agent, components.PhysicsData{
		Gravity: t.Sim.Gravity,
		MaxFall: t.Sim.MaxFall,
	})
	components.Sensor.SetValue(agent, components.SensorData{Sensor: sens})
	components.Hook.SetValue(agent, components.HookData{Controller: ctrl})
	components.Input.SetValue(agent, components.InputData{
		Bus:    bus,
		Script: script,
	})

	return agent, nil
}

// captureBlock takes a fully pulled block out of play.
func captureBlock(ecs *ecs.ECS, b physics.Body) {
	obj, ok := b.(*physics.Object)
	if !ok {
		return
	}
	if e, ok := obj.Owner.(*donburi.Entry); ok && e.Valid() && e.HasComponent(components.Block) {
		components.Block.Get(e).Captured = true
	}
	if space := spaceOf(ecs); space != nil {
		space.RemoveBody(obj)
	}
}

// launchBlock hands a launch velocity to the block's physics.
func launchBlock(b physics.Body, sol gamemath.LaunchSolution) {
	obj, ok := b.(*physics.Object)
	if !ok {
		return
	}
	e, ok := obj.Owner.(*donburi.Entry)
	if !ok || !e.Valid() || !e.HasComponent(components.Physics) {
		return
	}
	p := components.Physics.Get(e)
	p.SpeedX = sol.InitialVelocity.X
	p.SpeedY = sol.InitialVelocity.Y
	p.OnGround = nil
}
