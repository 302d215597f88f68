package systems

import (
	"testing"

	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/hook"
	"github.com/automoto/hookshot/input"
	"github.com/automoto/hookshot/leveldata"
	"github.com/automoto/hookshot/systems/factory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 320, 160, 16, 16, 1)
	factory.CreateClock(e, 1.0/60)
	factory.CreateGround(e, leveldata.Rect{X: 0, Y: 0, W: 320, H: 16})
	return e
}

func run(e *ecs.ECS, n int, fns ...func(*ecs.ECS)) {
	for i := 0; i < n; i++ {
		for _, fn := range fns {
			fn(e)
		}
		UpdateClock(e)
	}
}

func all(e *ecs.ECS, n int) {
	run(e, n,
		UpdateInput,
		UpdateMovement,
		UpdatePhysics,
		UpdateSensors,
		UpdateTargeting,
		UpdateHooks,
		UpdateObjects,
	)
}

func spawnAgent(t *testing.T, e *ecs.ECS, x float64, script string) *donburi.Entry {
	t.Helper()
	a := leveldata.AgentSpawn{
		Spawn:  leveldata.Spawn{Name: "agent", Rect: leveldata.Rect{X: x, Y: 16, W: 16, H: 16}},
		Facing: 1,
		Script: script,
	}
	entry, err := factory.CreateAgent(e, a, config.Defaults(), zerolog.Nop())
	require.NoError(t, err)
	return entry
}

func spawnBlock(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateBlock(e, leveldata.Spawn{
		Name: "crate",
		Rect: leveldata.Rect{X: x, Y: y, W: 16, H: 16},
	}, config.Sim)
}

func TestPhysicsBlockLandsOnGround(t *testing.T) {
	e := newTestECS()
	block := spawnBlock(e, 100, 60)

	run(e, 60, UpdatePhysics)

	obj := components.Object.Get(block)
	p := components.Physics.Get(block)
	assert.InDelta(t, 16, obj.Y, 1e-9)
	assert.NotNil(t, p.OnGround)
	assert.Zero(t, p.SpeedY)
}

func TestPhysicsFrictionStopsSlide(t *testing.T) {
	e := newTestECS()
	block := spawnBlock(e, 100, 16)
	run(e, 1, UpdatePhysics)
	components.Physics.Get(block).SpeedX = 100

	run(e, 30, UpdatePhysics)
	assert.Zero(t, components.Physics.Get(block).SpeedX)
	assert.Greater(t, components.Object.Get(block).X, 100.0)
}

func TestInputFiresScriptThenInjected(t *testing.T) {
	e := newTestECS()
	agent := spawnAgent(t, e, 40, "jump@0.05,stun:0.5@0")

	var got []input.Event
	components.Input.Get(agent).Bus.Subscribe(func(ev input.Event) { got = append(got, ev) })

	run(e, 3, UpdateInput)
	require.Len(t, got, 1)
	assert.Equal(t, input.Stun, got[0].Kind)
	assert.Equal(t, components.Object.Get(agent).Object, got[0].Target)
	assert.True(t, components.Agent.Get(agent).Mover.IsStunned())

	run(e, 1, UpdateInput)
	require.Len(t, got, 2)
	assert.Equal(t, input.JumpPressed, got[1].Kind)

	assert.True(t, Inject(agent, input.Event{Kind: input.DashPressed}))
	assert.Len(t, got, 2, "injected events wait for the next update")
	run(e, 1, UpdateInput)
	require.Len(t, got, 3)
	assert.Equal(t, input.DashPressed, got[2].Kind)

	assert.False(t, Inject(nil, input.Event{}))
}

func TestHookedBlockSkipsPhysics(t *testing.T) {
	e := newTestECS()
	agent := spawnAgent(t, e, 40, "")
	block := spawnBlock(e, 120, 16)

	all(e, 1)
	ctrl := components.Hook.Get(agent)
	require.Equal(t, hook.Traveling, ctrl.State())
	assert.Equal(t, config.StateSearching, components.State.Get(agent).CurrentState)

	all(e, 1)
	assert.Equal(t, config.StateHooking, components.State.Get(agent).CurrentState)

	y := components.Object.Get(block).Y
	components.Physics.Get(block).SpeedY = 500
	run(e, 1, UpdatePhysics)
	assert.Equal(t, y, components.Object.Get(block).Y)
}

func TestStunnedAgentDoesNotHook(t *testing.T) {
	e := newTestECS()
	agent := spawnAgent(t, e, 40, "stun:1@0")
	spawnBlock(e, 120, 16)

	all(e, 10)
	assert.Equal(t, config.StateStunned, components.State.Get(agent).CurrentState)
	assert.Equal(t, hook.Idle, components.Hook.Get(agent).State())
}

func TestFloaterFollowsTween(t *testing.T) {
	e := newTestECS()
	f := factory.CreateFloatingObstacle(e, leveldata.Floater{
		Rect:   leveldata.Rect{X: 100, Y: 16, W: 16, H: 16},
		Axis:   "y",
		Travel: 32,
		Period: 0.5,
	})
	obj := components.Object.Get(f)

	run(e, 15, UpdateObjects)
	assert.InDelta(t, 32, obj.Y, 1)

	run(e, 15, UpdateObjects)
	assert.InDelta(t, 48, obj.Y, 0.5)

	run(e, 30, UpdateObjects)
	assert.InDelta(t, 16, obj.Y, 0.5)
	assert.Equal(t, 100.0, obj.X)
}
