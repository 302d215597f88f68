// Package sim runs arenas headlessly: it spawns the ECS world for an arena,
// steps its systems on a fixed clock and reports what the agents did.
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/automoto/hookshot/components"
	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/gamemath"
	"github.com/automoto/hookshot/hook"
	"github.com/automoto/hookshot/input"
	"github.com/automoto/hookshot/leveldata"
	"github.com/automoto/hookshot/logging"
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/sensor"
	"github.com/automoto/hookshot/systems"
	"github.com/automoto/hookshot/systems/factory"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownAgent = errors.New("unknown agent")

// World is one arena's ECS world. It is not safe for concurrent use; a Loop
// or RunBatch owns it while running.
type World struct {
	ID   uuid.UUID
	Name string

	ecs    *ecs.ECS
	log    zerolog.Logger
	rec    *recorder
	agents map[string]*donburi.Entry
}

// NewWorld validates t and spawns everything in arena.
func NewWorld(arena *leveldata.Arena, t config.Tuning, log zerolog.Logger) (*World, error) {
	if arena == nil {
		return nil, errors.New("sim: nil arena")
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	w := &World{
		ID:     uuid.New(),
		Name:   arena.Name,
		agents: map[string]*donburi.Entry{},
	}
	w.log = logging.Component(log, "sim").With().
		Str("world", w.ID.String()).
		Str("arena", arena.Name).
		Logger()
	w.rec = newRecorder(w.ID, arena.Name)

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateSensors)
	e.AddSystem(systems.UpdateTargeting)
	e.AddSystem(systems.UpdateHooks)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateClock)
	w.ecs = e

	width, height := arena.Width, arena.Height
	if width <= 0 || height <= 0 {
		width, height = t.Sim.Width, t.Sim.Height
	}
	factory.CreateSpace(e, width, height, t.Sim.CellSize, t.Sim.CellSize, t.Sim.GroundProbe)
	factory.CreateClock(e, t.Sim.FixedStep())

	for _, r := range arena.Grounds {
		factory.CreateGround(e, r)
	}
	for _, r := range arena.Obstacles {
		factory.CreateObstacle(e, r)
	}
	for _, f := range arena.Floaters {
		factory.CreateFloatingObstacle(e, f)
	}
	for _, b := range arena.Blocks {
		factory.CreateBlock(e, b, t.Sim)
	}
	for _, p := range arena.Players {
		factory.CreatePlayer(e, p, t.Sim)
	}
	for _, a := range arena.Agents {
		if _, dup := w.agents[a.Name]; dup {
			return nil, fmt.Errorf("sim: duplicate agent %q", a.Name)
		}
		entry, err := factory.CreateAgent(e, a, t, w.log)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		w.agents[a.Name] = entry
		w.watch(a.Name, entry)
	}

	w.log.Info().
		Int("agents", len(arena.Agents)).
		Int("blocks", len(arena.Blocks)).
		Int("players", len(arena.Players)).
		Msg("world ready")
	return w, nil
}

// watch feeds an agent's sensor and hook notifications into the report.
func (w *World) watch(name string, e *donburi.Entry) {
	log := w.log.With().Str("agent", name).Logger()
	sampled := logging.Sampled(log)

	components.Sensor.Get(e).Subscribe(sensor.Funcs{
		Found: func(b physics.Body) {
			w.rec.update(func(r *Report) { r.Acquired++ })
			sampled.Debug().Str("body", bodyName(b)).Msg("target found")
		},
		Lost: func(b physics.Body) {
			w.rec.update(func(r *Report) { r.Lost++ })
			sampled.Debug().Str("body", bodyName(b)).Msg("target lost")
		},
	})

	components.Hook.Get(e).Subscribe(hook.Funcs{
		Move: func(s *hook.Session, pos mathutil.Vec2) {
			sampled.Trace().Str("session", s.ID.String()).Float64("x", pos.X).Float64("y", pos.Y).Msg("hook move")
		},
		Completed: func(s *hook.Session) {
			block := bodyName(s.Body)
			w.rec.update(func(r *Report) {
				r.Completed++
				r.Captured = append(r.Captured, block)
			})
			log.Info().Str("session", s.ID.String()).Str("block", block).Int("ticks", s.Ticks).Msg("hook completed")
		},
		Released: func(s *hook.Session, reason hook.ReleaseReason) {
			w.rec.released(reason)
		},
		Launch: func(s *hook.Session, sol gamemath.LaunchSolution) {
			w.rec.update(func(r *Report) { r.Launches++ })
			log.Info().
				Str("session", s.ID.String()).
				Str("block", bodyName(s.Body)).
				Float64("flight", sol.TimeToTarget).
				Msg("block launched")
		},
	})
}

// bodyName names a body by the entity that owns it.
func bodyName(b physics.Body) string {
	obj, ok := b.(*physics.Object)
	if !ok {
		return "unknown"
	}
	e, ok := obj.Owner.(*donburi.Entry)
	if !ok || !e.Valid() {
		return "unknown"
	}
	switch {
	case e.HasComponent(components.Block):
		return components.Block.Get(e).Name
	case e.HasComponent(components.Agent):
		return components.Agent.Get(e).Name
	}
	return fmt.Sprintf("entity%v", e.Entity())
}

// Step runs every system once.
func (w *World) Step() {
	w.ecs.Update()
	w.rec.update(func(r *Report) { r.Ticks++ })
}

// Run steps the world n times as fast as it can, stopping early if ctx ends.
func (w *World) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.Step()
	}
	return nil
}

// Ticks is how many steps have run.
func (w *World) Ticks() int {
	if e, ok := components.Clock.First(w.ecs.World); ok {
		return components.Clock.Get(e).Tick
	}
	return 0
}

// Report returns a snapshot of the counters.
func (w *World) Report() Report {
	return w.rec.snapshot()
}

func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

// Agent returns the named agent's entity.
func (w *World) Agent(name string) (*donburi.Entry, bool) {
	e, ok := w.agents[name]
	return e, ok
}

// Inject queues ev on the named agent's input bus for the next step.
func (w *World) Inject(agent string, ev input.Event) error {
	e, ok := w.agents[agent]
	if !ok || !systems.Inject(e, ev) {
		return fmt.Errorf("inject %s into %q: %w", ev.Kind, agent, ErrUnknownAgent)
	}
	return nil
}
