package sim

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Loop steps a World in real time on a ticker.
type Loop struct {
	world    *World
	tickRate int
	maxTicks int
	log      zerolog.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop runs world at tickRate steps per second until maxTicks steps have
// run. maxTicks <= 0 runs until stopped.
func NewLoop(world *World, tickRate, maxTicks int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		world:    world,
		tickRate: tickRate,
		maxTicks: maxTicks,
		log:      world.log,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the tick budget is spent, Stop is called or ctx ends.
// Only ctx ending is reported as an error.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.Info().Int("tickrate", l.tickRate).Msg("loop started")

	for {
		select {
		case <-ctx.Done():
			l.log.Info().Int("ticks", l.world.Ticks()).Msg("loop cancelled")
			return ctx.Err()
		case <-l.stopChan:
			l.log.Info().Int("ticks", l.world.Ticks()).Msg("loop stopped")
			return nil
		case <-ticker.C:
			l.world.Step()
			if l.maxTicks > 0 && l.world.Ticks() >= l.maxTicks {
				l.log.Info().Int("ticks", l.world.Ticks()).Msg("loop finished")
				return nil
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
