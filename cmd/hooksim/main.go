package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/automoto/hookshot/assets"
	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/leveldata"
	"github.com/automoto/hookshot/logging"
	"github.com/automoto/hookshot/sim"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type options struct {
	configPath string
	level      string
	ticks      int
	tickRate   int
	worlds     int
	realtime   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Tuning file (YAML or JSON); HOOKSHOT_* env vars override it")
	flag.StringVar(&opts.level, "level", "yard", "Bundled arena name, or path to a .tmx file")
	flag.IntVar(&opts.ticks, "ticks", 600, "Steps to run per world")
	flag.IntVar(&opts.tickRate, "tickrate", 0, "Steps per second (0 = from config)")
	flag.IntVar(&opts.worlds, "worlds", 1, "Independent copies of the arena to run in parallel")
	flag.BoolVar(&opts.realtime, "realtime", false, "Step on a wall-clock ticker instead of as fast as possible")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, off)")
	jsonLogs := flag.Bool("json", false, "Log JSON lines instead of console output")
	flag.Parse()

	log := logging.New(os.Stderr, *logLevel, *jsonLogs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil {
		log.Error().Err(err).Msg("hooksim failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, log zerolog.Logger) error {
	if opts.worlds < 1 {
		return fmt.Errorf("-worlds must be at least 1, got %d", opts.worlds)
	}

	tuning, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.tickRate > 0 {
		tuning.Sim.TickRate = opts.tickRate
	}
	log.Info().Str("config", opts.configPath).Int("tickrate", tuning.Sim.TickRate).Msg("config loaded")

	arena, err := loadArena(opts.level)
	if err != nil {
		return err
	}

	worlds := make([]*sim.World, 0, opts.worlds)
	for i := 0; i < opts.worlds; i++ {
		w, err := sim.NewWorld(arena, *tuning, log)
		if err != nil {
			return err
		}
		worlds = append(worlds, w)
	}

	log.Info().
		Str("arena", arena.Name).
		Int("worlds", len(worlds)).
		Int("ticks", opts.ticks).
		Bool("realtime", opts.realtime).
		Msg("starting simulation")

	var reports []sim.Report
	if opts.realtime {
		reports, err = runRealtime(ctx, worlds, tuning.Sim.TickRate, opts.ticks)
	} else {
		reports, err = sim.RunBatch(ctx, worlds, opts.ticks)
	}
	if errors.Is(err, context.Canceled) {
		log.Warn().Msg("interrupted, reporting partial results")
		reports, err = snapshot(worlds), nil
	}
	if err != nil {
		return err
	}

	for _, r := range reports {
		log.Info().Object("report", r).Msg("world finished")
	}
	return nil
}

// runRealtime drives each world with its own Loop.
func runRealtime(ctx context.Context, worlds []*sim.World, tickRate, ticks int) ([]sim.Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range worlds {
		loop := sim.NewLoop(w, tickRate, ticks)
		g.Go(func() error { return loop.Run(ctx) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot(worlds), nil
}

func snapshot(worlds []*sim.World) []sim.Report {
	reports := make([]sim.Report, len(worlds))
	for i, w := range worlds {
		reports[i] = w.Report()
	}
	return reports
}

// loadArena reads a .tmx path from disk, or a bundled arena by name.
func loadArena(level string) (*leveldata.Arena, error) {
	if strings.HasSuffix(level, ".tmx") {
		if _, err := os.Stat(level); err == nil {
			return leveldata.LoadArena(os.DirFS(filepath.Dir(level)), filepath.Base(level))
		}
	}
	return assets.LoadArena(level)
}
