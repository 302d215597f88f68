package sensor

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/physics/physicstest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	layerWall physics.Layer = iota
	layerPlayer
	layerBlock
)

const dt = 1.0 / 60

func testConfig() config.SensorConfig {
	return config.SensorConfig{
		FieldOfViewDegrees: 90,
		DetectionRadius:    20,
		TargetMask:         physics.Of(layerPlayer, layerBlock),
		ObstacleMask:       physics.Of(layerWall),
		TargetLostGrace:    2,
	}
}

func facingRight() StaticOrigin {
	return StaticOrigin{Fwd: mathutil.Vec2{X: 1}}
}

func polar(r, deg float64) mathutil.Vec2 {
	rad := deg * math.Pi / 180
	return mathutil.Vec2{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

func TestFieldOfViewBoundary(t *testing.T) {
	world := physicstest.NewWorld()
	edge := world.Add(physicstest.NewBody("edge", mathutil.Vec2{X: 10, Y: 10}, layerPlayer))
	below := world.Add(physicstest.NewBody("below", mathutil.Vec2{X: 10, Y: -10}, layerPlayer))
	outside := world.Add(physicstest.NewBody("outside", polar(10, 45.01), layerPlayer))
	behind := world.Add(physicstest.NewBody("behind", mathutil.Vec2{X: -5}, layerPlayer))

	s := New(testConfig(), facingRight(), world)
	delta := s.Tick(dt)

	assert.ElementsMatch(t, []physics.Body{edge, below}, delta.Added)
	assert.NotContains(t, s.Visible(), outside)
	assert.NotContains(t, s.Visible(), behind)
}

func TestFullCircleSeesBehind(t *testing.T) {
	world := physicstest.NewWorld()
	behind := world.Add(physicstest.NewBody("behind", mathutil.Vec2{X: -5}, layerPlayer))

	cfg := testConfig()
	cfg.FieldOfViewDegrees = 360
	s := New(cfg, facingRight(), world)

	assert.Equal(t, []physics.Body{behind}, s.Tick(dt).Added)
}

func TestObstacleExcludes(t *testing.T) {
	world := physicstest.NewWorld()
	target := world.Add(physicstest.NewBody("target", mathutil.Vec2{X: 10}, layerPlayer))
	wall := world.AddWall(mathutil.Vec2{X: 4, Y: -2}, mathutil.Vec2{X: 5, Y: 2}, layerWall)

	s := New(testConfig(), facingRight(), world)
	assert.True(t, s.Tick(dt).Empty())
	assert.Empty(t, s.Visible())

	world.RemoveWall(wall)
	assert.Equal(t, []physics.Body{target}, s.Tick(dt).Added)

	world.AddWall(mathutil.Vec2{X: 4, Y: -2}, mathutil.Vec2{X: 5, Y: 2}, layerWall)
	assert.Equal(t, []physics.Body{target}, s.Tick(dt).Removed)
}

func TestObstacleBehindTargetIgnored(t *testing.T) {
	world := physicstest.NewWorld()
	target := world.Add(physicstest.NewBody("target", mathutil.Vec2{X: 10}, layerPlayer))
	world.AddWall(mathutil.Vec2{X: 12, Y: -2}, mathutil.Vec2{X: 13, Y: 2}, layerWall)

	s := New(testConfig(), facingRight(), world)
	assert.Equal(t, []physics.Body{target}, s.Tick(dt).Added)
}

func TestNearestHitMustBeTarget(t *testing.T) {
	world := physicstest.NewWorld()
	near := world.Add(physicstest.NewBody("near", mathutil.Vec2{X: 5}, layerBlock))
	far := world.Add(physicstest.NewBody("far", mathutil.Vec2{X: 10}, layerPlayer))

	cfg := testConfig()
	cfg.ObstacleMask = physics.Of(layerWall, layerBlock)
	s := New(cfg, facingRight(), world)

	s.Tick(dt)
	assert.Equal(t, []physics.Body{near}, s.Visible())
	assert.NotContains(t, s.Visible(), far)
}

func TestDeltaAndListeners(t *testing.T) {
	world := physicstest.NewWorld()
	a := world.Add(physicstest.NewBody("a", mathutil.Vec2{X: 5}, layerPlayer))
	b := world.Add(physicstest.NewBody("b", mathutil.Vec2{X: 8, Y: 1}, layerBlock))

	s := New(testConfig(), facingRight(), world)
	var found, lost []physics.Body
	unsub := s.Subscribe(Funcs{
		Found: func(b physics.Body) { found = append(found, b) },
		Lost:  func(b physics.Body) { lost = append(lost, b) },
	})

	s.Tick(dt)
	assert.Equal(t, []physics.Body{a, b}, found)
	assert.Equal(t, []physics.Body{a, b}, s.Visible())

	// nothing changes: no notifications
	assert.True(t, s.Tick(dt).Empty())

	a.Pos = mathutil.Vec2{X: 50}
	b.Inactive = true
	delta := s.Tick(dt)
	assert.Equal(t, []physics.Body{a, b}, delta.Removed)
	assert.Equal(t, []physics.Body{a, b}, lost)
	assert.Empty(t, s.Visible())

	unsub()
	unsub()
	a.Pos = mathutil.Vec2{X: 5}
	s.Tick(dt)
	assert.Len(t, found, 2)
}

func TestTurningAwayDropsTarget(t *testing.T) {
	world := physicstest.NewWorld()
	target := world.Add(physicstest.NewBody("t", mathutil.Vec2{X: 5}, layerPlayer))

	origin := &StaticOrigin{Fwd: mathutil.Vec2{X: 1}}
	s := New(testConfig(), origin, world)
	s.Tick(dt)
	require.Equal(t, []physics.Body{target}, s.Visible())

	origin.Fwd = mathutil.Vec2{X: -1}
	assert.Equal(t, []physics.Body{target}, s.Tick(dt).Removed)
}

func TestHasLostTargetDebounce(t *testing.T) {
	s := New(testConfig(), facingRight(), physicstest.NewWorld())

	// 2s grace at 60Hz
	for i := 0; i < 119; i++ {
		assert.False(t, s.HasLostTarget(), "tick %d", i)
		s.Tick(dt)
	}
	assert.False(t, s.HasLostTarget())
	s.Tick(dt)
	assert.True(t, s.HasLostTarget())

	// reset: the next call starts a fresh countdown
	assert.False(t, s.HasLostTarget())
	assert.True(t, s.Searching())
	for i := 0; i < 120; i++ {
		s.Tick(dt)
	}
	assert.True(t, s.HasLostTarget())
}

func TestHasLostTargetResetOnAcquire(t *testing.T) {
	world := physicstest.NewWorld()
	target := physicstest.NewBody("t", mathutil.Vec2{X: 50}, layerPlayer)
	world.Add(target)

	s := New(testConfig(), facingRight(), world)
	assert.False(t, s.HasLostTarget())
	for i := 0; i < 60; i++ {
		s.Tick(dt)
	}

	target.Pos = mathutil.Vec2{X: 5}
	s.Tick(dt)
	assert.False(t, s.Searching())

	assert.False(t, s.HasLostTarget())
	for i := 0; i < 119; i++ {
		s.Tick(dt)
	}
	assert.False(t, s.HasLostTarget())
}

func TestHasLostTargetZeroGrace(t *testing.T) {
	cfg := testConfig()
	cfg.TargetLostGrace = 0
	s := New(cfg, facingRight(), physicstest.NewWorld())

	assert.True(t, s.HasLostTarget())
	assert.True(t, s.HasLostTarget())
}

func TestQueryByMask(t *testing.T) {
	world := physicstest.NewWorld()
	block := world.Add(physicstest.NewBody("block", mathutil.Vec2{X: 5}, layerBlock))
	player := world.Add(physicstest.NewBody("player", mathutil.Vec2{X: 6, Y: 1}, layerPlayer))

	s := New(testConfig(), facingRight(), world)
	s.Tick(dt)

	got, err := s.QueryByMask(physics.Of(layerPlayer))
	require.NoError(t, err)
	assert.Equal(t, player, got)

	got, err = s.QueryByMask(physics.Of(layerBlock))
	require.NoError(t, err)
	assert.Equal(t, block, got)

	got, err = s.QueryByMask(physics.Of(layerWall))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = s.QueryByMask(physics.Of(layerPlayer, layerBlock))
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Nil(t, got)

	block.Inactive = true
	got, err = s.QueryByMask(physics.Of(layerBlock))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOverlapsPoint(t *testing.T) {
	s := New(testConfig(), StaticOrigin{Pos: mathutil.Vec2{X: 1, Y: 1}}, nil)

	assert.True(t, s.OverlapsPoint(mathutil.Vec2{X: 21, Y: 1}))
	assert.True(t, s.OverlapsPoint(mathutil.Vec2{X: -5, Y: -5}))
	assert.False(t, s.OverlapsPoint(mathutil.Vec2{X: 21.5, Y: 1}))
}

func TestMissingQueriesIsNoop(t *testing.T) {
	var buf bytes.Buffer
	s := New(testConfig(), facingRight(), nil, WithLogger(zerolog.New(&buf)))

	assert.True(t, s.Tick(dt).Empty())
	assert.True(t, s.Tick(dt).Empty())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("detection disabled")))
}

func TestDisabledSensorKeepsState(t *testing.T) {
	world := physicstest.NewWorld()
	target := world.Add(physicstest.NewBody("t", mathutil.Vec2{X: 5}, layerPlayer))

	s := New(testConfig(), facingRight(), world)
	s.Tick(dt)
	s.SetEnabled(false)
	calls := world.RaycastCalls

	target.Pos = mathutil.Vec2{X: 100}
	assert.True(t, s.Tick(dt).Empty())
	assert.Equal(t, []physics.Body{target}, s.Visible())
	assert.Equal(t, calls, world.RaycastCalls)
	assert.False(t, s.Enabled())
}

func TestLossCountdownRunsWhileDisabled(t *testing.T) {
	s := New(testConfig(), facingRight(), physicstest.NewWorld())
	require.False(t, s.HasLostTarget())

	s.SetEnabled(false)
	for i := 0; i < 120; i++ {
		s.Tick(dt)
	}
	assert.True(t, s.HasLostTarget())
}
