package config

import (
	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/tags"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity is created on.
const Default ecs.LayerID = 0

// SensorConfig tunes a field-of-view sensor.
type SensorConfig struct {
	FieldOfViewDegrees float64           // total cone width, (0, 360]
	DetectionRadius    float64           // broad-phase circle radius
	TargetMask         physics.LayerMask // layers the broad phase collects
	ObstacleMask       physics.LayerMask // layers that block line of sight
	TargetLostGrace    float64           // seconds before HasLostTarget reports true
}

// HookConfig tunes the snatch hook.
type HookConfig struct {
	PullForce     float64           // distance units per second of travel budget
	PullOffset    float64           // min horizontal gap between target and anchor
	Easing        string            // gween easing name, see Easing
	ObstacleMask  physics.LayerMask // layers that break the hook line
	MoveThreshold float64           // |move.x| above this releases the hook
	TargetMask    physics.LayerMask // layers an agent may hook
}

// BallisticConfig tunes launch solves.
type BallisticConfig struct {
	Gravity    float64 // magnitude, units/s^2
	ApexHeight float64 // height above the launch point
}

// MovementConfig tunes AI movement.
type MovementConfig struct {
	MoveSpeed      float64
	CloseDistance  float64 // stop approaching inside this distance
	FleeDistance   float64
	SmoothTime     float64 // SmoothDamp smoothing time in seconds
	ApproachOffset float64 // stop short of the target on the approach side
}

// SimConfig tunes the headless simulation.
type SimConfig struct {
	TickRate    int // fixed steps per second
	Width       int
	Height      int
	CellSize    int
	GroundProbe float64
	Gravity     float64
	MaxFall     float64
}

// Tuning bundles every section so it can be loaded and passed as a unit.
type Tuning struct {
	Sensor    SensorConfig
	Hook      HookConfig
	Ballistic BallisticConfig
	Movement  MovementConfig
	Sim       SimConfig
}

// Global configuration instances
var Sensor SensorConfig
var Hook HookConfig
var Ballistic BallisticConfig
var Movement MovementConfig
var Sim SimConfig

// Defaults returns the package-level configuration as a Tuning.
func Defaults() Tuning {
	return Tuning{
		Sensor:    Sensor,
		Hook:      Hook,
		Ballistic: Ballistic,
		Movement:  Movement,
		Sim:       Sim,
	}
}

// FixedStep is the length of one simulation tick in seconds.
func (s SimConfig) FixedStep() float64 {
	if s.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(s.TickRate)
}

func init() {
	Sensor = SensorConfig{
		FieldOfViewDegrees: 270,
		DetectionRadius:    160,
		TargetMask:         physics.Of(tags.LayerPlayer, tags.LayerHookable),
		ObstacleMask:       physics.Of(tags.LayerGround, tags.LayerObstacle),
		TargetLostGrace:    2,
	}

	Hook = HookConfig{
		PullForce:     12,
		PullOffset:    24,
		Easing:        "outQuad",
		ObstacleMask:  physics.Of(tags.LayerObstacle),
		MoveThreshold: 1e-3,
		TargetMask:    physics.Of(tags.LayerHookable),
	}

	Ballistic = BallisticConfig{
		Gravity:    900,
		ApexHeight: 48,
	}

	Movement = MovementConfig{
		MoveSpeed:      90,
		CloseDistance:  16,
		FleeDistance:   32,
		SmoothTime:     0.03,
		ApproachOffset: 0.1,
	}

	Sim = SimConfig{
		TickRate:    60,
		Width:       640,
		Height:      360,
		CellSize:    16,
		GroundProbe: 1,
		Gravity:     900,
		MaxFall:     600,
	}
}
