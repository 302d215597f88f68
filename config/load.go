package config

import (
	"fmt"
	"strings"

	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/tags"
	"github.com/spf13/viper"
)

// file mirrors Tuning with layer masks spelled as layer names.
type file struct {
	Sensor struct {
		FieldOfViewDegrees float64  `mapstructure:"fieldOfViewDegrees"`
		DetectionRadius    float64  `mapstructure:"detectionRadius"`
		TargetLayers       []string `mapstructure:"targetLayers"`
		ObstacleLayers     []string `mapstructure:"obstacleLayers"`
		TargetLostGrace    float64  `mapstructure:"targetLostGrace"`
	} `mapstructure:"sensor"`
	Hook struct {
		PullForce      float64  `mapstructure:"pullForce"`
		PullOffset     float64  `mapstructure:"pullOffset"`
		Easing         string   `mapstructure:"easing"`
		ObstacleLayers []string `mapstructure:"obstacleLayers"`
		MoveThreshold  float64  `mapstructure:"moveThreshold"`
		TargetLayers   []string `mapstructure:"targetLayers"`
	} `mapstructure:"hook"`
	Ballistic BallisticConfig `mapstructure:"ballistic"`
	Movement  MovementConfig  `mapstructure:"movement"`
	Sim       SimConfig       `mapstructure:"sim"`
}

func setDefaults(v *viper.Viper, d Tuning) {
	v.SetDefault("sensor.fieldOfViewDegrees", d.Sensor.FieldOfViewDegrees)
	v.SetDefault("sensor.detectionRadius", d.Sensor.DetectionRadius)
	v.SetDefault("sensor.targetLayers", tags.MaskNames(d.Sensor.TargetMask))
	v.SetDefault("sensor.obstacleLayers", tags.MaskNames(d.Sensor.ObstacleMask))
	v.SetDefault("sensor.targetLostGrace", d.Sensor.TargetLostGrace)

	v.SetDefault("hook.pullForce", d.Hook.PullForce)
	v.SetDefault("hook.pullOffset", d.Hook.PullOffset)
	v.SetDefault("hook.easing", d.Hook.Easing)
	v.SetDefault("hook.obstacleLayers", tags.MaskNames(d.Hook.ObstacleMask))
	v.SetDefault("hook.moveThreshold", d.Hook.MoveThreshold)
	v.SetDefault("hook.targetLayers", tags.MaskNames(d.Hook.TargetMask))

	v.SetDefault("ballistic.gravity", d.Ballistic.Gravity)
	v.SetDefault("ballistic.apexHeight", d.Ballistic.ApexHeight)

	v.SetDefault("movement.moveSpeed", d.Movement.MoveSpeed)
	v.SetDefault("movement.closeDistance", d.Movement.CloseDistance)
	v.SetDefault("movement.fleeDistance", d.Movement.FleeDistance)
	v.SetDefault("movement.smoothTime", d.Movement.SmoothTime)
	v.SetDefault("movement.approachOffset", d.Movement.ApproachOffset)

	v.SetDefault("sim.tickRate", d.Sim.TickRate)
	v.SetDefault("sim.width", d.Sim.Width)
	v.SetDefault("sim.height", d.Sim.Height)
	v.SetDefault("sim.cellSize", d.Sim.CellSize)
	v.SetDefault("sim.groundProbe", d.Sim.GroundProbe)
	v.SetDefault("sim.gravity", d.Sim.Gravity)
	v.SetDefault("sim.maxFall", d.Sim.MaxFall)
}

// Load reads a tuning file (YAML, JSON or TOML, picked by extension) on top of
// the package defaults. HOOKSHOT_<SECTION>_<KEY> environment variables override
// both. An empty path loads defaults and environment only.
func Load(path string) (*Tuning, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix("HOOKSHOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	t, err := f.tuning()
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return t, nil
}

func (f file) tuning() (*Tuning, error) {
	t := &Tuning{
		Ballistic: f.Ballistic,
		Movement:  f.Movement,
		Sim:       f.Sim,
	}

	t.Sensor.FieldOfViewDegrees = f.Sensor.FieldOfViewDegrees
	t.Sensor.DetectionRadius = f.Sensor.DetectionRadius
	t.Sensor.TargetLostGrace = f.Sensor.TargetLostGrace
	t.Hook.PullForce = f.Hook.PullForce
	t.Hook.PullOffset = f.Hook.PullOffset
	t.Hook.Easing = f.Hook.Easing
	t.Hook.MoveThreshold = f.Hook.MoveThreshold

	masks := []struct {
		key   string
		names []string
		dst   *physics.LayerMask
	}{
		{"sensor.targetLayers", f.Sensor.TargetLayers, &t.Sensor.TargetMask},
		{"sensor.obstacleLayers", f.Sensor.ObstacleLayers, &t.Sensor.ObstacleMask},
		{"hook.obstacleLayers", f.Hook.ObstacleLayers, &t.Hook.ObstacleMask},
		{"hook.targetLayers", f.Hook.TargetLayers, &t.Hook.TargetMask},
	}
	for _, m := range masks {
		mask, err := tags.MaskByNames(m.names)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.key, err)
		}
		*m.dst = mask
	}
	return t, nil
}
