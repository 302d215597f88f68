package config

import (
	"errors"
	"fmt"
)

// Validate checks every section against its documented range.
func (t Tuning) Validate() error {
	var errs []error

	if fov := t.Sensor.FieldOfViewDegrees; !(fov > 0 && fov <= 360) {
		errs = append(errs, fmt.Errorf("sensor.fieldOfViewDegrees %v not in (0, 360]", fov))
	}
	if t.Sensor.DetectionRadius <= 0 {
		errs = append(errs, fmt.Errorf("sensor.detectionRadius %v must be positive", t.Sensor.DetectionRadius))
	}
	if t.Sensor.TargetLostGrace < 0 {
		errs = append(errs, fmt.Errorf("sensor.targetLostGrace %v must not be negative", t.Sensor.TargetLostGrace))
	}

	if t.Hook.PullForce <= 0 {
		errs = append(errs, fmt.Errorf("hook.pullForce %v must be positive", t.Hook.PullForce))
	}
	if t.Hook.PullOffset < 0 {
		errs = append(errs, fmt.Errorf("hook.pullOffset %v must not be negative", t.Hook.PullOffset))
	}
	if _, err := Easing(t.Hook.Easing); err != nil {
		errs = append(errs, fmt.Errorf("hook.easing: %w", err))
	}

	if t.Ballistic.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("ballistic.gravity %v must be positive", t.Ballistic.Gravity))
	}
	if t.Ballistic.ApexHeight <= 0 {
		errs = append(errs, fmt.Errorf("ballistic.apexHeight %v must be positive", t.Ballistic.ApexHeight))
	}

	if t.Movement.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("movement.moveSpeed %v must not be negative", t.Movement.MoveSpeed))
	}

	if t.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim.tickRate %d must be positive", t.Sim.TickRate))
	}
	if t.Sim.Width <= 0 || t.Sim.Height <= 0 || t.Sim.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("sim space %dx%d cell %d must be positive", t.Sim.Width, t.Sim.Height, t.Sim.CellSize))
	}

	return errors.Join(errs...)
}
