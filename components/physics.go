package components

import (
	"github.com/automoto/hookshot/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData is per-second kinematics for a box body. +Y is up.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	MaxFall  float64
	Friction float64 // speed lost per second while grounded
	OnGround *physics.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
