package components

import "github.com/yohamta/donburi"

// ClockData is the fixed-step simulation clock.
type ClockData struct {
	Tick int
	Step float64 // seconds per tick
}

// Seconds is the simulated time at the current tick.
func (c *ClockData) Seconds() float64 {
	return float64(c.Tick) * c.Step
}

var Clock = donburi.NewComponentType[ClockData]()
