// Package leveldata parses arena TMX files into plain data. It has no
// dependencies on donburi or resolv.
//
// Tiled stores Y growing downward; every coordinate here is already flipped
// into world space where +Y is up and X, Y is a box's bottom-left corner.
package leveldata

import "github.com/automoto/hookshot/mathutil"

// Arena holds everything the simulation spawns from one level file.
type Arena struct {
	Name      string
	Width     int
	Height    int
	Grounds   []Rect
	Obstacles []Rect
	Floaters  []Floater
	Blocks    []Spawn
	Players   []Spawn
	Agents    []AgentSpawn
}

// Rect is an axis-aligned box in world space.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (r Rect) Center() mathutil.Vec2 {
	return mathutil.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Spawn is a named box-shaped body.
type Spawn struct {
	Name string
	Rect
	Index int // "spawnIndex" property, players only
}

// AgentSpawn is a hook-wielding agent.
type AgentSpawn struct {
	Spawn
	Facing float64 // -1 faces left, anything else faces right
	Launch bool    // fling targets ballistically instead of pulling
	Script string  // scripted input, see input.ParseScript
}

// Floater is an obstacle that slides back and forth along one axis.
type Floater struct {
	Rect
	Axis   string  // "x" or "y"
	Travel float64 // signed distance of one leg
	Period float64 // seconds per leg
}
