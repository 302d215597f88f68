package tags

import (
	"fmt"
	"strings"

	"github.com/automoto/hookshot/physics"
	"github.com/yohamta/donburi"
)

var (
	Agent    = donburi.NewTag().SetName("Agent")
	Block    = donburi.NewTag().SetName("Block")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Ground   = donburi.NewTag().SetName("Ground")
	Floating = donburi.NewTag().SetName("Floating")
	Player   = donburi.NewTag().SetName("Player")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = physics.TagSolid
	ResolvAgent    = "Agent"
	ResolvBlock    = "Block"
	ResolvObstacle = "Obstacle"
	ResolvPlayer   = "Player"
)

// Collision layers
const (
	LayerGround physics.Layer = iota
	LayerObstacle
	LayerPlayer
	LayerEnemy
	LayerHookable
)

var layerNames = map[string]physics.Layer{
	"ground":   LayerGround,
	"obstacle": LayerObstacle,
	"player":   LayerPlayer,
	"enemy":    LayerEnemy,
	"hookable": LayerHookable,
}

// LayerByName resolves a layer name (case-insensitive).
func LayerByName(name string) (physics.Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

// MaskByNames builds a mask from layer names.
func MaskByNames(names []string) (physics.LayerMask, error) {
	var m physics.LayerMask
	for _, name := range names {
		l, err := LayerByName(name)
		if err != nil {
			return 0, err
		}
		m |= l.Mask()
	}
	return m, nil
}

// LayerName returns the registered name of l.
func LayerName(l physics.Layer) string {
	for name, layer := range layerNames {
		if layer == l {
			return name
		}
	}
	return fmt.Sprintf("layer%d", l)
}

// MaskNames lists the names of every layer in m, lowest index first.
func MaskNames(m physics.LayerMask) []string {
	var out []string
	for _, l := range m.Layers() {
		out = append(out, LayerName(l))
	}
	return out
}
