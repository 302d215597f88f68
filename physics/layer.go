package physics

import "math/bits"

// Layer is a collision layer index in [0, 31].
type Layer uint8

// LayerMask is a bit set of layers.
type LayerMask uint32

// MaxLayers is the number of addressable layers.
const MaxLayers = 32

// Mask returns the mask holding only l.
func (l Layer) Mask() LayerMask {
	return LayerMask(1) << (l % MaxLayers)
}

// Of builds a mask from layers.
func Of(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= l.Mask()
	}
	return m
}

// Has reports whether l is in the mask.
func (m LayerMask) Has(l Layer) bool {
	return m&l.Mask() != 0
}

// Count returns the number of layers in the mask.
func (m LayerMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Layers returns the layer indexes set in the mask, lowest first.
func (m LayerMask) Layers() []Layer {
	out := make([]Layer, 0, m.Count())
	for i := 0; i < MaxLayers; i++ {
		if m.Has(Layer(i)) {
			out = append(out, Layer(i))
		}
	}
	return out
}

// Single returns the only layer in the mask. ok is false for empty or
// multi-layer masks.
func (m LayerMask) Single() (Layer, bool) {
	if m.Count() != 1 {
		return 0, false
	}
	return Layer(bits.TrailingZeros32(uint32(m))), true
}

// HasLayer reports whether the body's layer is in the mask.
func HasLayer(b Body, m LayerMask) bool {
	return b != nil && m.Has(b.Layer())
}
