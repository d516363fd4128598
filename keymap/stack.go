package keymap

import "math/bits"

// MaxLayers bounds the number of map layers a keyboard may define; active
// layers are tracked as bits of a single word.
const MaxLayers = 32

// layerStack tracks which map layers are active. Layer 0 is pinned and
// Current resolves ties by "highest wins": when several momentary keys are
// held, the most specialized overlay takes precedence.
//
// Each activation is owned by one held key, and two held keys may request
// the same layer, so membership carries a hold count per layer: the layer
// stays active until every owner has released. Deactivating a layer with no
// outstanding holds is a no-op.
type layerStack struct {
	active uint32
	holds  [MaxLayers]uint8
}

func newLayerStack() layerStack {
	return layerStack{active: 1}
}

// Activate adds a hold on layer n. Out-of-range layers are ignored.
func (ls *layerStack) Activate(n uint8) {
	if n == 0 || n >= MaxLayers {
		return
	}
	ls.holds[n]++
	ls.active |= 1 << n
}

// Deactivate releases one hold on layer n; the layer leaves the active set
// when the last hold is gone. Layer 0 cannot be removed.
func (ls *layerStack) Deactivate(n uint8) {
	if n == 0 || n >= MaxLayers || ls.holds[n] == 0 {
		return
	}
	ls.holds[n]--
	if ls.holds[n] == 0 {
		ls.active &^= 1 << n
	}
}

// Current returns the highest-index active layer.
func (ls *layerStack) Current() uint8 {
	return uint8(bits.Len32(ls.active) - 1)
}

// Reset drops all holds and returns to the base layer.
func (ls *layerStack) Reset() {
	*ls = layerStack{active: 1}
}
