package keymap

// NumPositions is the size of the key-position space: an 8-bit byte-matrix
// address fixed by the keyboard's wiring.
const NumPositions = 256

// Layer is one full keycode table: what every position means under one
// overlay of the keyboard.
type Layer [NumPositions]Keycode

// Store holds a keyboard's compiled tables: the ordered map layers (index 0
// is the base layer) and the optional action overlay. Immutable after
// construction; lookups are bounds-safe and degrade to None rather than
// panicking, so a misconfigured table turns into dead keys instead of
// corrupting resolution state.
type Store struct {
	maps   []Layer
	action Layer
}

// NewStore builds a Store from map layers and an optional action layer. At
// least a base layer is required; a nil action layer means the overlay
// resolves everything to None.
func NewStore(maps []Layer, action *Layer) *Store {
	s := &Store{maps: make([]Layer, len(maps))}
	copy(s.maps, maps)
	if action != nil {
		s.action = *action
	}
	return s
}

// NumLayers returns the number of map layers.
func (s *Store) NumLayers() int { return len(s.maps) }

// LookupMap returns the keycode at (layer, position), or None when either
// index is out of range.
func (s *Store) LookupMap(layer int, pos int) Keycode {
	if layer < 0 || layer >= len(s.maps) || pos < 0 || pos >= NumPositions {
		return None
	}
	return s.maps[layer][pos]
}

// LookupAction returns the action-overlay keycode at position, or None when
// the position is out of range.
func (s *Store) LookupAction(pos int) Keycode {
	if pos < 0 || pos >= NumPositions {
		return None
	}
	return s.action[pos]
}
