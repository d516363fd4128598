package hid

// State accumulates resolved key events into host-ready reports. It keeps a
// 256-bit bitmap so any number of keys can be held at once; the boot report
// degrades to phantom state when more than six non-modifier keys are down.
//
// State implements the keymap engine's Emitter interface. It is not
// goroutine-safe: the engine contract is a single event at a time, and State
// inherits that.
type State struct {
	Modifiers uint8
	KeyBitmap [32]uint8
	Consumer  uint16
}

// KeyDown marks a keyboard-page usage as pressed.
func (s *State) KeyDown(usage uint8) {
	s.KeyBitmap[usage/8] |= 1 << (usage % 8)
}

// KeyUp clears a keyboard-page usage.
func (s *State) KeyUp(usage uint8) {
	s.KeyBitmap[usage/8] &^= 1 << (usage % 8)
}

// ModifierDown sets a modifier bit (ModLeftCtrl..ModRightGUI).
func (s *State) ModifierDown(bit uint8) {
	s.Modifiers |= bit
}

// ModifierUp clears a modifier bit.
func (s *State) ModifierUp(bit uint8) {
	s.Modifiers &^= bit
}

// ConsumerDown records the active consumer-page usage. Converters report a
// single consumer usage at a time; a later press replaces an earlier one.
func (s *State) ConsumerDown(usage uint16) {
	s.Consumer = usage
}

// ConsumerUp clears the consumer usage if it is still the active one.
func (s *State) ConsumerUp(usage uint16) {
	if s.Consumer == usage {
		s.Consumer = 0
	}
}

// Reset releases everything.
func (s *State) Reset() {
	*s = State{}
}

// Keys returns the usages of all pressed non-modifier keys in ascending
// order. Allocates; intended for reports and diagnostics, not the event path.
func (s *State) Keys() []uint8 {
	var keys []uint8
	for i, b := range s.KeyBitmap {
		if b == 0 {
			continue
		}
		for bit := uint(0); bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				keys = append(keys, uint8(i*8)+uint8(bit))
			}
		}
	}
	return keys
}

// Report builds the 34-byte bitmap keyboard report:
//
//	Byte 0: modifiers
//	Byte 1: reserved
//	Bytes 2-33: 256-bit key bitmap
func (s *State) Report() []byte {
	b := make([]byte, 34)
	b[0] = s.Modifiers
	copy(b[2:], s.KeyBitmap[:])
	return b
}

// BootReport builds the classic 8-byte boot-protocol report:
//
//	Byte 0: modifiers
//	Byte 1: reserved
//	Bytes 2-7: up to six pressed usages
//
// With more than six keys down every slot carries 0x01 (phantom state), per
// the boot protocol's rollover rule.
func (s *State) BootReport() []byte {
	b := make([]byte, 8)
	b[0] = s.Modifiers
	keys := s.Keys()
	if len(keys) > 6 {
		for i := 2; i < 8; i++ {
			b[i] = 0x01
		}
		return b
	}
	copy(b[2:], keys)
	return b
}

// ConsumerReport builds the 2-byte little-endian consumer report.
func (s *State) ConsumerReport() []byte {
	return []byte{uint8(s.Consumer), uint8(s.Consumer >> 8)}
}

// LEDState is the lock-light state pushed by the host. The converter relays
// it to the keyboard-side protocol driver (Set LEDs on AT/PS2, nothing on XT
// which has no indicators).
type LEDState struct {
	NumLock    bool
	CapsLock   bool
	ScrollLock bool
	Compose    bool
	Kana       bool
}

// DecodeLED unpacks the host's 1-byte LED output report.
func DecodeLED(b uint8) LEDState {
	return LEDState{
		NumLock:    b&LEDNumLock != 0,
		CapsLock:   b&LEDCapsLock != 0,
		ScrollLock: b&LEDScrollLock != 0,
		Compose:    b&LEDCompose != 0,
		Kana:       b&LEDKana != 0,
	}
}

// Encode packs the LED state back into report form.
func (l LEDState) Encode() uint8 {
	var b uint8
	if l.NumLock {
		b |= LEDNumLock
	}
	if l.CapsLock {
		b |= LEDCapsLock
	}
	if l.ScrollLock {
		b |= LEDScrollLock
	}
	if l.Compose {
		b |= LEDCompose
	}
	if l.Kana {
		b |= LEDKana
	}
	return b
}
