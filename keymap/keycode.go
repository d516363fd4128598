// Package keymap implements the keymap resolution core of the converter: the
// per-keyboard layer tables, the momentary layer stack, per-key press memory
// and the engine that turns raw (position, press) events from a protocol
// decoder into HID key events for the report assembler.
package keymap

import (
	"fmt"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/hid"
)

// Kind discriminates the Keycode variants.
type Kind uint8

const (
	// KindNone marks an unmapped position. Never emitted.
	KindNone Kind = iota
	// KindTransparent defers to the layer below at the same position.
	KindTransparent
	// KindPlain is an ordinary keyboard-page usage.
	KindPlain
	// KindModifier is one of the eight modifier bits.
	KindModifier
	// KindConsumer is a 16-bit consumer-page usage (media keys).
	KindConsumer
	// KindMomentaryLayer activates a map layer while held.
	KindMomentaryLayer
	// KindAction engages the action overlay while held.
	KindAction
)

// Keycode is one slot of a layer table: what a key position means under one
// layer. The zero value is None.
type Keycode struct {
	Kind  Kind
	Value uint16
}

// Sentinel keycodes.
var (
	None        = Keycode{Kind: KindNone}
	Transparent = Keycode{Kind: KindTransparent}
	Action      = Keycode{Kind: KindAction}
)

// Plain returns a keycode for a keyboard-page usage. Modifier usages
// (0xE0-0xE7) are folded into their Modifier form so tables built from raw
// usage codes behave the same as ones built from modifier tokens.
func Plain(usage uint8) Keycode {
	if hid.IsModifier(usage) {
		return Modifier(hid.ModifierBit(usage))
	}
	return Keycode{Kind: KindPlain, Value: uint16(usage)}
}

// Modifier returns a keycode for a modifier bitmask (hid.ModLeftCtrl etc.).
func Modifier(bit uint8) Keycode {
	return Keycode{Kind: KindModifier, Value: uint16(bit)}
}

// Consumer returns a keycode for a consumer-page usage.
func Consumer(usage uint16) Keycode {
	return Keycode{Kind: KindConsumer, Value: usage}
}

// MomentaryLayer returns a keycode that holds map layer n active.
func MomentaryLayer(n uint8) Keycode {
	return Keycode{Kind: KindMomentaryLayer, Value: uint16(n)}
}

// IsNone reports whether the keycode is the None sentinel.
func (k Keycode) IsNone() bool { return k.Kind == KindNone }

func (k Keycode) String() string {
	switch k.Kind {
	case KindNone:
		return "None"
	case KindTransparent:
		return "Transparent"
	case KindPlain:
		if name, ok := hid.KeyName[uint8(k.Value)]; ok {
			return name
		}
		return fmt.Sprintf("Key(0x%02X)", k.Value)
	case KindModifier:
		switch uint8(k.Value) {
		case hid.ModLeftCtrl:
			return "LCtrl"
		case hid.ModLeftShift:
			return "LShift"
		case hid.ModLeftAlt:
			return "LAlt"
		case hid.ModLeftGUI:
			return "LGui"
		case hid.ModRightCtrl:
			return "RCtrl"
		case hid.ModRightShift:
			return "RShift"
		case hid.ModRightAlt:
			return "RAlt"
		case hid.ModRightGUI:
			return "RGui"
		}
		return fmt.Sprintf("Mod(0x%02X)", k.Value)
	case KindConsumer:
		if name, ok := hid.ConsumerName[k.Value]; ok {
			return name
		}
		return fmt.Sprintf("Consumer(0x%04X)", k.Value)
	case KindMomentaryLayer:
		return fmt.Sprintf("MO(%d)", k.Value)
	case KindAction:
		return "Action"
	}
	return fmt.Sprintf("Keycode(%d,0x%04X)", k.Kind, k.Value)
}
