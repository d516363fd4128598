// Package hid holds the USB HID usage data and output report state shared by
// the keymap engine and the report transport: keyboard-page usage codes,
// modifier and LED bitmasks, consumer-page usages for media keys, and the
// State type that accumulates key events into host-ready reports.
package hid

// Modifier bitmasks, byte 0 of every keyboard report.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// LED bitmasks, decoded from the host's 1-byte output report.
const (
	LEDNumLock    = 0x01
	LEDCapsLock   = 0x02
	LEDScrollLock = 0x04
	LEDCompose    = 0x08
	LEDKana       = 0x10
)

// Keyboard/Keypad usage page (0x07) usage codes.
const (
	KeyA = 0x04
	KeyB = 0x05
	KeyC = 0x06
	KeyD = 0x07
	KeyE = 0x08
	KeyF = 0x09
	KeyG = 0x0A
	KeyH = 0x0B
	KeyI = 0x0C
	KeyJ = 0x0D
	KeyK = 0x0E
	KeyL = 0x0F
	KeyM = 0x10
	KeyN = 0x11
	KeyO = 0x12
	KeyP = 0x13
	KeyQ = 0x14
	KeyR = 0x15
	KeyS = 0x16
	KeyT = 0x17
	KeyU = 0x18
	KeyV = 0x19
	KeyW = 0x1A
	KeyX = 0x1B
	KeyY = 0x1C
	KeyZ = 0x1D

	Key1 = 0x1E
	Key2 = 0x1F
	Key3 = 0x20
	Key4 = 0x21
	Key5 = 0x22
	Key6 = 0x23
	Key7 = 0x24
	Key8 = 0x25
	Key9 = 0x26
	Key0 = 0x27

	KeyEnter      = 0x28
	KeyEscape     = 0x29
	KeyBackspace  = 0x2A
	KeyTab        = 0x2B
	KeySpace      = 0x2C
	KeyMinus      = 0x2D
	KeyEqual      = 0x2E
	KeyLeftBrace  = 0x2F
	KeyRightBrace = 0x30
	KeyBackslash  = 0x31
	KeyNonUSHash  = 0x32
	KeySemicolon  = 0x33
	KeyApostrophe = 0x34
	KeyGrave      = 0x35
	KeyComma      = 0x36
	KeyPeriod     = 0x37
	KeySlash      = 0x38
	KeyCapsLock   = 0x39

	KeyF1  = 0x3A
	KeyF2  = 0x3B
	KeyF3  = 0x3C
	KeyF4  = 0x3D
	KeyF5  = 0x3E
	KeyF6  = 0x3F
	KeyF7  = 0x40
	KeyF8  = 0x41
	KeyF9  = 0x42
	KeyF10 = 0x43
	KeyF11 = 0x44
	KeyF12 = 0x45

	KeyPrintScreen = 0x46
	KeyScrollLock  = 0x47
	KeyPause       = 0x48
	KeyInsert      = 0x49
	KeyHome        = 0x4A
	KeyPageUp      = 0x4B
	KeyDelete      = 0x4C
	KeyEnd         = 0x4D
	KeyPageDown    = 0x4E

	KeyRight = 0x4F
	KeyLeft  = 0x50
	KeyDown  = 0x51
	KeyUp    = 0x52

	KeyNumLock    = 0x53
	KeyKpSlash    = 0x54
	KeyKpAsterisk = 0x55
	KeyKpMinus    = 0x56
	KeyKpPlus     = 0x57
	KeyKpEnter    = 0x58
	KeyKp1        = 0x59
	KeyKp2        = 0x5A
	KeyKp3        = 0x5B
	KeyKp4        = 0x5C
	KeyKp5        = 0x5D
	KeyKp6        = 0x5E
	KeyKp7        = 0x5F
	KeyKp8        = 0x60
	KeyKp9        = 0x61
	KeyKp0        = 0x62
	KeyKpDot      = 0x63

	KeyNonUSBackslash = 0x64
	KeyApplication    = 0x65
	KeyPower          = 0x66
	KeyKpEqual        = 0x67

	// F13-F24 show up on terminal boards; set 3 keyboards report them
	// natively and several converters map the extra left bank here.
	KeyF13 = 0x68
	KeyF14 = 0x69
	KeyF15 = 0x6A
	KeyF16 = 0x6B
	KeyF17 = 0x6C
	KeyF18 = 0x6D
	KeyF19 = 0x6E
	KeyF20 = 0x6F
	KeyF21 = 0x70
	KeyF22 = 0x71
	KeyF23 = 0x72
	KeyF24 = 0x73

	KeyExecute = 0x74
	KeyHelp    = 0x75
	KeyMenu    = 0x76
	KeySelect  = 0x77
	KeyStop    = 0x78
	KeyAgain   = 0x79
	KeyUndo    = 0x7A
	KeyCut     = 0x7B
	KeyCopy    = 0x7C
	KeyPaste   = 0x7D
	KeyFind    = 0x7E

	KeyMute       = 0x7F
	KeyVolumeUp   = 0x80
	KeyVolumeDown = 0x81

	KeyKpComma = 0x85
	KeyIntlRo  = 0x87
	KeyIntlYen = 0x89
	KeyLang1   = 0x90
	KeyLang2   = 0x91
)

// Modifier usage codes 0xE0-0xE7. The report encodes modifiers as bits, but
// keymap tables may carry the usage form; ModifierBit converts between them.
const (
	KeyLeftCtrl   = 0xE0
	KeyLeftShift  = 0xE1
	KeyLeftAlt    = 0xE2
	KeyLeftGUI    = 0xE3
	KeyRightCtrl  = 0xE4
	KeyRightShift = 0xE5
	KeyRightAlt   = 0xE6
	KeyRightGUI   = 0xE7
)

// Consumer page (0x0C) usages for media keys. 16-bit, reported separately
// from the keyboard page.
const (
	ConsumerPlayPause   = 0x00CD
	ConsumerScanNext    = 0x00B5
	ConsumerScanPrev    = 0x00B6
	ConsumerStop        = 0x00B7
	ConsumerEject       = 0x00B8
	ConsumerMute        = 0x00E2
	ConsumerVolumeUp    = 0x00E9
	ConsumerVolumeDown  = 0x00EA
	ConsumerWWWHome     = 0x0223
	ConsumerWWWBack     = 0x0224
	ConsumerWWWForward  = 0x0225
	ConsumerCalculator  = 0x0192
	ConsumerMediaSelect = 0x0183
	ConsumerMail        = 0x018A
)

// ModifierBit returns the report bitmask for a modifier usage code
// (0xE0-0xE7), or 0 if the usage is not a modifier.
func ModifierBit(usage uint8) uint8 {
	if usage < KeyLeftCtrl {
		return 0
	}
	return 1 << (usage - KeyLeftCtrl)
}

// IsModifier reports whether a keyboard-page usage is one of the eight
// modifier keys.
func IsModifier(usage uint8) bool {
	return usage >= KeyLeftCtrl
}
