package hid

import "strings"

// KeyName maps keyboard-page usage codes to the names used in keymap
// definition files and diagnostic output.
var KeyName = map[uint8]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyLeftBrace:  "LeftBrace",
	KeyRightBrace: "RightBrace",
	KeyBackslash:  "Backslash",
	KeyNonUSHash:  "NonUSHash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyCapsLock:   "CapsLock",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",

	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	KeyNumLock:    "NumLock",
	KeyKpSlash:    "KpSlash",
	KeyKpAsterisk: "KpAsterisk",
	KeyKpMinus:    "KpMinus",
	KeyKpPlus:     "KpPlus",
	KeyKpEnter:    "KpEnter",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKp0:        "Kp0",
	KeyKpDot:      "KpDot",
	KeyKpEqual:    "KpEqual",
	KeyKpComma:    "KpComma",

	KeyNonUSBackslash: "NonUSBackslash",
	KeyApplication:    "Application",
	KeyPower:          "Power",

	KeyExecute: "Execute",
	KeyHelp:    "Help",
	KeyMenu:    "Menu",
	KeySelect:  "Select",
	KeyStop:    "Stop",
	KeyAgain:   "Again",
	KeyUndo:    "Undo",
	KeyCut:     "Cut",
	KeyCopy:    "Copy",
	KeyPaste:   "Paste",
	KeyFind:    "Find",

	KeyMute:       "Mute",
	KeyVolumeUp:   "VolumeUp",
	KeyVolumeDown: "VolumeDown",

	KeyIntlRo:  "IntlRo",
	KeyIntlYen: "IntlYen",
	KeyLang1:   "Lang1",
	KeyLang2:   "Lang2",

	KeyLeftCtrl:   "LCtrl",
	KeyLeftShift:  "LShift",
	KeyLeftAlt:    "LAlt",
	KeyLeftGUI:    "LGui",
	KeyRightCtrl:  "RCtrl",
	KeyRightShift: "RShift",
	KeyRightAlt:   "RAlt",
	KeyRightGUI:   "RGui",
}

// ConsumerName maps consumer-page usages to definition-file names.
var ConsumerName = map[uint16]string{
	ConsumerPlayPause:   "PlayPause",
	ConsumerScanNext:    "ScanNext",
	ConsumerScanPrev:    "ScanPrev",
	ConsumerStop:        "MediaStop",
	ConsumerEject:       "Eject",
	ConsumerMute:        "MediaMute",
	ConsumerVolumeUp:    "MediaVolUp",
	ConsumerVolumeDown:  "MediaVolDown",
	ConsumerWWWHome:     "WWWHome",
	ConsumerWWWBack:     "WWWBack",
	ConsumerWWWForward:  "WWWForward",
	ConsumerCalculator:  "Calculator",
	ConsumerMediaSelect: "MediaSelect",
	ConsumerMail:        "Mail",
}

// NameToKey and NameToConsumer are the reverse maps, built at init with
// lowercased keys so definition files can spell names in any case.
var (
	NameToKey      = make(map[string]uint8, len(KeyName))
	NameToConsumer = make(map[string]uint16, len(ConsumerName))
)

func init() {
	for code, name := range KeyName {
		NameToKey[strings.ToLower(name)] = code
	}
	for usage, name := range ConsumerName {
		NameToConsumer[strings.ToLower(name)] = usage
	}
}
