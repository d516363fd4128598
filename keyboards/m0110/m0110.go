// Package m0110 provides the keymap profile for the Apple M0110/M0110A.
// Positions are the keyboard's 7-bit transition codes. The board has no
// arrow or function keys, so the keypad Equal position engages the action
// overlay that supplies navigation.
package m0110

import (
	_ "embed"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
)

//go:embed m0110.yaml
var definition []byte

// Profile is the compiled M0110 keymap.
var Profile = mustLoad()

func mustLoad() *keymap.Profile {
	def, err := keymap.ParseDefinition(definition, "yaml")
	if err != nil {
		panic(err)
	}
	return def.MustCompile()
}

func init() {
	keyboards.Register(Profile)
}
