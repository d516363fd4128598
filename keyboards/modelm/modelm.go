// Package modelm provides the keymap profile for the IBM Model M over the
// AT/PS2 protocol. Positions are scancode set 2 codes, with E0-prefixed
// extended codes folded to 0x80|code by the decoder.
package modelm

import (
	_ "embed"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
)

//go:embed modelm.yaml
var definition []byte

// Profile is the compiled Model M keymap: the base layer, a media/nav layer
// held on the ScrollLock position, and a dual-shift command chord.
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
