// Package terminal122 provides the keymap profile for IBM 122-key terminal
// boards (1390876 and friends) speaking scancode set 3. The two-column left
// function bank maps to F13-F24, with the bottom pair reserved for the
// layer hold and the command chord.
package terminal122

import (
	_ "embed"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
)

//go:embed terminal122.yaml
var definition []byte

// Profile is the compiled 122-key terminal keymap.
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
