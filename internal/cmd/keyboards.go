package cmd

import (
	"fmt"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards"
)

// Keyboards lists the built-in keyboard profiles.
type Keyboards struct{}

func (k *Keyboards) Run() error {
	for _, name := range keyboards.Names() {
		p := keyboards.Get(name)
		fmt.Printf("%-16s %d layers", name, p.Store.NumLayers())
		if p.HasChord {
			fmt.Printf(", command chord 0x%02X+0x%02X", p.Chord[0], p.Chord[1])
		}
		fmt.Println()
	}
	return nil
}
