package cmd

import (
	"fmt"
	"log/slog"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
)

// Check compiles a keymap definition file and reports what it found.
type Check struct {
	Definition string `arg:"" help:"Keymap definition file (yaml/toml)" type:"path"`
}

func (c *Check) Run(logger *slog.Logger) error {
	def, err := keymap.LoadDefinition(c.Definition)
	if err != nil {
		return err
	}
	profile, err := def.Compile()
	if err != nil {
		return err
	}

	mapped := make([]int, profile.Store.NumLayers())
	var actionEntries int
	for pos := 0; pos < keymap.NumPositions; pos++ {
		for layer := 0; layer < profile.Store.NumLayers(); layer++ {
			k := profile.Store.LookupMap(layer, pos)
			if !k.IsNone() {
				mapped[layer]++
			}
			if layer == 0 && k.Kind == keymap.KindTransparent {
				logger.Warn("transparent entry on the base layer resolves to nothing",
					"pos", fmt.Sprintf("0x%02X", pos))
			}
		}
		if !profile.Store.LookupAction(pos).IsNone() {
			actionEntries++
		}
	}

	fmt.Printf("%s: ok\n", profile.Name)
	fmt.Printf("  map layers: %d\n", profile.Store.NumLayers())
	for i, n := range mapped {
		fmt.Printf("    layer %d: %d positions\n", i, n)
	}
	if actionEntries > 0 {
		fmt.Printf("  action overlay: %d positions\n", actionEntries)
	}
	if profile.HasChord {
		fmt.Printf("  command chord: 0x%02X + 0x%02X\n", profile.Chord[0], profile.Chord[1])
	}
	return nil
}
