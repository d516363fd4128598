package keymap

// chordDetector watches the two-position command-mode chord. It keeps a
// 2-bit mask of which chord keys are down; the engine reads edge transitions
// of the fully-held state. A detector with no configured chord never
// engages.
type chordDetector struct {
	pos     [2]uint8
	enabled bool
	mask    uint8
}

func newChordDetector(p1, p2 uint8, enabled bool) chordDetector {
	return chordDetector{pos: [2]uint8{p1, p2}, enabled: enabled}
}

// Update feeds one raw event to the detector and returns the engaged state
// before and after. Events for non-chord positions leave the mask untouched.
func (c *chordDetector) Update(ev Event) (was, now bool) {
	was = c.enabled && c.mask == 0b11
	if c.enabled {
		for i, p := range c.pos {
			if ev.Pos != p {
				continue
			}
			if ev.Press {
				c.mask |= 1 << i
			} else {
				c.mask &^= 1 << i
			}
		}
	}
	now = c.enabled && c.mask == 0b11
	return was, now
}
