// Package all registers every built-in keyboard profile.
package all

import (
	_ "github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards/m0110"       // Apple M0110/M0110A
	_ "github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards/modelm"      // IBM Model M (AT/PS2)
	_ "github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards/terminal122" // IBM 122-key terminal (set 3)
)
