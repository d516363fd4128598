package keyboards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
)

func TestRegistryCaseInsensitive(t *testing.T) {
	p := &keymap.Profile{
		Name:  "TestBoard",
		Store: keymap.NewStore([]keymap.Layer{{}}, nil),
	}
	keyboards.Register(p)

	assert.Same(t, p, keyboards.Get("testboard"))
	assert.Same(t, p, keyboards.Get("TESTBOARD"))
	assert.Same(t, p, keyboards.Get("TestBoard"))
	assert.Nil(t, keyboards.Get("no-such-board"))
}

func TestNamesSorted(t *testing.T) {
	for _, name := range []string{"zzz-board", "aaa-board"} {
		keyboards.Register(&keymap.Profile{
			Name:  name,
			Store: keymap.NewStore([]keymap.Layer{{}}, nil),
		})
	}
	names := keyboards.Names()
	require.Contains(t, names, "aaa-board")
	require.Contains(t, names, "zzz-board")
	assert.IsIncreasing(t, names)
}
