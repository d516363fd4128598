package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/hid"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"

	_ "github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards/all"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"modelm", "m0110", "terminal122"} {
		p := keyboards.Get(name)
		require.NotNil(t, p, "builtin %q missing", name)
		assert.Equal(t, name, p.Name)
		assert.GreaterOrEqual(t, p.Store.NumLayers(), 1)
	}
}

func TestModelMProfile(t *testing.T) {
	p := keyboards.Get("modelm")
	require.NotNil(t, p)

	assert.Equal(t, 2, p.Store.NumLayers())
	require.True(t, p.HasChord)
	assert.Equal(t, [2]uint8{0x12, 0x59}, p.Chord)

	// Set 2: 0x1C is A, 0x12/0x59 the shifts, ScrollLock holds layer 1.
	assert.Equal(t, keymap.Plain(hid.KeyA), p.Store.LookupMap(0, 0x1C))
	assert.Equal(t, keymap.Modifier(hid.ModLeftShift), p.Store.LookupMap(0, 0x12))
	assert.Equal(t, keymap.MomentaryLayer(1), p.Store.LookupMap(0, 0x7E))

	// Layer 1 is sparse: F1 position carries media, letters fall through.
	assert.Equal(t, keymap.Consumer(hid.ConsumerPlayPause), p.Store.LookupMap(1, 0x05))
	assert.Equal(t, keymap.Transparent, p.Store.LookupMap(1, 0x1C))
}

func TestM0110Profile(t *testing.T) {
	p := keyboards.Get("m0110")
	require.NotNil(t, p)

	// Keypad Equal engages the action overlay that supplies the arrows the
	// board does not have.
	assert.Equal(t, keymap.Action, p.Store.LookupMap(0, 0x51))
	assert.Equal(t, keymap.Plain(hid.KeyUp), p.Store.LookupAction(0x5B))
	assert.Equal(t, keymap.Plain(hid.KeyDown), p.Store.LookupAction(0x54))

	// Command + Option is the command chord.
	require.True(t, p.HasChord)
	assert.Equal(t, [2]uint8{0x37, 0x3A}, p.Chord)
}

func TestTerminal122Profile(t *testing.T) {
	p := keyboards.Get("terminal122")
	require.NotNil(t, p)

	assert.Equal(t, 2, p.Store.NumLayers())
	assert.Equal(t, keymap.Plain(hid.KeyF13), p.Store.LookupMap(0, 0x08))
	assert.Equal(t, keymap.MomentaryLayer(1), p.Store.LookupMap(0, 0x48))
}

func TestBuiltinsDriveEngine(t *testing.T) {
	// Compiled tables must work end to end: type 'a' on the Model M.
	p := keyboards.Get("modelm")
	require.NotNil(t, p)

	var state hid.State
	e := keymap.NewEngine(p, &state, nil, nil)
	e.HandleEvent(keymap.Event{Pos: 0x1C, Press: true})
	assert.Equal(t, []uint8{hid.KeyA}, state.Keys())
	e.HandleEvent(keymap.Event{Pos: 0x1C, Press: false})
	assert.Empty(t, state.Keys())
}
