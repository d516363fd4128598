package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerStackHighestWins(t *testing.T) {
	ls := newLayerStack()
	assert.Equal(t, uint8(0), ls.Current())

	ls.Activate(1)
	ls.Activate(3)
	ls.Activate(2)
	assert.Equal(t, uint8(3), ls.Current())

	ls.Deactivate(3)
	assert.Equal(t, uint8(2), ls.Current())
	ls.Deactivate(1)
	assert.Equal(t, uint8(2), ls.Current())
	ls.Deactivate(2)
	assert.Equal(t, uint8(0), ls.Current())
}

func TestLayerStackHoldCounts(t *testing.T) {
	ls := newLayerStack()
	ls.Activate(2)
	ls.Activate(2)
	ls.Deactivate(2)
	assert.Equal(t, uint8(2), ls.Current(), "layer must survive until the last hold releases")
	ls.Deactivate(2)
	assert.Equal(t, uint8(0), ls.Current())
}

func TestLayerStackDefensive(t *testing.T) {
	ls := newLayerStack()

	// Deactivating an inactive layer, or layer 0, changes nothing.
	ls.Deactivate(5)
	ls.Deactivate(0)
	assert.Equal(t, uint8(0), ls.Current())

	// Out-of-range layers are ignored outright.
	ls.Activate(MaxLayers)
	assert.Equal(t, uint8(0), ls.Current())

	// Surplus deactivations do not go negative.
	ls.Activate(1)
	ls.Deactivate(1)
	ls.Deactivate(1)
	ls.Activate(1)
	assert.Equal(t, uint8(1), ls.Current())
	ls.Deactivate(1)
	assert.Equal(t, uint8(0), ls.Current())
}

func TestChordDetectorEdges(t *testing.T) {
	c := newChordDetector(0x01, 0x02, true)

	was, now := c.Update(Event{Pos: 0x01, Press: true})
	assert.False(t, was)
	assert.False(t, now)

	was, now = c.Update(Event{Pos: 0x02, Press: true})
	assert.False(t, was)
	assert.True(t, now)

	// Unrelated events do not disturb the mask.
	was, now = c.Update(Event{Pos: 0x30, Press: true})
	assert.True(t, was)
	assert.True(t, now)

	was, now = c.Update(Event{Pos: 0x01, Press: false})
	assert.True(t, was)
	assert.False(t, now)
}

func TestChordDetectorDisabled(t *testing.T) {
	c := newChordDetector(0x01, 0x02, false)
	c.Update(Event{Pos: 0x01, Press: true})
	_, now := c.Update(Event{Pos: 0x02, Press: true})
	assert.False(t, now)
}
