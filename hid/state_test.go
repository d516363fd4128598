package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/hid"
)

func TestStateReport(t *testing.T) {
	var s hid.State
	s.ModifierDown(hid.ModLeftShift)
	s.KeyDown(hid.KeyA)
	s.KeyDown(hid.KeyEnter)

	rpt := s.Report()
	require.Len(t, rpt, 34)
	assert.Equal(t, uint8(hid.ModLeftShift), rpt[0])
	assert.Equal(t, uint8(0), rpt[1])
	assert.NotZero(t, rpt[2+hid.KeyA/8]&(1<<(hid.KeyA%8)))
	assert.NotZero(t, rpt[2+hid.KeyEnter/8]&(1<<(hid.KeyEnter%8)))

	s.KeyUp(hid.KeyA)
	s.ModifierUp(hid.ModLeftShift)
	rpt = s.Report()
	assert.Equal(t, uint8(0), rpt[0])
	assert.Zero(t, rpt[2+hid.KeyA/8]&(1<<(hid.KeyA%8)))
}

func TestStateKeysSorted(t *testing.T) {
	var s hid.State
	s.KeyDown(hid.KeyZ)
	s.KeyDown(hid.KeyA)
	s.KeyDown(hid.KeyF24)
	assert.Equal(t, []uint8{hid.KeyA, hid.KeyZ, hid.KeyF24}, s.Keys())
}

func TestBootReport(t *testing.T) {
	var s hid.State
	s.ModifierDown(hid.ModLeftCtrl)
	s.KeyDown(hid.KeyC)

	rpt := s.BootReport()
	require.Len(t, rpt, 8)
	assert.Equal(t, uint8(hid.ModLeftCtrl), rpt[0])
	assert.Equal(t, uint8(hid.KeyC), rpt[2])
	assert.Equal(t, uint8(0), rpt[3])
}

func TestBootReportRollover(t *testing.T) {
	var s hid.State
	for _, k := range []uint8{hid.KeyA, hid.KeyB, hid.KeyC, hid.KeyD, hid.KeyE, hid.KeyF, hid.KeyG} {
		s.KeyDown(k)
	}
	rpt := s.BootReport()
	for i := 2; i < 8; i++ {
		assert.Equal(t, uint8(0x01), rpt[i], "phantom state fills every key slot")
	}
}

func TestConsumerReport(t *testing.T) {
	var s hid.State
	s.ConsumerDown(hid.ConsumerVolumeUp)
	assert.Equal(t, []byte{0xE9, 0x00}, s.ConsumerReport())

	// A release of a stale usage does not clear a newer one.
	s.ConsumerDown(hid.ConsumerPlayPause)
	s.ConsumerUp(hid.ConsumerVolumeUp)
	assert.Equal(t, []byte{0xCD, 0x00}, s.ConsumerReport())

	s.ConsumerUp(hid.ConsumerPlayPause)
	assert.Equal(t, []byte{0x00, 0x00}, s.ConsumerReport())
}

func TestLEDStateRoundTrip(t *testing.T) {
	led := hid.DecodeLED(hid.LEDCapsLock | hid.LEDScrollLock)
	assert.True(t, led.CapsLock)
	assert.True(t, led.ScrollLock)
	assert.False(t, led.NumLock)
	assert.Equal(t, uint8(hid.LEDCapsLock|hid.LEDScrollLock), led.Encode())
}

func TestModifierHelpers(t *testing.T) {
	assert.True(t, hid.IsModifier(hid.KeyLeftCtrl))
	assert.True(t, hid.IsModifier(hid.KeyRightGUI))
	assert.False(t, hid.IsModifier(hid.KeyA))
	assert.Equal(t, uint8(hid.ModLeftCtrl), hid.ModifierBit(hid.KeyLeftCtrl))
	assert.Equal(t, uint8(hid.ModRightShift), hid.ModifierBit(hid.KeyRightShift))
	assert.Equal(t, uint8(0), hid.ModifierBit(hid.KeyA))
}

func TestNameMaps(t *testing.T) {
	assert.Equal(t, uint8(hid.KeyA), hid.NameToKey["a"])
	assert.Equal(t, uint8(hid.KeyKpSlash), hid.NameToKey["kpslash"])
	assert.Equal(t, uint16(hid.ConsumerPlayPause), hid.NameToConsumer["playpause"])
}
