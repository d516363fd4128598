package protocol_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/protocol"
)

func TestTextReader(t *testing.T) {
	input := strings.Join([]string{
		"# capture from a model m boot",
		"+1e",
		"",
		"-1e",
		"+5A",
	}, "\n")

	r := protocol.NewTextReader(strings.NewReader(input))

	want := []keymap.Event{
		{Pos: 0x1E, Press: true},
		{Pos: 0x1E, Press: false},
		{Pos: 0x5A, Press: true},
	}
	for _, w := range want {
		ev, err := r.ReadEvent()
		require.NoError(t, err)
		assert.Equal(t, w, ev)
	}
	_, err := r.ReadEvent()
	assert.Equal(t, io.EOF, err)
}

func TestTextReaderBadLines(t *testing.T) {
	for _, line := range []string{"*1e", "+", "+zz", "+100"} {
		r := protocol.NewTextReader(strings.NewReader(line))
		_, err := r.ReadEvent()
		assert.Error(t, err, "line %q", line)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	events := []keymap.Event{
		{Pos: 0x00, Press: true},
		{Pos: 0xFF, Press: false},
		{Pos: 0x58, Press: true},
		{Pos: 0x58, Press: false},
	}

	var buf bytes.Buffer
	w := protocol.NewBinaryWriter(&buf)
	for _, ev := range events {
		require.NoError(t, w.WriteEvent(ev))
	}

	r := protocol.NewBinaryReader(&buf)
	for _, want := range events {
		ev, err := r.ReadEvent()
		require.NoError(t, err)
		assert.Equal(t, want, ev)
	}
	_, err := r.ReadEvent()
	assert.Equal(t, io.EOF, err)
}

func TestBinaryReaderTruncated(t *testing.T) {
	r := protocol.NewBinaryReader(bytes.NewReader([]byte{0x01}))
	_, err := r.ReadEvent()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := protocol.NewTextWriter(&buf)
	require.NoError(t, w.WriteEvent(keymap.Event{Pos: 0x1E, Press: true}))
	require.NoError(t, w.WriteEvent(keymap.Event{Pos: 0x1E, Press: false}))
	assert.Equal(t, "+1e\n-1e\n", buf.String())
}
