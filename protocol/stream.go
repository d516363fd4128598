// Package protocol frames the event stream between a keyboard protocol
// decoder and the keymap engine. The electrical decoding itself (AT/XT/PS2
// bit timing, ADB, terminal set 3) lives outside this module; what crosses
// the boundary is a chronological stream of (position, press) pairs.
//
// Two framings are supported: a 2-byte binary record for decoder pipes, and
// a line-oriented text form ("+1e" / "-1e", hex positions) for hand-driven
// testing and captures.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
)

// Binary record layout.
const (
	flagPress = 0x01

	recordSize = 2
)

// Reader decodes engine events from a stream.
type Reader struct {
	bin bool
	br  *bufio.Reader
	sc  *bufio.Scanner
}

// NewBinaryReader reads 2-byte records: a flag byte (bit 0 set on press)
// followed by the position byte.
func NewBinaryReader(r io.Reader) *Reader {
	return &Reader{bin: true, br: bufio.NewReader(r)}
}

// NewTextReader reads one event per line: '+' or '-' followed by a hex
// position. Blank lines and lines starting with '#' are skipped.
func NewTextReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// ReadEvent returns the next event, or io.EOF at end of stream.
func (r *Reader) ReadEvent() (keymap.Event, error) {
	if r.bin {
		var rec [recordSize]byte
		if _, err := io.ReadFull(r.br, rec[:]); err != nil {
			if err == io.ErrUnexpectedEOF {
				return keymap.Event{}, fmt.Errorf("truncated event record: %w", err)
			}
			return keymap.Event{}, err
		}
		return keymap.Event{Pos: rec[1], Press: rec[0]&flagPress != 0}, nil
	}

	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := ParseTextEvent(line)
		if err != nil {
			return keymap.Event{}, err
		}
		return ev, nil
	}
	if err := r.sc.Err(); err != nil {
		return keymap.Event{}, err
	}
	return keymap.Event{}, io.EOF
}

// ParseTextEvent parses a single "+<hex>" or "-<hex>" event line.
func ParseTextEvent(line string) (keymap.Event, error) {
	if len(line) < 2 {
		return keymap.Event{}, fmt.Errorf("bad event line %q", line)
	}
	var press bool
	switch line[0] {
	case '+':
		press = true
	case '-':
		press = false
	default:
		return keymap.Event{}, fmt.Errorf("bad event line %q: want '+' or '-' prefix", line)
	}
	pos, err := strconv.ParseUint(strings.TrimSpace(line[1:]), 16, 8)
	if err != nil {
		return keymap.Event{}, fmt.Errorf("bad position in %q: %w", line, err)
	}
	return keymap.Event{Pos: uint8(pos), Press: press}, nil
}

// Writer encodes events in either framing.
type Writer struct {
	w   io.Writer
	bin bool
}

func NewBinaryWriter(w io.Writer) *Writer { return &Writer{w: w, bin: true} }
func NewTextWriter(w io.Writer) *Writer   { return &Writer{w: w} }

// WriteEvent emits one event.
func (w *Writer) WriteEvent(ev keymap.Event) error {
	if w.bin {
		var flags byte
		if ev.Press {
			flags |= flagPress
		}
		_, err := w.w.Write([]byte{flags, ev.Pos})
		return err
	}
	sign := "-"
	if ev.Press {
		sign = "+"
	}
	_, err := fmt.Fprintf(w.w, "%s%02x\n", sign, ev.Pos)
	return err
}
