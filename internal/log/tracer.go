package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// Tracer records the raw traffic through the converter: decoder events in,
// HID report bytes out. A nil writer makes every call a no-op.
type Tracer interface {
	Event(press bool, pos uint8)
	Report(data []byte)
}

type tracer struct {
	w  io.Writer
	mu sync.Mutex
}

// NewTracer wraps a writer in a Tracer.
func NewTracer(w io.Writer) Tracer {
	return &tracer{w: w}
}

func (t *tracer) Event(press bool, pos uint8) {
	if t.w == nil {
		return
	}
	dir := "up  "
	if press {
		dir = "down"
	}
	t.write(fmt.Sprintf("%s key %s pos=%02x\n", timestamp(), dir, pos))
}

func (t *tracer) Report(data []byte) {
	if t.w == nil || len(data) == 0 {
		return
	}
	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}
	t.write(fmt.Sprintf("%s report: %d bytes, hex: %s\n", timestamp(), len(data), hexbuf.String()))
}

func (t *tracer) write(line string) {
	t.mu.Lock()
	_, _ = t.w.Write([]byte(line))
	t.mu.Unlock()
}

func timestamp() string {
	return time.Now().Format("2006/01/02 15:04:05")
}
