package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/hid"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/internal/log"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
	"github.com/PaulW/rp2040-keyboard-converter-sub001/protocol"
)

// Binary output framing: one type byte, one length byte, then the payload.
const (
	reportTypeKeyboard = 0x01
	reportTypeConsumer = 0x02
)

// Run drives the keymap engine over an event stream: decoder events in,
// HID reports out.
type Run struct {
	Keyboard   string `help:"Built-in keyboard profile (see 'keyconv keyboards')" xor:"source" env:"KEYCONV_KEYBOARD"`
	Definition string `help:"Keymap definition file (yaml/toml)" xor:"source" type:"path" env:"KEYCONV_DEFINITION"`

	Input        string `help:"Event source, '-' for stdin" default:"-" type:"path"`
	InputFormat  string `help:"Event framing" enum:"binary,text" default:"text"`
	Output       string `help:"Report destination, '-' for stdout" default:"-" type:"path"`
	ReportFormat string `help:"Keyboard report flavor" enum:"boot,nkro" default:"boot"`
	Hex          bool   `help:"Write reports as hex lines instead of framed binary"`
}

// Run is called by kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, tracer log.Tracer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile, err := resolveProfile(r.Keyboard, r.Definition)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if r.Input != "-" && r.Input != "" {
		f, err := os.Open(r.Input)
		if err != nil {
			return fmt.Errorf("open event source: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	hex := r.Hex
	if r.Output != "-" && r.Output != "" {
		f, err := os.OpenFile(r.Output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open report destination: %w", err)
		}
		defer f.Close()
		out = f
	} else if !hex && term.IsTerminal(int(os.Stdout.Fd())) {
		// Framed binary on a terminal is never what anyone wants.
		logger.Warn("stdout is a terminal, switching to hex report output")
		hex = true
	}

	var reader *protocol.Reader
	if r.InputFormat == "binary" {
		reader = protocol.NewBinaryReader(in)
	} else {
		reader = protocol.NewTextReader(in)
	}

	logger.Info("starting converter core",
		"keyboard", profile.Name,
		"layers", profile.Store.NumLayers(),
		"command_chord", profile.HasChord)

	var state hid.State
	engine := keymap.NewEngine(profile, &state, commandLogger{logger}, logger)

	events := make(chan keymap.Event)
	readErr := make(chan error, 1)
	go func() {
		defer close(events)
		defer close(readErr)
		for {
			ev, err := reader.ReadEvent()
			if err != nil {
				if err != io.EOF {
					readErr <- err
				}
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	// The engine owns no locks: this loop is the single thread of execution
	// that applies events in arrival order and snapshots reports between
	// them.
	var lastKbd, lastCon []byte
	for {
		select {
		case <-ctx.Done():
			logger.Info("interrupted")
			return nil
		case ev, ok := <-events:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("event stream: %w", err)
				}
				logger.Info("event stream finished")
				return nil
			}
			tracer.Event(ev.Press, ev.Pos)
			engine.HandleEvent(ev)

			kbd := state.Report()
			if r.ReportFormat == "boot" {
				kbd = state.BootReport()
			}
			if err := writeIfChanged(out, hex, reportTypeKeyboard, kbd, &lastKbd, tracer); err != nil {
				return err
			}
			con := state.ConsumerReport()
			if err := writeIfChanged(out, hex, reportTypeConsumer, con, &lastCon, tracer); err != nil {
				return err
			}
		}
	}
}

func writeIfChanged(out io.Writer, hex bool, typ byte, report []byte, last *[]byte, tracer log.Tracer) error {
	if *last != nil && string(*last) == string(report) {
		return nil
	}
	*last = report
	tracer.Report(report)

	var err error
	if hex {
		name := "kbd"
		if typ == reportTypeConsumer {
			name = "con"
		}
		_, err = fmt.Fprintf(out, "%s %x\n", name, report)
	} else {
		framed := make([]byte, 0, 2+len(report))
		framed = append(framed, typ, byte(len(report)))
		framed = append(framed, report...)
		_, err = out.Write(framed)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func resolveProfile(name, path string) (*keymap.Profile, error) {
	switch {
	case name != "" && path != "":
		return nil, fmt.Errorf("use either --keyboard or --definition, not both")
	case name != "":
		p := keyboards.Get(name)
		if p == nil {
			return nil, fmt.Errorf("unknown keyboard %q (known: %v)", name, keyboards.Names())
		}
		return p, nil
	case path != "":
		def, err := keymap.LoadDefinition(path)
		if err != nil {
			return nil, err
		}
		return def.Compile()
	default:
		return nil, fmt.Errorf("one of --keyboard or --definition is required")
	}
}

// commandLogger is the out-of-tree command-mode handler: the converter core
// only reports transitions and swallowed events, configuration handling
// lives with the surrounding firmware.
type commandLogger struct {
	logger *slog.Logger
}

func (c commandLogger) CommandModeEnter() { c.logger.Info("command mode engaged") }
func (c commandLogger) CommandModeExit()  { c.logger.Info("command mode released") }
func (c commandLogger) CommandKey(ev keymap.Event) {
	c.logger.Debug("command mode key", "pos", ev.Pos, "press", ev.Press)
}
