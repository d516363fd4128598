package keymap

import (
	"io"
	"log/slog"
)

// Event is one raw key transition from a protocol decoder: a matrix position
// and whether the key went down. Events arrive one at a time in chronological
// order; the decoders guarantee at most one outstanding press per position.
type Event struct {
	Pos   uint8
	Press bool
}

// Emitter is the boundary to the HID report assembler. The engine calls it
// synchronously from HandleEvent with fully resolved key transitions;
// implementations must not block.
type Emitter interface {
	KeyDown(usage uint8)
	KeyUp(usage uint8)
	ModifierDown(bit uint8)
	ModifierUp(bit uint8)
	ConsumerDown(usage uint16)
	ConsumerUp(usage uint16)
}

// CommandHandler receives command-mode transitions and the raw events
// suppressed while command mode is active. All methods are optional in
// spirit: a nil handler on the engine disables the callbacks but not the
// suppression itself.
type CommandHandler interface {
	CommandModeEnter()
	CommandModeExit()
	CommandKey(ev Event)
}

// Profile is a compiled keyboard: its tables plus the command-mode chord, if
// the keyboard defines one.
type Profile struct {
	Name     string
	Store    *Store
	Chord    [2]uint8
	HasChord bool
}

// pressRecord remembers, for a held position, what the press resolved to and
// which map layer was current at press time. Release resolves against this
// record, never against the live layer stack, so a key always releases as
// the same symbol it pressed as.
type pressRecord struct {
	held   bool
	action Keycode
	layer  uint8
}

// Engine turns raw decoder events into emitted HID transitions. It runs
// strictly single-threaded: HandleEvent must be called one event at a time,
// in arrival order, from a single goroutine (or from a section the caller
// serializes). Nothing on the event path allocates.
type Engine struct {
	store  *Store
	emit   Emitter
	cmd    CommandHandler
	logger *slog.Logger

	layers      layerStack
	pressed     [NumPositions]pressRecord
	actionHeld  int
	chord       chordDetector
	commandMode bool
}

// NewEngine builds an engine for a compiled keyboard profile. A nil logger
// discards; cmd may be nil when the surrounding program has no command-mode
// handler.
func NewEngine(p *Profile, emit Emitter, cmd CommandHandler, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		store:  p.Store,
		emit:   emit,
		cmd:    cmd,
		logger: logger,
		layers: newLayerStack(),
		chord:  newChordDetector(p.Chord[0], p.Chord[1], p.HasChord),
	}
}

// InCommandMode reports whether the command chord is currently engaged.
func (e *Engine) InCommandMode() bool { return e.commandMode }

// CurrentLayer returns the map layer new presses resolve against.
func (e *Engine) CurrentLayer() uint8 { return e.layers.Current() }

// HandleEvent applies one raw event. The chord detector sees every event
// first: completing the chord swallows the event and suspends normal
// resolution until the chord breaks.
func (e *Engine) HandleEvent(ev Event) {
	was, now := e.chord.Update(ev)
	switch {
	case !was && now:
		e.enterCommandMode()
		return
	case was && !now:
		e.exitCommandMode()
		return
	}

	if e.commandMode {
		if e.cmd != nil {
			e.cmd.CommandKey(ev)
		}
		return
	}

	if ev.Press {
		e.press(ev.Pos)
	} else {
		e.release(ev.Pos)
	}
}

// resolve walks transparent entries from the given layer down to the base
// layer. Terminates within layer+1 steps; a Transparent at layer 0 is None.
func (e *Engine) resolve(layer uint8, pos uint8) Keycode {
	for l := int(layer); l >= 0; l-- {
		if k := e.store.LookupMap(l, int(pos)); k.Kind != KindTransparent {
			return k
		}
	}
	return None
}

func (e *Engine) press(pos uint8) {
	layer := e.layers.Current()

	var k Keycode
	if e.actionHeld > 0 {
		// Action overlay engaged: consult the action table directly.
		// No transparency there; an empty slot is a dead key.
		k = e.store.LookupAction(int(pos))
		if k.Kind == KindTransparent {
			k = None
		}
	} else {
		k = e.resolve(layer, pos)
	}

	e.pressed[pos] = pressRecord{held: true, action: k, layer: layer}

	switch k.Kind {
	case KindMomentaryLayer:
		e.layers.Activate(uint8(k.Value))
	case KindAction:
		e.actionHeld++
	case KindPlain:
		e.emit.KeyDown(uint8(k.Value))
	case KindModifier:
		e.emit.ModifierDown(uint8(k.Value))
	case KindConsumer:
		e.emit.ConsumerDown(k.Value)
	}
	e.logger.Debug("key press", "pos", pos, "layer", layer, "action", k.String())
}

func (e *Engine) release(pos uint8) {
	rec := &e.pressed[pos]
	if !rec.held {
		// Duplicate or spurious release from the protocol layer.
		e.logger.Debug("release without press", "pos", pos)
		return
	}
	k := rec.action
	rec.held = false

	e.unwind(k)
	e.logger.Debug("key release", "pos", pos, "layer", rec.layer, "action", k.String())
}

// unwind emits the key-up side of a resolved press.
func (e *Engine) unwind(k Keycode) {
	switch k.Kind {
	case KindMomentaryLayer:
		e.layers.Deactivate(uint8(k.Value))
	case KindAction:
		if e.actionHeld > 0 {
			e.actionHeld--
		}
	case KindPlain:
		e.emit.KeyUp(uint8(k.Value))
	case KindModifier:
		e.emit.ModifierUp(uint8(k.Value))
	case KindConsumer:
		e.emit.ConsumerUp(k.Value)
	}
}

// enterCommandMode releases every outstanding press before suppression
// starts, so the HID side never sticks on keys whose releases will be
// swallowed. Layer holds and the action counter unwind with them.
func (e *Engine) enterCommandMode() {
	for pos := range e.pressed {
		rec := &e.pressed[pos]
		if !rec.held {
			continue
		}
		rec.held = false
		e.unwind(rec.action)
	}
	e.layers.Reset()
	e.actionHeld = 0
	e.commandMode = true
	e.logger.Info("command mode enter")
	if e.cmd != nil {
		e.cmd.CommandModeEnter()
	}
}

func (e *Engine) exitCommandMode() {
	e.commandMode = false
	e.logger.Info("command mode exit")
	if e.cmd != nil {
		e.cmd.CommandModeExit()
	}
}
