package keymap

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/hid"
)

// Definition is the declarative per-keyboard keymap, as written in a YAML or
// TOML file. Positions are written as integers in any Go literal base
// ("0x1E" being the convention), values as key tokens:
//
//	A, Enter, KpSlash, ...   keyboard usages by name (case-insensitive)
//	LShift, RCtrl, ...       modifiers
//	C(PlayPause)             consumer-page usage by name
//	MO(1)                    hold for map layer 1
//	ACTION                   hold for the action overlay
//	TRANS                    transparent, defer to the layer below
//	NONE                     explicitly unmapped
//	0x64                     raw keyboard usage code
//
// Unlisted positions default to NONE on the base layer and TRANS on higher
// layers, which keeps overlay layers sparse.
type Definition struct {
	Name        string              `yaml:"name" toml:"name"`
	Layers      []map[string]string `yaml:"layers" toml:"layers"`
	Action      map[string]string   `yaml:"action,omitempty" toml:"action,omitempty"`
	CommandMode []string            `yaml:"command_mode,omitempty" toml:"command_mode,omitempty"`
}

// ParseDefinition decodes a definition from YAML or TOML source. Format is
// "yaml" or "toml".
func ParseDefinition(data []byte, format string) (*Definition, error) {
	var def Definition
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse yaml definition: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse toml definition: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
	return &def, nil
}

// LoadDefinition reads and parses a definition file, picking the format from
// the file extension.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseDefinition(data, format)
}

// Compile validates the definition and builds the immutable Profile the
// engine runs against.
func (d *Definition) Compile() (*Profile, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("definition has no name")
	}
	if len(d.Layers) == 0 {
		return nil, fmt.Errorf("%s: definition has no layers", d.Name)
	}
	if len(d.Layers) > MaxLayers {
		return nil, fmt.Errorf("%s: %d layers exceeds the maximum of %d", d.Name, len(d.Layers), MaxLayers)
	}

	maps := make([]Layer, len(d.Layers))
	for i := range maps {
		if i > 0 {
			for p := range maps[i] {
				maps[i][p] = Transparent
			}
		}
		if err := fillLayer(&maps[i], d.Layers[i], len(d.Layers)); err != nil {
			return nil, fmt.Errorf("%s: layer %d: %w", d.Name, i, err)
		}
	}

	var action *Layer
	if len(d.Action) > 0 {
		action = new(Layer)
		if err := fillLayer(action, d.Action, len(d.Layers)); err != nil {
			return nil, fmt.Errorf("%s: action layer: %w", d.Name, err)
		}
	}

	p := &Profile{Name: d.Name, Store: NewStore(maps, action)}

	switch len(d.CommandMode) {
	case 0:
	case 2:
		p1, err := parsePosition(d.CommandMode[0])
		if err != nil {
			return nil, fmt.Errorf("%s: command_mode: %w", d.Name, err)
		}
		p2, err := parsePosition(d.CommandMode[1])
		if err != nil {
			return nil, fmt.Errorf("%s: command_mode: %w", d.Name, err)
		}
		if p1 == p2 {
			return nil, fmt.Errorf("%s: command_mode chord uses position 0x%02X twice", d.Name, p1)
		}
		p.Chord = [2]uint8{p1, p2}
		p.HasChord = true
	default:
		return nil, fmt.Errorf("%s: command_mode needs exactly two positions, got %d", d.Name, len(d.CommandMode))
	}

	return p, nil
}

// MustCompile is Compile for the built-in keyboard packages, whose embedded
// definitions are fixed at build time.
func (d *Definition) MustCompile() *Profile {
	p, err := d.Compile()
	if err != nil {
		panic(err)
	}
	return p
}

func fillLayer(layer *Layer, entries map[string]string, numLayers int) error {
	seen := make(map[uint8]bool, len(entries))
	for posTok, keyTok := range entries {
		pos, err := parsePosition(posTok)
		if err != nil {
			return err
		}
		if seen[pos] {
			return fmt.Errorf("position 0x%02X mapped twice", pos)
		}
		seen[pos] = true
		k, err := ParseKeycode(keyTok)
		if err != nil {
			return fmt.Errorf("position 0x%02X: %w", pos, err)
		}
		if k.Kind == KindMomentaryLayer {
			if n := int(k.Value); n == 0 || n >= numLayers {
				return fmt.Errorf("position 0x%02X: MO(%d) out of range for %d layers", pos, n, numLayers)
			}
		}
		layer[pos] = k
	}
	return nil
}

func parsePosition(tok string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(tok), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("bad position %q: %w", tok, err)
	}
	return uint8(v), nil
}

// ParseKeycode parses a single definition-file key token.
func ParseKeycode(tok string) (Keycode, error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	switch t {
	case "", "none":
		return None, nil
	case "trans", "transparent":
		return Transparent, nil
	case "action":
		return Action, nil
	}

	if inner, ok := cutWrapped(t, "mo(", ")"); ok {
		n, err := strconv.ParseUint(inner, 10, 8)
		if err != nil || n >= MaxLayers {
			return None, fmt.Errorf("bad layer in %q", tok)
		}
		return MomentaryLayer(uint8(n)), nil
	}
	if inner, ok := cutWrapped(t, "c(", ")"); ok {
		if usage, found := hid.NameToConsumer[inner]; found {
			return Consumer(usage), nil
		}
		if v, err := strconv.ParseUint(inner, 0, 16); err == nil {
			return Consumer(uint16(v)), nil
		}
		return None, fmt.Errorf("unknown consumer usage %q", tok)
	}

	if usage, ok := hid.NameToKey[t]; ok {
		return Plain(usage), nil
	}
	if v, err := strconv.ParseUint(t, 0, 8); err == nil && strings.HasPrefix(t, "0x") {
		return Plain(uint8(v)), nil
	}
	return None, fmt.Errorf("unknown key token %q", tok)
}

func cutWrapped(s, prefix, suffix string) (string, bool) {
	if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) {
		return s[len(prefix) : len(s)-len(suffix)], true
	}
	return "", false
}
