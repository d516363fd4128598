package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	_ "github.com/PaulW/rp2040-keyboard-converter-sub001/keyboards/all"
)

func TestResolveProfile(t *testing.T) {
	p, err := resolveProfile("modelm", "")
	require.NoError(t, err)
	assert.Equal(t, "modelm", p.Name)

	// Case-insensitive registry lookup.
	p, err = resolveProfile("MODELM", "")
	require.NoError(t, err)
	assert.Equal(t, "modelm", p.Name)

	_, err = resolveProfile("", "")
	assert.Error(t, err)
	_, err = resolveProfile("modelm", "some.yaml")
	assert.Error(t, err)
	_, err = resolveProfile("no-such-board", "")
	assert.ErrorContains(t, err, "unknown keyboard")
}

func TestResolveProfileFromDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	def := `
name: tiny
layers:
  - "0x01": "A"
`
	require.NoError(t, os.WriteFile(path, []byte(def), 0o644))

	p, err := resolveProfile("", path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", p.Name)
	assert.Equal(t, 1, p.Store.NumLayers())
}

func TestBuildMapFromStruct(t *testing.T) {
	m := buildMapFromStruct(reflect.TypeOf(Run{}))
	assert.Equal(t, "-", m["input"])
	assert.Equal(t, "text", m["inputformat"])
	assert.Equal(t, "boot", m["reportformat"])
	assert.Equal(t, false, m["hex"])
}

func TestConfigInitWritesTemplate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "keyconv.yaml")
	c := ConfigInit{Format: "yaml", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var root map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &root))
	assert.Equal(t, "boot", root["run"]["reportformat"])

	// Refuses to clobber without --force.
	assert.Error(t, c.Run())
	c.Force = true
	assert.NoError(t, c.Run())
}
