// Package keyboards holds the registry of built-in keyboard profiles. Each
// supported keyboard lives in its own subpackage, embeds its declarative
// keymap definition, and registers the compiled profile from init(); the
// `all` package blank-imports the full set.
package keyboards

import (
	"sort"
	"strings"
	"sync"

	"github.com/PaulW/rp2040-keyboard-converter-sub001/keymap"
)

var (
	registry   = make(map[string]*keymap.Profile)
	registryMu sync.RWMutex
)

// Register adds a compiled keyboard profile under its name. Called from
// keyboard package init() functions; names are case-insensitive.
func Register(p *keymap.Profile) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(p.Name)] = p
}

// Get looks up a keyboard profile by name, case-insensitively. Returns nil
// when the keyboard is not registered.
func Get(name string) *keymap.Profile {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[strings.ToLower(name)]
}

// Names returns the registered keyboard names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
