package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable soundboard key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next sound"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous sound"},

	// Sound keys
	{Name: "add", Defaults: []string{"a"}, Help: "add sound"},
	{Name: "play", Defaults: []string{"enter"}, Help: "play sound"},
	{Name: "preload", Defaults: []string{"p"}, Help: "preload sound"},
	{Name: "preload_all", Defaults: []string{"P"}, Help: "preload all sounds"},
	{Name: "unload", Defaults: []string{"u"}, Help: "unload sound"},

	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "toggle help"},
	{Name: "quit", Defaults: []string{"q"}, Help: "quit"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	for _, def := range AllKeyDefinitions {
		if def.Name == name {
			return &def
		}
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
