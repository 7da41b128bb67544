package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/chime/internal/config"
)

// KeyMap contains the soundboard keyboard shortcuts.
// It implements help.KeyMap for the bottom help bar.
type KeyMap struct {
	Add        key.Binding
	Down       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	Play       key.Binding
	Preload    key.Binding
	PreloadAll key.Binding
	Quit       key.Binding
	Unload     key.Binding
	Up         key.Binding
}

// NewKeyMap creates a KeyMap, applying custom bindings over the defaults.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	return KeyMap{
		Add:        buildBinding("add", customKeys),
		Down:       buildBinding("down", customKeys),
		ForceQuit:  buildBinding("force_quit", customKeys),
		Help:       buildBinding("help", customKeys),
		Play:       buildBinding("play", customKeys),
		Preload:    buildBinding("preload", customKeys),
		PreloadAll: buildBinding("preload_all", customKeys),
		Quit:       buildBinding("quit", customKeys),
		Unload:     buildBinding("unload", customKeys),
		Up:         buildBinding("up", customKeys),
	}
}

// ShortHelp returns the bindings shown in the collapsed help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Preload, k.Unload, k.Add, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Play, k.Preload, k.PreloadAll, k.Unload, k.Add},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := def.Defaults
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
