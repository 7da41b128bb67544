package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chime/internal/domain"
)

// TapOption configures PlayOnTap
type TapOption func(*tapEffect)

// WithTapKeys also treats key presses matching binding as taps
func WithTapKeys(binding key.Binding) TapOption {
	return func(t *tapEffect) {
		t.keys = append(t.keys, binding)
	}
}

// tapEffect plays a sound whenever the wrapped model is tapped
type tapEffect struct {
	keys   []key.Binding
	model  tea.Model
	player EffectPlayer
	sound  domain.Descriptor
}

// PlayOnTap wraps model so that sound plays when the user taps it.
// A tap is a left mouse button release, or a key press matching one of the
// bindings given with WithTapKeys. The sound plays before the message is
// delegated to the wrapped model.
func PlayOnTap(model tea.Model, player EffectPlayer, sound domain.Descriptor, opts ...TapOption) tea.Model {
	t := &tapEffect{
		model:  model,
		player: player,
		sound:  sound,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *tapEffect) Init() tea.Cmd {
	return t.model.Init()
}

func (t *tapEffect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.isTap(msg) {
		t.player.Play(t.sound)
	}

	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

func (t *tapEffect) View() string {
	return t.model.View()
}

// Unwrap returns the wrapped model
func (t *tapEffect) Unwrap() tea.Model {
	return t.model
}

func (t *tapEffect) isTap(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
	case tea.KeyMsg:
		for _, binding := range t.keys {
			if key.Matches(msg, binding) {
				return true
			}
		}
	}
	return false
}
