package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chime/internal/domain"
)

// appearEffect plays a sound when the wrapped model is initialized
type appearEffect struct {
	model  tea.Model
	player EffectPlayer
	sound  domain.Descriptor
}

// PlayOnAppear wraps model so that sound plays when the model first appears,
// which in Bubble Tea is the call to Init. Everything else is delegated.
func PlayOnAppear(model tea.Model, player EffectPlayer, sound domain.Descriptor) tea.Model {
	return &appearEffect{
		model:  model,
		player: player,
		sound:  sound,
	}
}

func (a *appearEffect) Init() tea.Cmd {
	a.player.Play(a.sound)
	return a.model.Init()
}

func (a *appearEffect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.model, cmd = a.model.Update(msg)
	return a, cmd
}

func (a *appearEffect) View() string {
	return a.model.View()
}

// Unwrap returns the wrapped model
func (a *appearEffect) Unwrap() tea.Model {
	return a.model
}
