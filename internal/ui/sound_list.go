package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/theme"
)

const (
	loadedIcon   = "●"
	unloadedIcon = "○"
)

// loadChecker reports whether a sound is preloaded
type loadChecker interface {
	IsLoaded(d domain.Descriptor) bool
}

// SoundList renders the catalog with a cursor and a loaded marker per sound
type SoundList struct {
	cursor int
	keys   KeyMap
	loaded loadChecker
	sounds []domain.Descriptor
}

// NewSoundList creates a SoundList
func NewSoundList(sounds []domain.Descriptor, loaded loadChecker, keys KeyMap) *SoundList {
	return &SoundList{
		keys:   keys,
		loaded: loaded,
		sounds: sounds,
	}
}

func (l *SoundList) Init() tea.Cmd {
	return nil
}

func (l *SoundList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Up):
			l.move(-1)
		case key.Matches(msg, l.keys.Down):
			l.move(1)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			l.move(-1)
		case tea.MouseButtonWheelDown:
			l.move(1)
		}
	}
	return l, nil
}

func (l *SoundList) View() string {
	if len(l.sounds) == 0 {
		return theme.StatusStyle.Render("No sounds found. Press a to add one.")
	}

	var b strings.Builder
	for i, d := range l.sounds {
		cursor := "  "
		name := theme.NormalStyle.Render(d.ID())
		if i == l.cursor {
			cursor = theme.CursorStyle.Render("> ")
			name = theme.SelectedStyle.Render(d.ID())
		}

		icon := theme.UnloadedIconStyle.Render(unloadedIcon)
		if l.loaded.IsLoaded(d) {
			icon = theme.LoadedIconStyle.Render(loadedIcon)
		}

		fmt.Fprintf(&b, "%s%s %s\n", cursor, icon, name)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Selected returns the sound under the cursor
func (l *SoundList) Selected() (domain.Descriptor, bool) {
	if len(l.sounds) == 0 {
		return domain.Descriptor{}, false
	}
	return l.sounds[l.cursor], true
}

// Sounds returns the listed sounds
func (l *SoundList) Sounds() []domain.Descriptor {
	return l.sounds
}

// SetSounds replaces the listed sounds, keeping the cursor on the same sound when possible
func (l *SoundList) SetSounds(sounds []domain.Descriptor) {
	selected, ok := l.Selected()
	l.sounds = sounds
	l.cursor = 0
	if ok {
		l.Select(selected)
	}
}

// Add appends a sound unless it is already listed, and selects it
func (l *SoundList) Add(d domain.Descriptor) {
	if !l.Select(d) {
		l.sounds = append(l.sounds, d)
		l.cursor = len(l.sounds) - 1
	}
}

// Select moves the cursor to d. Returns false if d is not listed.
func (l *SoundList) Select(d domain.Descriptor) bool {
	for i, s := range l.sounds {
		if s.ID() == d.ID() {
			l.cursor = i
			return true
		}
	}
	return false
}

func (l *SoundList) move(delta int) {
	if len(l.sounds) == 0 {
		return
	}
	l.cursor = max(0, min(len(l.sounds)-1, l.cursor+delta))
}
