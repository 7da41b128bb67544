package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chime/internal/config"
	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/logging"
	"github.com/renato0307/chime/internal/ports"
	"github.com/renato0307/chime/internal/services"
	"github.com/renato0307/chime/internal/theme"
)

type boardState int

// defaultWidth is used until the first tea.WindowSizeMsg arrives
const defaultWidth = 80

const (
	stateBoard boardState = iota
	stateAdding
)

// SoundboardConfig holds the soundboard settings resolved by the CLI
type SoundboardConfig struct {
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Preload         []domain.Descriptor // Sounds preloaded when the board is created
	SourceName      string              // Shown under the title
	TapSound        domain.Descriptor   // Played when the sound list is tapped
}

// Soundboard is the Bubble Tea model for the soundboard TUI.
// It owns the registry: every registry call happens inside Init or Update.
type Soundboard struct {
	addForm        *AddSoundForm
	catalog        ports.SoundCatalog
	changes        <-chan domain.Descriptor
	errorManager   *ErrorManager
	errorPending   bool
	help           help.Model
	keys           KeyMap
	list           tea.Model // sounds wrapped with the tap effect
	pendingReloads map[string]struct{}
	registry       *services.SoundEffectRegistry
	sounds         *SoundList
	sourceName     string
	state          boardState
	status         string
	width          int
}

// NewSoundboard creates a soundboard over the catalog. changes may be nil when
// the catalog is not watched.
func NewSoundboard(
	registry *services.SoundEffectRegistry,
	catalog ports.SoundCatalog,
	changes <-chan domain.Descriptor,
	cfg SoundboardConfig,
) *Soundboard {
	keys := NewKeyMap(cfg.Keys)
	b := &Soundboard{
		catalog:        catalog,
		changes:        changes,
		errorManager:   NewErrorManager(cfg.ErrorClearDelay),
		help:           newHelp(),
		keys:           keys,
		pendingReloads: make(map[string]struct{}),
		registry:       registry,
		sourceName:     cfg.SourceName,
		state:          stateBoard,
	}
	registry.SetErrorHandler(b.onSoundError)

	listed, err := catalog.List()
	if err != nil {
		logging.Logger.Warn("Failed to list sounds", "error", err)
		b.setError(err)
	}
	b.sounds = NewSoundList(listed, registry, keys)
	b.list = PlayOnTap(b.sounds, registry, cfg.TapSound,
		WithTapKeys(keys.Up),
		WithTapKeys(keys.Down),
	)

	registry.Preload(cfg.Preload, catalog)
	logging.Logger.Debug("Soundboard created", "sounds", len(listed), "preloaded", registry.Len())

	return b
}

func (b *Soundboard) Init() tea.Cmd {
	return tea.Batch(b.list.Init(), b.waitForChange(), b.drainErrors())
}

func (b *Soundboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.help.Width = msg.Width
	case clearErrorMsg:
		b.errorManager.ClearError(msg)
		return b, nil
	case soundChangedMsg:
		b.reload(msg.Sound)
		cmds = append(cmds, b.waitForChange(), b.drainErrors())
		return b, tea.Batch(cmds...)
	case watcherClosedMsg:
		logging.Logger.Debug("Sound watcher closed")
		b.changes = nil
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keys.ForceQuit) {
			return b, tea.Quit
		}
	}

	if b.state == stateAdding {
		cmds = append(cmds, b.updateAddForm(msg))
	} else {
		cmds = append(cmds, b.updateBoard(msg))
	}

	cmds = append(cmds, b.drainErrors())
	return b, tea.Batch(cmds...)
}

func (b *Soundboard) updateBoard(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.list, cmd = b.list.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, b.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, b.keys.Help):
		b.help.ShowAll = !b.help.ShowAll
	case key.Matches(keyMsg, b.keys.Add):
		b.addForm = NewAddSoundForm()
		b.state = stateAdding
		return b.addForm.Init()
	case key.Matches(keyMsg, b.keys.PreloadAll):
		b.registry.Preload(b.sounds.Sounds(), b.catalog)
		b.status = fmt.Sprintf("%d sounds preloaded", b.registry.Len())
	case key.Matches(keyMsg, b.keys.Play):
		b.withSelected(func(d domain.Descriptor) {
			b.registry.Play(d)
			b.status = "played " + d.ID()
		})
	case key.Matches(keyMsg, b.keys.Preload):
		b.withSelected(func(d domain.Descriptor) {
			b.registry.Preload([]domain.Descriptor{d}, b.catalog)
			if b.registry.IsLoaded(d) {
				b.status = "preloaded " + d.ID()
			}
		})
	case key.Matches(keyMsg, b.keys.Unload):
		b.withSelected(func(d domain.Descriptor) {
			b.registry.Unload(d)
			delete(b.pendingReloads, d.ID())
			b.status = "unloaded " + d.ID()
		})
	default:
		var cmd tea.Cmd
		b.list, cmd = b.list.Update(msg)
		return cmd
	}
	return nil
}

func (b *Soundboard) updateAddForm(msg tea.Msg) tea.Cmd {
	_, cmd := b.addForm.Update(msg)
	if !b.addForm.Completed {
		return cmd
	}

	result := b.addForm.Result()
	b.addForm = nil
	b.state = stateBoard
	if !result.Cancelled {
		b.addSound(result)
	}
	return nil
}

// addSound preloads a sound entered in the add form and lists it once loaded
func (b *Soundboard) addSound(result AddSoundFormResult) {
	d := result.Sound
	b.registry.Preload([]domain.Descriptor{d}, b.catalog)
	if !b.registry.IsLoaded(d) {
		return
	}
	b.sounds.Add(d)
	b.status = "preloaded " + d.ID()
	if result.Play {
		b.registry.Play(d)
		b.status = "played " + d.ID()
	}
}

func (b *Soundboard) View() string {
	var s strings.Builder

	s.WriteString(renderHeader(fmt.Sprintf("%s · %d preloaded", b.sourceName, b.registry.Len())))
	s.WriteString("\n")

	if b.state == stateAdding && b.addForm != nil {
		s.WriteString(b.addForm.View())
		return s.String()
	}

	s.WriteString(b.list.View())
	s.WriteString("\n\n")

	if b.errorManager.HasError() {
		width := b.width
		if width == 0 {
			width = defaultWidth
		}
		s.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(b.errorManager.GetError(), width)))
	} else if b.status != "" {
		s.WriteString(theme.StatusStyle.Render(b.status))
	}
	s.WriteString("\n")
	s.WriteString(theme.HelpStyle.Render(b.help.View(b.keys)))

	return s.String()
}

// newHelp creates the help bar with the theme's styles
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKeyStyle
	h.Styles.FullKey = theme.HelpKeyStyle
	h.Styles.ShortDesc = theme.HelpDescStyle
	h.Styles.FullDesc = theme.HelpDescStyle
	h.Styles.ShortSeparator = theme.HelpSeparatorStyle
	h.Styles.FullSeparator = theme.HelpSeparatorStyle
	return h
}

// reload refreshes the list after a watcher change and re-creates the handle
// of a changed sound that was preloaded. A sound whose reload failed, or whose
// file disappeared, stays pending and is loaded again on its next change.
func (b *Soundboard) reload(d domain.Descriptor) {
	listed, err := b.catalog.List()
	if err != nil {
		logging.Logger.Warn("Failed to list sounds", "error", err)
	} else {
		b.sounds.SetSounds(listed)
	}

	id := d.ID()
	if _, pending := b.pendingReloads[id]; !pending && !b.registry.IsLoaded(d) {
		return
	}

	b.registry.Unload(d)
	b.pendingReloads[id] = struct{}{}
	if err == nil && !slices.Contains(listed, d) {
		b.status = "removed " + id
		return
	}

	b.registry.Preload([]domain.Descriptor{d}, b.catalog)
	if !b.registry.IsLoaded(d) {
		logging.Logger.Debug("Sound reload pending", "sound", id)
		return
	}
	delete(b.pendingReloads, id)
	b.status = "reloaded " + id
}

func (b *Soundboard) withSelected(fn func(d domain.Descriptor)) {
	if d, ok := b.sounds.Selected(); ok {
		fn(d)
	}
}

// onSoundError receives registry error signals
func (b *Soundboard) onSoundError(err error) {
	b.setError(err)
}

func (b *Soundboard) setError(err error) {
	b.errorManager.SetError(err)
	b.errorPending = true
}

// drainErrors schedules the auto-clear for an error raised during the current update
func (b *Soundboard) drainErrors() tea.Cmd {
	if !b.errorPending {
		return nil
	}
	b.errorPending = false
	return b.errorManager.ClearAfterDelay()
}

// waitForChange forwards the next watcher change into the update loop
func (b *Soundboard) waitForChange() tea.Cmd {
	if b.changes == nil {
		return nil
	}
	changes := b.changes
	return func() tea.Msg {
		d, ok := <-changes
		if !ok {
			return watcherClosedMsg{}
		}
		return soundChangedMsg{Sound: d}
	}
}
