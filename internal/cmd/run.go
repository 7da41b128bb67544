package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chime/internal/config"
	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/logging"
	"github.com/renato0307/chime/internal/ui"
)

// RunCmd starts the soundboard TUI
type RunCmd struct {
	AppearSound     string `help:"Sound played when the soundboard opens" default:"chime.wav"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	NoWatch         bool   `help:"Do not reload sounds when files in the sounds directory change"`
	Preload         string `help:"Comma-separated sounds to preload (e.g., 'click.wav,pop.wav')" default:""`
	TapSound        string `help:"Sound played when the sound list is tapped" default:"click.wav"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)

	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
	}

	appear, err := domain.ParseDescriptor(r.AppearSound)
	if err != nil {
		return fmt.Errorf("invalid appear sound: %w", err)
	}
	tap, err := domain.ParseDescriptor(r.TapSound)
	if err != nil {
		return fmt.Errorf("invalid tap sound: %w", err)
	}
	preload, err := domain.ParseDescriptors(splitList(r.Preload))
	if err != nil {
		return fmt.Errorf("invalid preload list: %w", err)
	}

	container := cli.Container
	// Trace lines would corrupt the alternate screen, send them to the log file
	container.Registry.SetLogSink(func(line string) {
		logging.Logger.Debug(line)
	})

	var changes <-chan domain.Descriptor
	if !r.NoWatch {
		watcher, err := container.NewWatcher()
		if err != nil {
			logging.Logger.Warn("Failed to watch sounds directory", "error", err)
		} else if watcher != nil {
			defer watcher.Close()
			changes = watcher.Changes()
		}
	}

	board := ui.NewSoundboard(container.Registry, container.Source, changes, ui.SoundboardConfig{
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Keys:            keysConfig,
		Preload:         append([]domain.Descriptor{appear, tap}, preload...),
		SourceName:      container.SourceName,
		TapSound:        tap,
	})

	p := tea.NewProgram(
		ui.PlayOnAppear(board, container.Registry, appear),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logging.Logger.Info("Starting soundboard", "source", container.SourceName)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Soundboard exited normally")
	return nil
}

// applySettings fills flags left at their defaults from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if r.AppearSound == config.DefaultAppearSound && settings.AppearSound != "" {
		r.AppearSound = settings.AppearSound
	}
	if r.TapSound == config.DefaultTapSound && settings.TapSound != "" {
		r.TapSound = settings.TapSound
	}
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *settings.ErrorClearDelay
	}
	if r.Preload == "" && len(settings.Preload) > 0 {
		r.Preload = strings.Join(settings.Preload, ",")
	}
}

// splitList splits a comma-separated flag value, dropping empty entries
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
