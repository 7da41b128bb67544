package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/logging"
)

// PlayCmd preloads and plays sounds from the command line
type PlayCmd struct {
	Linger time.Duration `help:"How long to wait for playback before exiting" default:"1s"`
	Sounds []string      `arg:"" help:"Sounds to play (NAME.EXT)" name:"sound"`
}

// Run preloads every sound, plays the ones that loaded and reports the rest
func (p *PlayCmd) Run(cli *CLI) error {
	descriptors, err := domain.ParseDescriptors(p.Sounds)
	if err != nil {
		return err
	}

	registry := cli.Container.Registry
	var signals []error
	registry.SetErrorHandler(func(err error) {
		signals = append(signals, err)
	})
	defer registry.SetErrorHandler(nil)

	registry.Preload(descriptors, cli.Container.Source)

	played := 0
	for _, d := range descriptors {
		if !registry.IsLoaded(d) {
			continue
		}
		registry.Play(d)
		played++
	}
	logging.Logger.Info("Played sounds", "requested", len(descriptors), "played", played)

	if played > 0 && p.Linger > 0 {
		time.Sleep(p.Linger)
	}

	if err := errors.Join(signals...); err != nil {
		return fmt.Errorf("%d of %d sounds failed:\n%w", len(signals), len(descriptors), err)
	}
	return nil
}
