package cmd

import (
	"fmt"
	"io"
	"os"

	adapterresources "github.com/renato0307/chime/internal/adapters/resources"
	adaptersound "github.com/renato0307/chime/internal/adapters/sound"
	"github.com/renato0307/chime/internal/config"
	"github.com/renato0307/chime/internal/logging"
	"github.com/renato0307/chime/internal/ports"
	"github.com/renato0307/chime/internal/services"
)

// builtinSourceName is shown when sounds come from the binary
const builtinSourceName = "built-in sounds"

// Container holds all dependencies for the application
type Container struct {
	Audio      ports.AudioSystem
	Registry   *services.SoundEffectRegistry
	Source     *adapterresources.FSSource
	SourceName string
}

// NewContainer creates a new Container with all dependencies wired.
// An empty soundsDir selects the sounds embedded in the binary.
func NewContainer(backend, soundsDir string, trace bool) (*Container, error) {
	source := adapterresources.Embedded()
	sourceName := builtinSourceName
	if soundsDir != "" {
		dir := config.ExpandPath(soundsDir)
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("sounds directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("sounds directory %s is not a directory", dir)
		}
		source = adapterresources.NewDirSource(dir)
		sourceName = dir
	}

	audio, err := adaptersound.NewSystem(backend, config.GetCacheDir())
	if err != nil {
		return nil, err
	}

	registry := services.NewSoundEffectRegistry(audio, services.WithDebug(trace))

	logging.Logger.Debug("Container created", "backend", backend, "source", sourceName, "trace", trace)

	return &Container{
		Audio:      audio,
		Registry:   registry,
		Source:     source,
		SourceName: sourceName,
	}, nil
}

// NewWatcher watches the sounds directory. Returns nil when sounds are embedded.
func (c *Container) NewWatcher() (*adapterresources.Watcher, error) {
	if c.Source.Dir() == "" {
		return nil, nil
	}
	return adapterresources.NewWatcher(c.Source.Dir())
}

// Close unloads every sound and releases the audio system
func (c *Container) Close() error {
	c.Registry.UnloadAll()
	if closer, ok := c.Audio.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
