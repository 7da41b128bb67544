package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/chime/internal/config"
	"github.com/renato0307/chime/internal/logging"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func defaultCLI() *CLI {
	return &CLI{
		Backend:     config.DefaultBackend,
		MaxLogFiles: logging.DefaultMaxLogFiles,
	}
}

func TestCLI_ApplySettings(t *testing.T) {
	settings := &config.Settings{
		Backend:     "silent",
		Debug:       boolPtr(true),
		MaxLogFiles: intPtr(5),
		SoundsDir:   "/srv/sounds",
		Trace:       boolPtr(true),
	}

	t.Run("settings fill defaults", func(t *testing.T) {
		cli := defaultCLI()
		cli.SetSettings(settings)

		cli.applySettings()

		assert.Equal(t, "silent", cli.Backend)
		assert.True(t, cli.Debug)
		assert.Equal(t, 5, cli.MaxLogFiles)
		assert.Equal(t, "/srv/sounds", cli.SoundsDir)
		assert.True(t, cli.Trace)
	})

	t.Run("flags win over settings", func(t *testing.T) {
		cli := defaultCLI()
		cli.Backend = "command"
		cli.MaxLogFiles = 7
		cli.SoundsDir = "/tmp/sounds"
		cli.SetSettings(settings)

		cli.applySettings()

		assert.Equal(t, "command", cli.Backend)
		assert.Equal(t, 7, cli.MaxLogFiles)
		assert.Equal(t, "/tmp/sounds", cli.SoundsDir)
	})

	t.Run("env wins over settings", func(t *testing.T) {
		t.Setenv("CHIME_BACKEND", "speaker")
		t.Setenv("CHIME_DEBUG", "")
		t.Setenv("CHIME_MAX_LOG_FILES", "1000")
		cli := defaultCLI()
		cli.SetSettings(settings)

		cli.applySettings()

		assert.Equal(t, config.DefaultBackend, cli.Backend)
		assert.False(t, cli.Debug)
		assert.Equal(t, logging.DefaultMaxLogFiles, cli.MaxLogFiles)
	})

	t.Run("no settings", func(t *testing.T) {
		cli := defaultCLI()

		cli.applySettings()

		assert.Equal(t, defaultCLI(), cli)
	})
}

func TestRunCmd_ApplySettings(t *testing.T) {
	r := &RunCmd{
		AppearSound:     config.DefaultAppearSound,
		ErrorClearDelay: config.DefaultErrorClearDelay,
		TapSound:        config.DefaultTapSound,
	}

	r.applySettings(&config.Settings{
		AppearSound:     "fanfare.ogg",
		ErrorClearDelay: intPtr(0),
		Preload:         config.StringArray{"a.wav", "b.wav"},
		TapSound:        "tick.wav",
	})

	assert.Equal(t, "fanfare.ogg", r.AppearSound)
	assert.Equal(t, 0, r.ErrorClearDelay)
	assert.Equal(t, "a.wav,b.wav", r.Preload)
	assert.Equal(t, "tick.wav", r.TapSound)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a.wav", "b.wav"}, splitList(" a.wav,, b.wav ,"))
}
