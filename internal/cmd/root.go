package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/chime/internal/config"
	"github.com/renato0307/chime/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Backend     string           `help:"Audio backend (speaker, command or silent)" enum:"speaker,command,silent" default:"speaker" env:"CHIME_BACKEND"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	SoundsDir   string           `help:"Directory to load sounds from (default: built-in sounds)" env:"CHIME_SOUNDS_DIR"`
	Trace       bool             `help:"Print sound registry trace lines"`

	Run      RunCmd      `cmd:"" help:"Start the soundboard TUI (default)" default:"1"`
	Play     PlayCmd     `cmd:"play" help:"Preload and play sounds"`
	List     ListCmd     `cmd:"list" help:"List the available sounds"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings and key bindings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Debug logging enabled", "file", logFilePath)
	}

	// Container is created after logging so adapters log to the right place
	container, err := NewContainer(c.Backend, c.SoundsDir, c.Trace)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("CHIME_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("CHIME_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}

	if c.Backend == config.DefaultBackend {
		if _, hasEnv := os.LookupEnv("CHIME_BACKEND"); !hasEnv && c.settings.Backend != "" {
			c.Backend = c.settings.Backend
		}
	}

	if c.SoundsDir == "" && c.settings.SoundsDir != "" {
		c.SoundsDir = c.settings.SoundsDir
	}

	if !c.Trace && c.settings.Trace != nil && *c.settings.Trace {
		c.Trace = true
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
