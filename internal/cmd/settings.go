package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/chime/internal/config"
	"github.com/renato0307/chime/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show    SettingsShowCmd    `cmd:"show" help:"Show the current settings" default:"1"`
	Example SettingsExampleCmd `cmd:"example" help:"Show settings file location and available options"`
	Keys    SettingsKeysCmd    `cmd:"keys" help:"List soundboard key bindings (defaults and custom)"`
}

// SettingsShowCmd displays the loaded settings
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	data, err := json.MarshalIndent(map[string]any{
		"settings_file": config.GetSettingsPath(),
		"settings":      settings,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// SettingsExampleCmd displays an example settings file
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		value := example[name]
		valueStr := fmt.Sprintf("%v", value)
		switch value.(type) {
		case []string, map[string]any:
			data, _ := json.Marshal(value)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure chime.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsKeysCmd lists soundboard key bindings
type SettingsKeysCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the keys command
func (s *SettingsKeysCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		result := make(map[string]map[string]any, len(names))
		for _, name := range names {
			entry := map[string]any{"default": defaults[name]}
			if custom, ok := customKeys[name]; ok && len(custom) > 0 {
				entry["custom"] = custom
			}
			result[name] = entry
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom")
	fmt.Fprintln(w, "────\t───────\t──────")
	for _, name := range names {
		custom := ""
		if keys, ok := customKeys[name]; ok && len(keys) > 0 {
			custom = strings.Join(keys, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(defaults[name], ", "), custom)
	}
	w.Flush()

	return nil
}
