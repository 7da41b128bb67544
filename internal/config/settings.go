package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds soundboard key overrides.
// Keys are binding names (e.g., "play", "preload"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown binding names and keys assigned twice.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults for settings that have a non-zero fallback
const (
	DefaultAppearSound     = "chime.wav"
	DefaultBackend         = "speaker"
	DefaultErrorClearDelay = 10
	DefaultTapSound        = "click.wav"
)

// Settings represents the structure of $CHIME_HOME/settings.json
type Settings struct {
	AppearSound     string            `json:"appear_sound,omitempty"`
	Backend         string            `json:"backend,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	Preload         StringArray       `json:"preload,omitempty"`
	SoundsDir       string            `json:"sounds_dir,omitempty"`
	TapSound        string            `json:"tap_sound,omitempty"`
	Trace           *bool             `json:"trace,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $CHIME_HOME/settings.json (or ~/.chime/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.SoundsDir != "" {
		settings.SoundsDir = ExpandPath(settings.SoundsDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CHIME_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
