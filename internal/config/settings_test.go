package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsEmpty(t *testing.T) {
	t.Setenv("CHIME_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CHIME_HOME", home)
	t.Setenv("HOME", "/home/tester")

	content := `{
  "backend": "command",
  "debug": true,
  "error_clear_delay": 3,
  "keys": {"play": "space", "quit": ["q", "esc"]},
  "preload": "click.wav, pop.wav",
  "sounds_dir": "~/sounds"
}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "command", settings.Backend)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.ErrorClearDelay)
	assert.Equal(t, 3, *settings.ErrorClearDelay)
	assert.Equal(t, KeyBindingValue{"space"}, settings.Keys["play"])
	assert.Equal(t, KeyBindingValue{"q", "esc"}, settings.Keys["quit"])
	assert.Equal(t, StringArray{"click.wav", "pop.wav"}, settings.Preload)
	assert.Equal(t, filepath.Join("/home/tester", "sounds"), settings.SoundsDir)
	assert.Nil(t, settings.Trace)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CHIME_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("CHIME_HOME", home)

	trace := true
	want := &Settings{
		Backend: "silent",
		Preload: StringArray{"chime.wav"},
		Trace:   &trace,
	}
	require.NoError(t, SaveSettings(want))

	got, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStringArray_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringArray
	}{
		{"array", `["a.wav","b.wav"]`, StringArray{"a.wav", "b.wav"}},
		{"comma separated", `"a.wav, b.wav ,,"`, StringArray{"a.wav", "b.wav"}},
		{"empty string", `""`, StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringArray
			require.NoError(t, got.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"play", "preload", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil", nil, ""},
		{"valid", KeyBindingsConfig{"play": {"space"}, "quit": {"q", "esc"}}, ""},
		{"unknown name", KeyBindingsConfig{"explode": {"x"}}, "unknown key binding 'explode'"},
		{"empty value", KeyBindingsConfig{"play": {""}}, "contains empty value"},
		{"duplicate key", KeyBindingsConfig{"play": {"p"}, "preload": {"p"}}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, name := range []string{
		"appear_sound", "backend", "debug", "error_clear_delay", "keys",
		"max_log_files", "preload", "sounds_dir", "tap_sound", "trace",
	} {
		assert.Contains(t, example, name)
		assert.NotNil(t, example[name], name)
	}
	assert.Equal(t, DefaultBackend, example["backend"])
	assert.Equal(t, 1000, example["max_log_files"])
}

func TestGetChimeHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	t.Setenv("CHIME_HOME", "")
	assert.Equal(t, filepath.Join("/home/tester", ".chime"), GetChimeHome())

	t.Setenv("CHIME_HOME", "~/custom")
	assert.Equal(t, filepath.Join("/home/tester", "custom"), GetChimeHome())
	assert.Equal(t, filepath.Join("/home/tester", "custom", "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join("/home/tester", "custom", "cache"), GetCacheDir())
}
