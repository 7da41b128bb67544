package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CHIME_HOME.
type TestEnvironment struct {
	ChimeHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CHIME_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		ChimeHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CHIME_* variables and sets:
//   - CHIME_HOME to the temp directory
//   - CHIME_BACKEND to "silent"
//   - CHIME_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CHIME_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	defaults := map[string]string{
		"CHIME_BACKEND": "silent",
		"CHIME_DEBUG":   "",
		"CHIME_HOME":    e.ChimeHome,
	}
	for k, v := range defaults {
		if _, overridden := e.extraEnv[k]; !overridden {
			env = append(env, k+"="+v)
		}
	}

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// WriteSettings writes settings.json into CHIME_HOME.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	path := filepath.Join(e.ChimeHome, "settings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SoundsDir creates a sounds directory holding the given files and returns its path.
func (e *TestEnvironment) SoundsDir(files ...string) string {
	e.tb.Helper()
	dir := filepath.Join(e.ChimeHome, "sounds")
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.tb.Fatalf("Failed to create sounds directory: %v", err)
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("RIFF"), 0644); err != nil {
			e.tb.Fatalf("Failed to write sound %s: %v", name, err)
		}
	}
	return dir
}
