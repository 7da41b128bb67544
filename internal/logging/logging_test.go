package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWhenDebugOff(t *testing.T) {
	t.Setenv("CHIME_DEBUG", "")
	t.Setenv("CHIME_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("CHIME_DEBUG", "1") // inherited, keeps stdout quiet
	t.Setenv("CHIME_DEBUG_FILE", "")
	logFile := filepath.Join(t.TempDir(), "nested", "chime.log")

	path, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello from test", "sound", "click.wav")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "click.wav")
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}
	// Non-log files are left alone
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "notes.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.NoError(t, err)
}
