package resources

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chime/internal/domain"
)

func TestDescriptorForEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  fsnotify.Event
		wantOK bool
	}{
		{"write wav", fsnotify.Event{Name: "/s/click.wav", Op: fsnotify.Write}, true},
		{"create mp3", fsnotify.Event{Name: "/s/alert.mp3", Op: fsnotify.Create}, true},
		{"remove", fsnotify.Event{Name: "/s/click.wav", Op: fsnotify.Remove}, true},
		{"rename", fsnotify.Event{Name: "/s/click.wav", Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: "/s/click.wav", Op: fsnotify.Chmod}, false},
		{"text file", fsnotify.Event{Name: "/s/notes.txt", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := descriptorForEvent(tt.event)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestWatcher_ReportsWrittenSound(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "click.wav"), []byte("RIFF"), 0644))

	select {
	case d := <-watcher.Changes():
		assert.Equal(t, domain.NewDescriptor("click", "wav"), d)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatcher_ReportsRemovedSound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pop.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0644))

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.Remove(path))

	select {
	case d := <-watcher.Changes():
		assert.Equal(t, domain.NewDescriptor("pop", "wav"), d)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for removal")
	}
}

func TestWatcher_CloseStopsChanges(t *testing.T) {
	watcher, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, watcher.Close())
	require.NoError(t, watcher.Close())

	select {
	case _, ok := <-watcher.Changes():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("changes channel was not closed")
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
