package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/logging"
)

// CommandSystem implements ports.AudioSystem with the platform's command line
// player. Creating a handle copies the resource into the cache directory so
// the player can read it from disk; disposing removes the copy.
type CommandSystem struct {
	bell     io.Writer
	cacheDir string
	command  func(path string) *exec.Cmd
	files    map[domain.Handle]string
	mu       sync.Mutex
	next     domain.Handle
}

// NewCommandSystem creates a CommandSystem that materializes sounds under cacheDir
func NewCommandSystem(cacheDir string) (*CommandSystem, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sound cache directory: %w", err)
	}
	return &CommandSystem{
		bell:     os.Stdout,
		cacheDir: cacheDir,
		command:  playerCommand,
		files:    make(map[domain.Handle]string),
	}, nil
}

// CreateHandle copies the resource into the cache directory
func (c *CommandSystem) CreateHandle(resource domain.Resource) (domain.Handle, error) {
	src, err := resource.Open()
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", resource.Location, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(c.cacheDir, "*-"+resource.Descriptor.ID())
	if err != nil {
		return 0, fmt.Errorf("failed to create cache file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return 0, fmt.Errorf("failed to copy %s: %w", resource.Location, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return 0, fmt.Errorf("failed to write cache file: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	c.files[c.next] = dst.Name()
	return c.next, nil
}

// Play starts the platform player in the background.
// Falls back to the terminal bell when no player is available.
func (c *CommandSystem) Play(handle domain.Handle) {
	c.mu.Lock()
	path, ok := c.files[handle]
	c.mu.Unlock()
	if !ok {
		logging.Logger.Warn("Play called with unknown handle", "handle", handle)
		return
	}

	cmd := c.command(path)
	if cmd == nil {
		c.terminalBell()
		return
	}
	if err := cmd.Start(); err != nil {
		logging.Logger.Debug("Failed to start sound player", "path", path, "error", err)
		c.terminalBell()
		return
	}
	// Reap the player so it does not linger as a zombie
	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Debug("Sound player exited with error", "path", path, "error", err)
		}
	}()
}

// Dispose removes the cached copy
func (c *CommandSystem) Dispose(handle domain.Handle) error {
	c.mu.Lock()
	path, ok := c.files[handle]
	delete(c.files, handle)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown handle %d", handle)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}

// terminalBell outputs a terminal bell character as fallback
func (c *CommandSystem) terminalBell() {
	fmt.Fprint(c.bell, "\a")
}
