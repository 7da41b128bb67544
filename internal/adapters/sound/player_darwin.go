//go:build darwin

package sound

import "os/exec"

// playerCommand plays sounds on macOS using afplay
func playerCommand(path string) *exec.Cmd {
	return exec.Command("afplay", path)
}
