//go:build !darwin && !linux && !windows

package sound

import "os/exec"

// playerCommand has no player on unsupported platforms; callers fall back to the terminal bell
func playerCommand(path string) *exec.Cmd {
	return nil
}
