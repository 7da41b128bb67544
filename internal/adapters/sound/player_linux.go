//go:build linux

package sound

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// playerCommand plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA).
// aplay only understands WAV, so other formats need paplay.
func playerCommand(path string) *exec.Cmd {
	if _, err := exec.LookPath("paplay"); err == nil {
		return exec.Command("paplay", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		if _, err := exec.LookPath("aplay"); err == nil {
			return exec.Command("aplay", "-q", path)
		}
	}
	return nil
}
