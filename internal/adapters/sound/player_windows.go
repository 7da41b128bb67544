//go:build windows

package sound

import (
	"fmt"
	"os/exec"
	"strings"
)

// playerCommand plays sounds on Windows using PowerShell's SoundPlayer
func playerCommand(path string) *exec.Cmd {
	quoted := strings.ReplaceAll(path, "'", "''")
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", quoted)
	return exec.Command("powershell", "-NoProfile", "-c", script)
}
