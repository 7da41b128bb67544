package sound

import (
	"fmt"

	"github.com/renato0307/chime/internal/ports"
)

// Backend names accepted by NewSystem
const (
	BackendCommand = "command"
	BackendSilent  = "silent"
	BackendSpeaker = "speaker"
)

// Backends lists the valid backend names
var Backends = []string{BackendSpeaker, BackendCommand, BackendSilent}

// NewSystem creates the audio system for a backend name.
// cacheDir is only used by the command backend.
func NewSystem(backend, cacheDir string) (ports.AudioSystem, error) {
	switch backend {
	case BackendSpeaker, "":
		return NewSpeakerSystem(), nil
	case BackendCommand:
		return NewCommandSystem(cacheDir)
	case BackendSilent:
		return NewSilentSystem(), nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q (valid: %v)", backend, Backends)
	}
}
