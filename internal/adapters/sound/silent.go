package sound

import (
	"fmt"

	"github.com/renato0307/chime/internal/domain"
)

// SilentSystem implements ports.AudioSystem without producing audio.
// It backs --backend=silent and keeps per-sound play counts.
type SilentSystem struct {
	next   domain.Handle
	plays  map[string]int
	sounds map[domain.Handle]string
}

// NewSilentSystem creates a new SilentSystem
func NewSilentSystem() *SilentSystem {
	return &SilentSystem{
		plays:  make(map[string]int),
		sounds: make(map[domain.Handle]string),
	}
}

// CreateHandle allocates a handle for the resource
func (s *SilentSystem) CreateHandle(resource domain.Resource) (domain.Handle, error) {
	s.next++
	s.sounds[s.next] = resource.Descriptor.ID()
	return s.next, nil
}

// Play records a play of the handle's sound
func (s *SilentSystem) Play(handle domain.Handle) {
	if id, ok := s.sounds[handle]; ok {
		s.plays[id]++
	}
}

// Dispose forgets the handle
func (s *SilentSystem) Dispose(handle domain.Handle) error {
	if _, ok := s.sounds[handle]; !ok {
		return fmt.Errorf("unknown handle %d", handle)
	}
	delete(s.sounds, handle)
	return nil
}

// PlayCount returns how many times the sound with the given identifier was played
func (s *SilentSystem) PlayCount(id string) int {
	return s.plays[id]
}

// LiveHandles returns the number of handles not yet disposed
func (s *SilentSystem) LiveHandles() int {
	return len(s.sounds)
}
