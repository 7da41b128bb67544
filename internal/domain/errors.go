package domain

import (
	"errors"
	"fmt"
)

// Error kinds reported by the sound effect registry.
// ErrNotPreloaded is reserved; no registry operation emits it.
var (
	ErrInitializationFailed = errors.New("initialization failed")
	ErrNotPreloaded         = errors.New("not preloaded")
	ErrResourceNotFound     = errors.New("resource not found")
)

// SoundError is the error signal delivered to the registry's error handler
type SoundError struct {
	Err   error // Underlying cause, may be nil
	Kind  error // One of the Err* kinds above
	Sound Descriptor
}

// NewSoundError creates a SoundError of the given kind
func NewSoundError(kind error, sound Descriptor, cause error) *SoundError {
	return &SoundError{Err: cause, Kind: kind, Sound: sound}
}

func (e *SoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Sound.ID(), e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Sound.ID())
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *SoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
