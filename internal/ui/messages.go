package ui

import (
	"github.com/renato0307/chime/internal/domain"
)

// clearErrorMsg asks the soundboard to clear the error with sequence number seq
type clearErrorMsg struct {
	seq int
}

// soundChangedMsg reports that a sound file in the watched directory changed
type soundChangedMsg struct {
	Sound domain.Descriptor
}

// watcherClosedMsg reports that the watcher channel was closed
type watcherClosedMsg struct{}
