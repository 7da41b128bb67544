package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrorManager holds the sound error shown under the soundboard list and
// schedules its removal. Each error gets a sequence number so a timer started
// for an older error cannot clear a newer one.
type ErrorManager struct {
	clearDelay time.Duration
	current    error
	seq        int
}

// NewErrorManager creates an ErrorManager. A zero or negative clearDelay keeps
// each error until the next one replaces it.
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		clearDelay: clearDelay,
	}
}

// SetError replaces the displayed error
func (em *ErrorManager) SetError(err error) {
	em.current = err
	em.seq++
}

// ClearError removes the displayed error if msg was scheduled for it
func (em *ErrorManager) ClearError(msg clearErrorMsg) {
	if msg.seq != em.seq {
		return
	}
	em.current = nil
}

func (em *ErrorManager) GetError() error {
	return em.current
}

func (em *ErrorManager) HasError() bool {
	return em.current != nil
}

// ClearAfterDelay schedules a clearErrorMsg for the error currently displayed
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	if em.clearDelay <= 0 {
		return nil
	}
	seq := em.seq
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}
