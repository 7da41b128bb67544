package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorManager_ClearAfterDelay(t *testing.T) {
	em := NewErrorManager(time.Millisecond)
	em.SetError(errors.New("first"))

	cmd := em.ClearAfterDelay()
	require.NotNil(t, cmd)
	msg, ok := cmd().(clearErrorMsg)
	require.True(t, ok)

	em.ClearError(msg)
	assert.False(t, em.HasError())
}

func TestErrorManager_StaleClearIgnored(t *testing.T) {
	em := NewErrorManager(time.Millisecond)
	em.SetError(errors.New("first"))
	stale := em.ClearAfterDelay()().(clearErrorMsg)

	second := errors.New("second")
	em.SetError(second)
	em.ClearError(stale)

	assert.Equal(t, second, em.GetError())
}

func TestErrorManager_NoDelayKeepsError(t *testing.T) {
	em := NewErrorManager(0)
	em.SetError(errors.New("sticky"))

	assert.Nil(t, em.ClearAfterDelay())
	assert.True(t, em.HasError())
}
