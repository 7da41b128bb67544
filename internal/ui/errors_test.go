package ui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	assert.Equal(t, "", formatErrorForDisplay(nil, 80))
	assert.Equal(t, "Error: unknown error", formatErrorForDisplay(errors.New(""), 80))
	assert.Equal(t, "Error: resource not found: missing.wav",
		formatErrorForDisplay(errors.New("resource not found: missing.wav"), 80))
}

func TestFormatErrorForDisplay_WrapsAndTruncates(t *testing.T) {
	err := errors.New(strings.Repeat("sound effect failed to load ", 10))

	got := formatErrorForDisplay(err, 30)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	assert.True(t, strings.HasSuffix(got, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 30)
	}
}
