// Package integration_test provides end-to-end tests for chime CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated CHIME_HOME and the silent audio backend.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/renato0307/chime/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}
