package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// commandTimeout bounds a single chime invocation. play lingers for a second
// by default, so this leaves room for several sounds.
const commandTimeout = 30 * time.Second

// TestVersion is stamped into the test binary through -ldflags
const TestVersion = "integration"

var (
	buildDir  string
	chimePath string
	buildErr  error
	buildOnce sync.Once
)

// CommandResult is the outcome of one chime invocation
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles chime into a temp directory, once per test run
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		chimePath, buildErr = build()
	})
	return chimePath, buildErr
}

func build() (string, error) {
	root, err := moduleRoot()
	if err != nil {
		return "", fmt.Errorf("failed to locate module root: %w", err)
	}

	buildDir, err = os.MkdirTemp("", "chime-integration-*")
	if err != nil {
		return "", err
	}

	out := filepath.Join(buildDir, "chime")
	ldflags := "-X github.com/renato0307/chime/version.Version=" + TestVersion
	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", out, ".")
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("go build failed: %w", err)
	}
	return out, nil
}

// CleanupBinary removes the build directory
func CleanupBinary() {
	if buildDir == "" {
		return
	}
	if err := os.RemoveAll(buildDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to remove %s: %v\n", buildDir, err)
	}
}

// RunCommand runs chime with args inside env and captures its output.
// A timeout is reported as exit code -1.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, chimePath, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("chime %s timed out after %v", strings.Join(args, " "), commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("chime %s could not start: %v", strings.Join(args, " "), err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot asks the go tool for the directory holding go.mod
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
