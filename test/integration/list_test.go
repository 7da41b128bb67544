package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/chime/test/integration/harness"
)

func TestList(t *testing.T) {
	t.Run("built-in sounds table", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "list")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Sounds from built-in sounds")
		harness.AssertStdoutContains(t, result, "chime.wav")
		harness.AssertStdoutContains(t, result, "Total: 3 sounds")
	})

	t.Run("sounds directory json", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		dir := env.SoundsDir("b.mp3", "a.wav", "readme.txt")

		result := harness.RunCommand(t, env, "--sounds-dir", dir, "list", "--format", "json")

		harness.AssertSuccess(t, result)
		var sounds []map[string]string
		harness.AssertValidJSON(t, result, &sounds)
		assert.Equal(t, []map[string]string{
			{"extension": "wav", "id": "a.wav", "name": "a"},
			{"extension": "mp3", "id": "b.mp3", "name": "b"},
		}, sounds)
	})

	t.Run("sounds directory from settings", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		dir := env.SoundsDir("ding.ogg")
		env.WriteSettings(`{"sounds_dir": "` + dir + `"}`)

		result := harness.RunCommand(t, env, "list")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "ding.ogg")
		harness.AssertStdoutContains(t, result, "Total: 1 sounds")
	})

	t.Run("missing sounds directory", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "--sounds-dir", env.ChimeHome+"/nope", "list")

		harness.AssertFailure(t, result)
	})
}
