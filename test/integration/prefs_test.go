package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penumbra-droid/droidsound/test/integration/harness"
)

type prefsJSON struct {
	Backend        string
	Port           string
	Profile        string
	RandomEnabled  bool
	RandomHi       int
	RandomLo       int
	RandomMaxDelay int
	RandomMinDelay int
	RandomMode     string
	StartupTrack   int
	Volume         float64
}

func TestPrefsLifecycle(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "prefs", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No stored profiles")

	result = harness.RunCommand(t, env, "prefs", "set", "dome",
		"--backend", "dfplayer",
		"--port", "/dev/ttyUSB0",
		"--volume", "0.75",
		"--startup", "3",
		"--random", "on",
		"--random-lo", "40",
		"--random-hi", "10",
	)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "DFPlayer Mini")
	assert.FileExists(t, env.DBPath())

	result = harness.RunCommand(t, env, "prefs", "show", "dome", "--format", "json")
	harness.AssertSuccess(t, result)

	var p prefsJSON
	harness.AssertValidJSON(t, result, &p)
	assert.Equal(t, "dome", p.Profile)
	assert.Equal(t, "dfplayer", p.Backend)
	assert.Equal(t, "/dev/ttyUSB0", p.Port)
	assert.InDelta(t, 0.75, p.Volume, 1e-9)
	assert.Equal(t, 3, p.StartupTrack)
	assert.True(t, p.RandomEnabled)
	assert.Equal(t, 10, p.RandomLo, "reversed range is reordered on save")
	assert.Equal(t, 40, p.RandomHi)

	// a partial update keeps the other fields
	result = harness.RunCommand(t, env, "prefs", "set", "dome", "--volume", "0.25")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "prefs", "show", "dome", "--format", "json")
	harness.AssertJSONField(t, result, "Volume", 0.25)
	harness.AssertJSONField(t, result, "Backend", "dfplayer")
	harness.AssertJSONField(t, result, "StartupTrack", float64(3))

	result = harness.RunCommand(t, env, "prefs", "list", "--format", "json")
	var all []prefsJSON
	harness.AssertValidJSON(t, result, &all)
	require.Len(t, all, 1)

	result = harness.RunCommand(t, env, "prefs", "delete", "dome")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "prefs", "delete", "dome")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "not found")
}

func TestPrefsShowDefaults(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "prefs", "show", "--format", "json")
	harness.AssertSuccess(t, result)

	var p prefsJSON
	harness.AssertValidJSON(t, result, &p)
	assert.Equal(t, "default", p.Profile)
	assert.Equal(t, "disabled", p.Backend)
	assert.Equal(t, -1, p.StartupTrack)
	assert.InDelta(t, 0.5, p.Volume, 1e-9)
	assert.Equal(t, "range", p.RandomMode)
}

func TestPrefsSetRejectsUnknownBackend(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "prefs", "set", "--backend", "theremin")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "unknown sound backend")
}

func TestPrefsSetCapsRandomDelay(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "prefs", "set", "--random-max-delay", "3000000000")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "prefs", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONField(t, result, "RandomMaxDelay", float64(2147483647))
}
