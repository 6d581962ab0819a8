package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv(EnvHome, filepath.Join(t.TempDir(), "home"))

	port := 2222
	vol := 0.8
	require.NoError(t, SaveSettings(&Settings{Backend: "hcr", SSHPort: &port, Volume: &vol}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "hcr", settings.Backend)
	require.NotNil(t, settings.SSHPort)
	assert.Equal(t, 2222, *settings.SSHPort)
	assert.InDelta(t, 0.8, *settings.Volume, 1e-9)
}

func TestLoadSettings_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv("DROIDSOUND_TEST_KEEP", "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"),
		[]byte("DROIDSOUND_TEST_KEEP=from-file\nDROIDSOUND_TEST_NEW=loaded\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("DROIDSOUND_TEST_NEW") })

	LoadEnv()

	assert.Equal(t, "from-env", os.Getenv("DROIDSOUND_TEST_KEEP"))
	assert.Equal(t, "loaded", os.Getenv("DROIDSOUND_TEST_NEW"))
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 11)
	assert.Equal(t, "dfplayer", example["backend"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 23235, example["ssh_port"])
	assert.Equal(t, 0.5, example["volume"])
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/dev/ttyS0", ExpandPath("/dev/ttyS0"))
}
