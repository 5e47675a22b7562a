package sfoglia

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sfoglia.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, 1000*time.Millisecond, config.Notebook.OpenDuration.Duration)
	assert.Equal(t, 600*time.Millisecond, config.Notebook.TurnDuration.Duration)
	assert.Equal(t, int32(50), config.Notebook.SwipeThreshold)
	assert.Equal(t, InteractionSurface, config.Notebook.Interaction)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[notebook]
open_duration = "750ms"
turn_duration = "300ms"
swipe_threshold = 80
interaction = "buttons"

[input.keyboard]
"Page Up" = "Left"
"Page Down" = "Right"

[log]
level = "debug"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, config.Notebook.OpenDuration.Duration)
	assert.Equal(t, 300*time.Millisecond, config.Notebook.TurnDuration.Duration)
	assert.Equal(t, int32(80), config.Notebook.SwipeThreshold)
	assert.Equal(t, InteractionButtons, config.Notebook.Interaction)
	assert.Equal(t, "Right", config.Input.Keyboard["Page Down"])
	assert.Equal(t, "debug", config.Log.Level)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[notebook]
turn_duration = "200ms"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1000*time.Millisecond, config.Notebook.OpenDuration.Duration)
	assert.Equal(t, 200*time.Millisecond, config.Notebook.TurnDuration.Duration)
	assert.Equal(t, int32(50), config.Notebook.SwipeThreshold)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
[notebook]
open_duration = "fast"
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, `
[notebook]
interaction = "gestures"
`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
