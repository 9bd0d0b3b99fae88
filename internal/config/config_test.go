package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigidedit/internal/editor"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rigidedit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, float32(2), cfg.Orbit.MinRadius)
	assert.Equal(t, float32(20), cfg.Orbit.MaxRadius)
	assert.Equal(t, float32(0.01), cfg.Editor.MoveSensitivity)
	assert.Equal(t, "clear", cfg.Editor.StaleSelection)
	assert.Equal(t, 50, cfg.Editor.UndoDepth)
	assert.Equal(t, Vec3{0, 3, 0}, cfg.Editor.SpawnPosition)
	assert.Equal(t, 280, cfg.Window.PanelWidth)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeFile(t, `
log_level = "debug"

[editor]
stale_selection = "keep"
spawn_position = [1.0, 4.0, -2.0]

[orbit]
max_radius = 50.0
zoom_sensitivity = 0.25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "keep", cfg.Editor.StaleSelection)
	assert.Equal(t, Vec3{1, 4, -2}, cfg.Editor.SpawnPosition)
	assert.Equal(t, float32(50), cfg.Orbit.MaxRadius)
	assert.Equal(t, float32(0.25), cfg.Orbit.ZoomSensitivity)
	assert.Equal(t, float32(2), cfg.Orbit.MinRadius, "untouched keys keep defaults")

	opts := cfg.EditorOptions()
	assert.Equal(t, editor.StaleKeep, opts.StalePolicy)
	assert.Equal(t, mgl32.Vec3{1, 4, -2}, opts.SpawnPosition)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "[orbit]\nmax_radius = 50.0\n")
	t.Setenv("RIGIDEDIT_ORBIT_MAX_RADIUS", "30")
	t.Setenv("RIGIDEDIT_EDITOR_SPAWN_POSITION", "1, 2, 3")
	t.Setenv("RIGIDEDIT_PHYSICS_SIMULATE", "false")
	t.Setenv("RIGIDEDIT_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(30), cfg.Orbit.MaxRadius)
	assert.Equal(t, Vec3{1, 2, 3}, cfg.Editor.SpawnPosition)
	assert.False(t, cfg.Physics.Simulate)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("RIGIDEDIT_EDITOR_SPAWN_POSITION", "1,2")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "[orbit]\nmax_radiuss = 50.0\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := writeFile(t, "[orbit\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"inverted radius", func(c *Config) { c.Orbit.MinRadius, c.Orbit.MaxRadius = 10, 5 }, "max_radius"},
		{"zero min radius", func(c *Config) { c.Orbit.MinRadius = 0 }, "min_radius"},
		{"negative zoom", func(c *Config) { c.Orbit.ZoomSensitivity = -1 }, "zoom_sensitivity"},
		{"bad stale policy", func(c *Config) { c.Editor.StaleSelection = "drop" }, "stale selection"},
		{"zero move sensitivity", func(c *Config) { c.Editor.MoveSensitivity = 0 }, "move_sensitivity"},
		{"fov too wide", func(c *Config) { c.Orbit.FovY = 180 }, "fov"},
		{"far before near", func(c *Config) { c.Orbit.Far = 0.01 }, "near"},
		{"panel wider than window", func(c *Config) { c.Window.PanelWidth = 2000 }, "panel_width"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Orbit.ZoomSensitivity = 0
	cfg.Editor.UndoDepth = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoom_sensitivity")
	assert.Contains(t, err.Error(), "undo_depth")
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Orbit.Radius = 12
	cfg.Editor.StaleSelection = "keep"
	path := filepath.Join(t.TempDir(), "nested", "rigidedit.toml")

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestCameraConfig(t *testing.T) {
	cfg := Default()
	cfg.Orbit.Focus = Vec3{1, 2, 3}

	cc := cfg.CameraConfig()
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cc.Focus)
	assert.Equal(t, cfg.Orbit.MaxRadius, cc.MaxRadius)
	assert.Equal(t, cfg.Orbit.FovY, cc.FovY)
}
