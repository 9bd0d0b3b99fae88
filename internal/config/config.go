package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"rigidedit/internal/camera"
	"rigidedit/internal/editor"
)

// EnvPrefix is prepended to every environment override, e.g. RIGIDEDIT_ORBIT_MAX_RADIUS.
const EnvPrefix = "RIGIDEDIT"

// Vec3 is a vector that reads from a TOML array and from "x,y,z" in the environment.
type Vec3 [3]float32

func (v *Vec3) Decode(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", value)
	}
	var out Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = float32(f)
	}
	*v = out
	return nil
}

func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

type WindowConfig struct {
	Width      int    `toml:"width" envconfig:"WIDTH"`
	Height     int    `toml:"height" envconfig:"HEIGHT"`
	Title      string `toml:"title" envconfig:"TITLE"`
	TargetFPS  int    `toml:"target_fps" envconfig:"TARGET_FPS"`
	PanelWidth int    `toml:"panel_width" envconfig:"PANEL_WIDTH"`
}

type EditorConfig struct {
	MoveSensitivity   float32 `toml:"move_sensitivity" envconfig:"MOVE_SENSITIVITY"`
	RotateSensitivity float32 `toml:"rotate_sensitivity" envconfig:"ROTATE_SENSITIVITY"`
	ScaleSensitivity  float32 `toml:"scale_sensitivity" envconfig:"SCALE_SENSITIVITY"`
	StaleSelection    string  `toml:"stale_selection" envconfig:"STALE_SELECTION"`
	PickFixed         bool    `toml:"pick_fixed" envconfig:"PICK_FIXED"`
	UndoDepth         int     `toml:"undo_depth" envconfig:"UNDO_DEPTH"`
	SpawnPosition     Vec3    `toml:"spawn_position" envconfig:"SPAWN_POSITION"`
}

type OrbitConfig struct {
	Focus             Vec3    `toml:"focus" envconfig:"FOCUS"`
	Yaw               float32 `toml:"yaw" envconfig:"YAW"`
	Pitch             float32 `toml:"pitch" envconfig:"PITCH"`
	Radius            float32 `toml:"radius" envconfig:"RADIUS"`
	MinRadius         float32 `toml:"min_radius" envconfig:"MIN_RADIUS"`
	MaxRadius         float32 `toml:"max_radius" envconfig:"MAX_RADIUS"`
	RotateSensitivity float32 `toml:"rotate_sensitivity" envconfig:"ROTATE_SENSITIVITY"`
	ZoomSensitivity   float32 `toml:"zoom_sensitivity" envconfig:"ZOOM_SENSITIVITY"`
	FlySpeed          float32 `toml:"fly_speed" envconfig:"FLY_SPEED"`
	FovY              float32 `toml:"fov" envconfig:"FOV"`
	Near              float32 `toml:"near" envconfig:"NEAR"`
	Far               float32 `toml:"far" envconfig:"FAR"`
}

type PhysicsConfig struct {
	Gravity    Vec3    `toml:"gravity" envconfig:"GRAVITY"`
	Simulate   bool    `toml:"simulate" envconfig:"SIMULATE"`
	GroundSize float32 `toml:"ground_size" envconfig:"GROUND_SIZE"`
}

// Config holds editor preferences. Scene contents are never stored here.
type Config struct {
	LogLevel string        `toml:"log_level" envconfig:"LOG_LEVEL"`
	Window   WindowConfig  `toml:"window" envconfig:"WINDOW"`
	Editor   EditorConfig  `toml:"editor" envconfig:"EDITOR"`
	Orbit    OrbitConfig   `toml:"orbit" envconfig:"ORBIT"`
	Physics  PhysicsConfig `toml:"physics" envconfig:"PHYSICS"`
}

func Default() *Config {
	sens := editor.DefaultSensitivity()
	opts := editor.DefaultOptions()
	cam := camera.DefaultConfig()
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "rigidedit",
			TargetFPS:  60,
			PanelWidth: 280,
		},
		Editor: EditorConfig{
			MoveSensitivity:   sens.Move,
			RotateSensitivity: sens.Rotate,
			ScaleSensitivity:  sens.Scale,
			StaleSelection:    opts.StalePolicy.String(),
			PickFixed:         opts.PickFixed,
			UndoDepth:         opts.UndoDepth,
			SpawnPosition:     Vec3(opts.SpawnPosition),
		},
		Orbit: OrbitConfig{
			Focus:             Vec3(cam.Focus),
			Yaw:               cam.Yaw,
			Pitch:             cam.Pitch,
			Radius:            cam.Radius,
			MinRadius:         cam.MinRadius,
			MaxRadius:         cam.MaxRadius,
			RotateSensitivity: cam.RotateSensitivity,
			ZoomSensitivity:   cam.ZoomSensitivity,
			FlySpeed:          cam.FlySpeed,
			FovY:              cam.FovY,
			Near:              cam.Near,
			Far:               cam.Far,
		},
		Physics: PhysicsConfig{
			Gravity:    Vec3{0, -9.81, 0},
			Simulate:   true,
			GroundSize: 10,
		},
	}
}

// Load reads path on top of the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file, that's fine
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as TOML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	w := c.Window
	check(w.Width > 0 && w.Height > 0, "window: size %dx%d must be positive", w.Width, w.Height)
	check(w.PanelWidth >= 0 && w.PanelWidth < w.Width, "window: panel_width %d must fit inside width %d", w.PanelWidth, w.Width)
	check(w.TargetFPS >= 0, "window: target_fps %d must not be negative", w.TargetFPS)

	e := c.Editor
	check(e.MoveSensitivity > 0, "editor: move_sensitivity must be positive")
	check(e.RotateSensitivity > 0, "editor: rotate_sensitivity must be positive")
	check(e.ScaleSensitivity > 0, "editor: scale_sensitivity must be positive")
	check(e.UndoDepth > 0, "editor: undo_depth must be positive")
	if _, err := editor.ParseStalePolicy(e.StaleSelection); err != nil {
		errs = append(errs, fmt.Errorf("editor: %w", err))
	}

	o := c.Orbit
	check(o.MinRadius > 0, "orbit: min_radius must be positive")
	check(o.MaxRadius >= o.MinRadius, "orbit: max_radius %g below min_radius %g", o.MaxRadius, o.MinRadius)
	check(o.RotateSensitivity > 0, "orbit: rotate_sensitivity must be positive")
	check(o.ZoomSensitivity > 0, "orbit: zoom_sensitivity must be positive")
	check(o.FovY > 0 && o.FovY < 180, "orbit: fov %g out of range (0, 180)", o.FovY)
	check(o.Near > 0 && o.Far > o.Near, "orbit: near %g / far %g must satisfy 0 < near < far", o.Near, o.Far)

	check(c.Physics.GroundSize > 0, "physics: ground_size must be positive")

	return errors.Join(errs...)
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

func (c *Config) EditorOptions() editor.Options {
	policy, _ := editor.ParseStalePolicy(c.Editor.StaleSelection)
	return editor.Options{
		Sensitivity: editor.Sensitivity{
			Move:   c.Editor.MoveSensitivity,
			Rotate: c.Editor.RotateSensitivity,
			Scale:  c.Editor.ScaleSensitivity,
		},
		StalePolicy:   policy,
		PickFixed:     c.Editor.PickFixed,
		UndoDepth:     c.Editor.UndoDepth,
		SpawnPosition: c.Editor.SpawnPosition.Vec(),
	}
}

func (c *Config) CameraConfig() camera.Config {
	o := c.Orbit
	return camera.Config{
		Focus:             o.Focus.Vec(),
		Yaw:               o.Yaw,
		Pitch:             o.Pitch,
		Radius:            o.Radius,
		MinRadius:         o.MinRadius,
		MaxRadius:         o.MaxRadius,
		RotateSensitivity: o.RotateSensitivity,
		ZoomSensitivity:   o.ZoomSensitivity,
		FlySpeed:          o.FlySpeed,
		FovY:              o.FovY,
		Near:              o.Near,
		Far:               o.Far,
	}
}
