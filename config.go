package mapview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig describes the viewer window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// Config is the viewer configuration, usually loaded from a YAML file.
type Config struct {
	// TileDir is the directory holding "<x>_<y>.<ext>" tile images.
	TileDir  string       `yaml:"tile_dir"`
	TileSize float64      `yaml:"tile_size"`
	Window   WindowConfig `yaml:"window"`
	// ZoomStep scales each scroll delta before it is subtracted from the
	// camera scale.
	ZoomStep float64 `yaml:"zoom_step"`
	// ResetSeconds is the duration of the reset-view scroll.
	ResetSeconds float64 `yaml:"reset_seconds"`
	LogLevel     string  `yaml:"log_level"`
	ShowHUD      bool    `yaml:"show_hud"`
	// ClearColor is the background as [r, g, b] in [0, 1].
	ClearColor [3]float64 `yaml:"clear_color"`
	// ScreenshotDir receives PNGs from "screenshot" script steps.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// Debug logs draw timing and culling stats at debug level.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		TileDir:  "assets",
		TileSize: DefaultTileSize,
		Window: WindowConfig{
			Title:     "mapview",
			Width:     1280,
			Height:    720,
			Resizable: false,
		},
		ZoomStep:      DefaultZoomStep,
		ResetSeconds:  DefaultResetDuration,
		LogLevel:      "info",
		ShowHUD:       true,
		ClearColor:    [3]float64{0, 0, 0},
		ScreenshotDir: "screenshots",
	}
}

// ParseConfig decodes YAML over the defaults. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	var errs []error
	if c.TileDir == "" {
		errs = append(errs, errors.New("tile_dir is empty"))
	}
	if !(c.TileSize > 0) {
		errs = append(errs, fmt.Errorf("tile_size must be > 0, got %v", c.TileSize))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if !(c.ZoomStep > 0) {
		errs = append(errs, fmt.Errorf("zoom_step must be > 0, got %v", c.ZoomStep))
	}
	if c.ResetSeconds < 0 {
		errs = append(errs, fmt.Errorf("reset_seconds must be >= 0, got %v", c.ResetSeconds))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] out of range: %v", i, v))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Apply copies the scene-level settings onto a scene and its navigator.
func (c Config) Apply(s *Scene) {
	s.TileSize = c.TileSize
	s.ShowHUD = c.ShowHUD
	s.SetDebugMode(c.Debug)
	if c.ScreenshotDir != "" {
		s.ScreenshotDir = c.ScreenshotDir
	}
	s.ClearColor = Color{R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: 1}
	nav := s.Navigator()
	nav.Zoom.Step = c.ZoomStep
	nav.ResetDuration = float32(c.ResetSeconds)
}

// RunConfig returns the window settings for Run.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:     c.Window.Title,
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		Resizable: c.Window.Resizable,
		ShowHUD:   c.ShowHUD,
	}
}
