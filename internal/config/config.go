// Package config handles editor configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds all editor settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Editor     EditorConfig     `yaml:"editor"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	Samples    int  `yaml:"samples"` // MSAA samples, 0 disables
}

// EditorConfig holds editing behaviour.
type EditorConfig struct {
	Capacity      int            `yaml:"capacity"` // max triangles, 0 = unbounded
	RotateDegrees float32        `yaml:"rotate_degrees"`
	ScaleFactor   float32        `yaml:"scale_factor"`
	ZoomStep      float32        `yaml:"zoom_step"`
	PanStep       float32        `yaml:"pan_step"`
	Playback      PlaybackConfig `yaml:"playback"`
}

// PlaybackConfig holds keyframe playback settings.
type PlaybackConfig struct {
	Interval time.Duration `yaml:"interval"`
	Steps    int           `yaml:"steps"`
	PivotX   float32       `yaml:"pivot_x"`
	PivotY   float32       `yaml:"pivot_y"`
	Blocking bool          `yaml:"blocking"` // sleep between steps inside the key handler
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      640,
			Height:     480,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Samples:    8,
		},
		Editor: EditorConfig{
			Capacity:      10,
			RotateDegrees: 10,
			ScaleFactor:   0.25,
			ZoomStep:      0.1,
			PanStep:       0.1,
			Playback: PlaybackConfig{
				Interval: 33 * time.Millisecond,
				Steps:    11,
				PivotX:   0.5,
				PivotY:   0.5,
				Blocking: false,
			},
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports settings the editor cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Samples < 0 {
		errs = append(errs, fmt.Errorf("graphics: samples must not be negative, got %d", c.Graphics.Samples))
	}
	if c.Editor.Capacity < 0 {
		errs = append(errs, fmt.Errorf("editor: capacity must not be negative, got %d", c.Editor.Capacity))
	}
	if c.Editor.ScaleFactor <= -1 {
		errs = append(errs, fmt.Errorf("editor: scale_factor %v would collapse triangles", c.Editor.ScaleFactor))
	}
	if c.Editor.ZoomStep <= 0 || c.Editor.ZoomStep >= 1 {
		errs = append(errs, fmt.Errorf("editor: zoom_step must be in (0, 1), got %v", c.Editor.ZoomStep))
	}
	if c.Editor.Playback.Interval <= 0 {
		errs = append(errs, fmt.Errorf("editor.playback: interval must be positive, got %v", c.Editor.Playback.Interval))
	}
	if c.Editor.Playback.Steps < 2 {
		errs = append(errs, fmt.Errorf("editor.playback: steps must be at least 2, got %d", c.Editor.Playback.Steps))
	}
	switch c.Screenshot.Format {
	case "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("screenshot: unsupported format %q", c.Screenshot.Format))
	}
	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("logging: %w", err))
		}
	}
	return errors.Join(errs...)
}
