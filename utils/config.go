package utils

import (
	"time"

	"github.com/pkg/errors"
)

// Config holds the compile-time settings of a simulation variant
type Config struct {
	Title         string
	WindowWidth   int           // Display size in pixels
	WindowHeight  int           // Display size in pixels
	Columns       int           // Logical grid width in cells
	Rows          int           // Logical grid height in cells
	TPS           int           // Update passes per second, capped by the renderer
	LogEvery      int           // Frames between census log lines, 0 disables
	FrameInterval time.Duration // Sleep between frames when not driven by a renderer
	MaxFrames     int           // Stop after this many frames, 0 runs until interrupted
	AutoRestart   bool          // Repopulate the grid on extinction or stagnation
}

// DefaultConfig returns the windowed simulation settings
func DefaultConfig() Config {
	return Config{
		Title:        "Predator & Prey",
		WindowWidth:  900,
		WindowHeight: 900,
		Columns:      400,
		Rows:         400,
		TPS:          60,
		LogEvery:     600,
	}
}

// TerminalConfig returns the settings for the terminal variant
func TerminalConfig() Config {
	return Config{
		Title:         "Predator & Prey",
		Columns:       60,
		Rows:          30,
		FrameInterval: 150 * time.Millisecond,
		AutoRestart:   true,
	}
}

// BlankWindowConfig returns the settings for the window without a simulation
func BlankWindowConfig() Config {
	cfg := DefaultConfig()
	cfg.Title = "Predator & Prey (blank)"
	cfg.Columns, cfg.Rows, cfg.LogEvery = 0, 0, 0
	return cfg
}

// Validate reports the first setting that cannot drive a simulation
func (c Config) Validate() error {
	if c.Columns < 0 || c.Rows < 0 {
		return errors.Errorf("[Validate] grid size must not be negative: %dx%d", c.Columns, c.Rows)
	}
	if (c.Columns == 0) != (c.Rows == 0) {
		return errors.Errorf("[Validate] grid size must be zero or positive on both axes: %dx%d", c.Columns, c.Rows)
	}
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		return errors.Errorf("[Validate] window size must not be negative: %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.LogEvery < 0 || c.MaxFrames < 0 || c.TPS < 0 || c.FrameInterval < 0 {
		return errors.New("[Validate] frame settings must not be negative")
	}
	return nil
}

// Windowed reports whether the config describes a window rather than a terminal
func (c Config) Windowed() bool {
	return c.WindowWidth > 0 && c.WindowHeight > 0
}
