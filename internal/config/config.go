// Package config holds runtime configuration for the frameseq CLI:
// defaults, validation, and the enum types backing validated string flags.
package config

import (
	"fmt"

	"github.com/backmassage/frameseq/internal/udim"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the CLI flag layer before being passed (by pointer) to the
// packages that need it.
type Config struct {
	// Display.
	ColorMode ColorMode
	Verbose   bool

	// Sequence semantics.
	UdimWidth int // Carry width for 2D templates. Default: 10.

	// Listing behavior.
	ShowSkipped bool // ls: also print paths that joined no sequence.

	// Optional log sink ("" = stdout only).
	LogFile string
}

// DefaultConfig returns the baseline settings.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
		UdimWidth: udim.DefaultWidth,
	}
}

// Validate checks enum fields and numeric bounds.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.ColorMode)
	}
	if c.UdimWidth < 1 {
		return fmt.Errorf("udim width must be at least 1, got %d", c.UdimWidth)
	}
	return nil
}
