// Command frameseq is the entrypoint for the frameseq sequence tool. It
// groups rendered frames into sequences, expands templates into concrete
// paths, and converts templates between notations.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/backmassage/frameseq/internal/config"
	"github.com/backmassage/frameseq/internal/logging"
)

// colorModeValue adapts config.ColorMode to the flag system, rejecting
// unknown modes at parse time.
type colorModeValue struct {
	mode *config.ColorMode
}

var _ pflag.Value = colorModeValue{}

func (v colorModeValue) String() string { return string(*v.mode) }
func (v colorModeValue) Type() string   { return "mode" }

func (v colorModeValue) Set(s string) error {
	switch m := config.ColorMode(s); m {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		*v.mode = m
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", s)
	}
}

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	cfg := config.DefaultConfig()

	root := &cobra.Command{
		Use:           "frameseq",
		Short:         "Inspect, group, and convert numbered file sequences",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			switch cfg.ColorMode {
			case config.ColorAlways:
				color.NoColor = false
			case config.ColorNever:
				color.NoColor = true
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.Var(colorModeValue{mode: &cfg.ColorMode}, "color",
		"color output: auto, always, or never")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&cfg.LogFile, "log-file", "", "append log output to this file")

	root.AddCommand(
		newLsCmd(&cfg),
		newExpandCmd(&cfg),
		newConvertCmd(&cfg),
		newInfoCmd(&cfg),
		newUdimCmd(&cfg),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "frameseq: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the shared logger; callers must Close it.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.NewLogger(cfg)
}

// useColor reports whether command output (not log lines) should colorize.
func useColor(cfg *config.Config) bool {
	switch cfg.ColorMode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor
}
