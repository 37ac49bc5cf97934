package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/backmassage/frameseq/internal/config"
	"github.com/backmassage/frameseq/internal/display"
	"github.com/backmassage/frameseq/internal/notation"
	"github.com/backmassage/frameseq/internal/scan"
	"github.com/backmassage/frameseq/internal/sequence"
	"github.com/backmassage/frameseq/internal/udim"
)

// newLsCmd lists the sequences found under a directory.
func newLsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "Scan a directory and group its files into sequences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			files, err := scan.Discover(dir)
			if err != nil {
				return err
			}
			log.Debug("found %d file(s) under %s", len(files), dir)

			groups, skipped := sequence.GroupPaths(files)
			for _, el := range groups {
				fmt.Fprintln(cmd.OutOrStdout(), display.ElementLine(el, useColor(cfg)))
			}
			if cfg.ShowSkipped {
				for _, p := range skipped {
					log.Warn("no sequence index in %s", p)
				}
			}

			seqs, items := sequence.SplitGroups(groups)
			log.Info("%s", display.Summary(len(seqs), len(items), len(skipped)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&cfg.ShowSkipped, "show-skipped", false,
		"warn about files that joined no sequence")
	return cmd
}

// newExpandCmd densely materializes a template range, or resolves it against
// the files on disk.
func newExpandCmd(cfg *config.Config) *cobra.Command {
	var (
		start  int
		end    int
		onDisk bool
	)
	cmd := &cobra.Command{
		Use:   "expand <template>",
		Short: "Print every path of a template range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if onDisk {
				paths, err := scan.Expand(args[0])
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			}

			seq, err := sequence.Make(args[0], start, end)
			if err != nil {
				return err
			}
			for item := range seq.Items() {
				fmt.Fprintln(cmd.OutOrStdout(), item.Path())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "first value of the range")
	cmd.Flags().IntVar(&end, "end", 0, "last value of the range (inclusive)")
	cmd.Flags().BoolVar(&onDisk, "on-disk", false,
		"resolve the template against existing files instead of a range")
	return cmd
}

// newConvertCmd re-renders a template under another notation.
func newConvertCmd(cfg *config.Config) *cobra.Command {
	var (
		to      string
		padding int
	)
	cmd := &cobra.Command{
		Use:   "convert <template>",
		Short: "Convert a template to another notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, ok := notation.ByName(to)
			if !ok {
				return fmt.Errorf("unknown notation %q (want one of %s)", to, notationNames())
			}
			out, err := notation.Convert(args[0], dst, padding)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "pound", "target notation")
	cmd.Flags().IntVar(&padding, "padding", 0,
		"explicit padding when the source notation carries none")
	return cmd
}

// newInfoCmd reports the tokenization of a single path.
func newInfoCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <path>",
		Short: "Show the sequence anatomy of one path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := sequence.NewItem(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:       %s\n", item.Path())
			fmt.Fprintf(out, "format:     %s\n", item.Format())
			fmt.Fprintf(out, "dimensions: %d\n", item.Dimensions())
			fmt.Fprintf(out, "values:     %s\n", joinInts(item.Values()))
			fmt.Fprintf(out, "paddings:   %s\n", joinInts(item.Paddings()))
			return nil
		},
	}
	return cmd
}

// newUdimCmd prints the carry-adjusted tile indexes of a UDIM range.
func newUdimCmd(cfg *config.Config) *cobra.Command {
	var (
		start int
		end   int
		style string
	)
	cmd := &cobra.Command{
		Use:   "udim",
		Short: "Print the tile indexes of a UDIM range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := udim.New(start, end, cfg.UdimWidth, udim.Style(style))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for v := range it.Values() {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "first tile of the range")
	cmd.Flags().IntVar(&end, "end", 0, "last tile of the range (inclusive)")
	cmd.Flags().StringVar(&style, "style", string(udim.Raw),
		"input numbering: raw (zero-based) or mari (1001-based)")
	cmd.Flags().IntVar(&cfg.UdimWidth, "width", cfg.UdimWidth,
		"tiles per row before the index carries")
	return cmd
}

func notationNames() string {
	names := make([]string, 0, len(notation.Codecs))
	for _, c := range notation.Codecs {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func joinInts(vals []int) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
