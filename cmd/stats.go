package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/tgadown/internal/report"
)

// Mean color shifts above this CIEDE2000 distance are visible side by side.
const driftWarning = 2.0

var statsCmd = &cobra.Command{
	Use:   "stats <report.json>",
	Short: "Display a run report written with --report",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	r, err := report.ReadJSON(args[0])
	if err != nil {
		return err
	}
	printStats(cmd.OutOrStdout(), r)
	return nil
}

func printStats(w io.Writer, r *report.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Report version:   %d\n", r.Version)
	fmt.Fprintf(w, "  Generated:        %s\n", r.GeneratedAt)
	fmt.Fprintf(w, "  Algorithm:        %s\n", r.Algorithm)
	fmt.Fprintf(w, "  Workers:          %d\n", r.Workers)
	fmt.Fprintf(w, "  Elapsed:          %.1f ms\n", r.ElapsedMS)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-8s %-24s %11s %-9s %10s  %-8s %s\n",
		"", "path", "size", "format", "bytes", "mean", "hash")
	for _, row := range []struct {
		label string
		info  report.ImageInfo
	}{{"input", r.Input}, {"output", r.Output}} {
		i := row.info
		fmt.Fprintf(w, "  %-8s %-24s %11s %-9s %10s  %-8s %s\n",
			row.label, i.Path, fmt.Sprintf("%dx%d", i.Width, i.Height), i.Format,
			formatBytes(i.Size), i.MeanColor, i.Hash)
	}
	fmt.Fprintln(w)

	if r.Input.Size > 0 {
		ratio := float64(r.Output.Size) / float64(r.Input.Size) * 100
		fmt.Fprintf(w, "  Output size:      %.1f%% of input\n", ratio)
	}
	fmt.Fprintf(w, "  Color drift:      ΔE00 %.2f\n", r.ColorDrift)

	var warnings []string
	if r.Input.Width/2 != r.Output.Width || r.Input.Height/2 != r.Output.Height {
		warnings = append(warnings, fmt.Sprintf("output %dx%d is not half of input %dx%d",
			r.Output.Width, r.Output.Height, r.Input.Width, r.Input.Height))
	}
	if r.Input.Format != r.Output.Format {
		warnings = append(warnings, fmt.Sprintf("pixel format changed: %s → %s", r.Input.Format, r.Output.Format))
	}
	if r.ColorDrift > driftWarning {
		warnings = append(warnings, fmt.Sprintf("mean color drifted by ΔE00 %.2f", r.ColorDrift))
	}
	if len(warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Warnings (%d):\n", len(warnings))
		for _, s := range warnings {
			fmt.Fprintf(w, "    ⚠ %s\n", s)
		}
	}
	fmt.Fprintln(w)
}
