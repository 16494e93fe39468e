package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/tgadown/internal/downscale"
	"github.com/AnyUserName/tgadown/internal/fileio"
	"github.com/AnyUserName/tgadown/internal/report"
	"github.com/AnyUserName/tgadown/internal/tga"
)

var (
	downscaleWorkers int
	downscaleReport  string
)

func init() {
	rootCmd.Flags().IntVarP(&downscaleWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.Flags().StringVar(&downscaleReport, "report", "", "write a JSON run report to this path")
}

func runDownscale(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; later failures should not
	// repeat the usage text.
	cmd.SilenceUsage = true

	input, output := args[0], args[1]
	alg, err := downscale.ParseAlgorithm(args[2])
	if err != nil {
		return err
	}
	start := time.Now()

	data, err := fileio.ReadFile(input)
	if err != nil {
		return err
	}
	h, pixels, err := tga.Split(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := h.Validate(); err != nil {
		return err
	}

	workers := downscaleWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logVerbose("input:     %s (%s)", input, h)
	logVerbose("output:    %s", output)
	logVerbose("algorithm: %s, workers: %d", alg, workers)

	out, err := downscale.Downscale(h, pixels, alg, downscale.Options{
		Workers: workers,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if err := fileio.WriteFile(output, out); err != nil {
		return err
	}
	elapsed := time.Since(start)

	r := report.New(alg.String(), workers)
	if r.Input, err = report.Inspect(input, data); err != nil {
		return fmt.Errorf("describe input: %w", err)
	}
	if r.Output, err = report.Inspect(output, out); err != nil {
		return fmt.Errorf("describe output: %w", err)
	}
	r.Finish(elapsed)

	if downscaleReport != "" {
		if err := report.WriteJSON(r, downscaleReport); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logVerbose("report:    %s", downscaleReport)
	}

	printRunSummary(cmd, r)
	return nil
}

func printRunSummary(cmd *cobra.Command, r *report.Report) {
	w := cmd.OutOrStdout()
	in, out := r.Input, r.Output

	fmt.Fprintf(w, "  %s → %s (%s)\n", in.Path, out.Path, r.Algorithm)
	fmt.Fprintf(w, "  Size:    %dx%d → %dx%d  %s\n", in.Width, in.Height, out.Width, out.Height, out.Format)
	fmt.Fprintf(w, "  Bytes:   %s → %s\n", formatBytes(in.Size), formatBytes(out.Size))
	fmt.Fprintf(w, "  Color:   %s → %s  (ΔE00 %.2f)\n", in.MeanColor, out.MeanColor, r.ColorDrift)
	fmt.Fprintf(w, "  Hash:    %s\n", out.Hash)
	fmt.Fprintf(w, "  Time:    %.1f ms\n", r.ElapsedMS)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
