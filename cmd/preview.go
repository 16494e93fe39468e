package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/tgadown/internal/fileio"
	"github.com/AnyUserName/tgadown/internal/preview"
)

var (
	previewZoom    int
	previewFit     string
	previewQuality int
)

var previewCmd = &cobra.Command{
	Use:   "preview <in.tga> <out.png|jpg|webp|bmp|tiff>",
	Short: "Convert a TGA file to a common image format for viewing",
	Long: `Decode a TGA file (including ones written by tgadown) and save it in the
format named by the output extension. --zoom enlarges small results with
nearest-neighbor sampling; --fit shrinks large ones into a box.`,
	Example: `  tgadown preview half.tga half.png --zoom 4
  tgadown preview big.tga thumb.jpg --fit 256x256 -q 80`,
	Args: cobra.ExactArgs(2),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewZoom, "zoom", 1, "integer enlargement factor")
	previewCmd.Flags().StringVar(&previewFit, "fit", "", "shrink to fit within WxH")
	previewCmd.Flags().IntVarP(&previewQuality, "quality", "q", preview.DefaultQuality, "JPEG quality (1-100)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	enc, err := preview.NewRegistry().ForPath(output)
	if err != nil {
		return err
	}
	fitW, fitH, err := parseBox(previewFit)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	data, err := fileio.ReadFile(input)
	if err != nil {
		return err
	}
	img, err := preview.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	img = preview.Fit(img, fitW, fitH)
	if img, err = preview.Zoom(img, previewZoom); err != nil {
		return err
	}

	out, err := enc.Encode(img, previewQuality)
	if err != nil {
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	if err := fileio.WriteFile(output, out); err != nil {
		return err
	}

	b := img.Bounds()
	logVerbose("preview: %s → %s %dx%d", input, enc.Format(), b.Dx(), b.Dy())
	fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s (%dx%d %s, %s)\n",
		output, b.Dx(), b.Dy(), enc.Format(), formatBytes(int64(len(out))))
	return nil
}

// parseBox parses "WxH". An empty string means no box.
func parseBox(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --fit %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid --fit width %q", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid --fit height %q", hs)
	}
	return w, h, nil
}
