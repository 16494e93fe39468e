package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/tgadown/internal/fileio"
	"github.com/AnyUserName/tgadown/internal/pixel"
	"github.com/AnyUserName/tgadown/internal/report"
	"github.com/AnyUserName/tgadown/internal/tga"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.tga>",
	Short: "Print the header of a TGA file and check it can be downscaled",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	path := args[0]

	data, err := fileio.ReadFile(path)
	if err != nil {
		return err
	}
	h, err := tga.ParseHeader(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	w := cmd.OutOrStdout()
	s := h.Spec
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  File:         %s (%s)\n", path, formatBytes(int64(len(data))))
	fmt.Fprintf(w, "  Image type:   %d\n", h.ImageType)
	fmt.Fprintf(w, "  Color map:    %d\n", h.ColorMapType)
	fmt.Fprintf(w, "  ID length:    %d\n", h.IDLength)
	fmt.Fprintf(w, "  Origin:       %d,%d\n", s.XOrigin, s.YOrigin)
	fmt.Fprintf(w, "  Size:         %dx%d\n", s.Width, s.Height)
	fmt.Fprintf(w, "  Depth:        %d bpp (%d alpha bits)\n", s.PixelDepth, s.AlphaDepth)
	fmt.Fprintf(w, "  Order:        %s\n", pixelOrder(s))
	fmt.Fprintln(w)

	problems := inspectProblems(h, data)
	if len(problems) == 0 {
		info, err := report.Inspect(path, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Format:       %s\n", info.Format)
		fmt.Fprintf(w, "  Mean color:   %s\n", info.MeanColor)
		fmt.Fprintf(w, "  Hash:         %s\n", info.Hash)
		fmt.Fprintf(w, "  Halved:       %dx%d\n", s.Width/2, s.Height/2)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ✓ Ready to downscale")
		return nil
	}

	fmt.Fprintf(w, "  ✗ %d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(w, "    • %s\n", p)
	}
	return fmt.Errorf("inspect failed with %d problems", len(problems))
}

func inspectProblems(h tga.Header, data []byte) []string {
	var probs []string

	if err := h.Validate(); err != nil {
		probs = append(probs, err.Error())
	}
	f, err := pixel.ForDepth(h.Spec.PixelDepth)
	if err != nil {
		probs = append(probs, err.Error())
		return probs
	}

	// The pixel block may follow the id field or, for files this tool
	// wrote, start right after the header.
	if _, _, err := tga.PixelData(data, f.Size()); err != nil {
		probs = append(probs, err.Error())
	}
	return probs
}

func pixelOrder(s tga.ImageSpec) string {
	v, hz := "bottom-up", "left-to-right"
	if s.TopToBottom {
		v = "top-down"
	}
	if s.RightToLeft {
		hz = "right-to-left"
	}
	return v + ", " + hz
}
