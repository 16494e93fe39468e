package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/tgadown/internal/downscale"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tgadown <input> <output> <algorithm>",
	Short: "Halve the resolution of an uncompressed true-color TGA image",
	Long: `tgadown — halves both dimensions of an uncompressed true-color TGA
(15, 16, 24 or 32 bits per pixel) in one pass.

ALGORITHM is one of:
  nearest   keep the top-left pixel of every 2x2 block
  average   floor of the mean of every 2x2 block
  lanczos   separable Lanczos-3 filter

Odd widths and heights drop their last column or row.`,
	Example: `  tgadown sprite.tga sprite_half.tga lanczos
  tgadown -w 8 --report run.json big.tga small.tga average`,
	Version: version,
	Args:    downscaleArgs,
	RunE:    runDownscale,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"tgadown %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// downscaleArgs accepts exactly input, output and a known algorithm name.
func downscaleArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(3)(cmd, args); err != nil {
		return err
	}
	_, err := downscale.ParseAlgorithm(args[2])
	return err
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[tgadown] "+format+"\n", args...)
	}
}
