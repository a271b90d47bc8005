package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamark/divelog/cmd/dive"
)

var (
	synthMaxDepth float64
	synthAvgDepth float64
	synthDuration float64
	synthJSON     bool
)

// synthCmd exposes the profile synthesizer without the TUI, for scripting or
// a quick look at what a dive's summary statistics imply.
var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize a depth profile from summary statistics",
	Long: `Builds a plausible depth-over-time profile from a dive's max depth,
average depth and duration, the same way the journal does for dives
without sampled data. Prints the resulting samples.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dc := dive.Computer{
			Duration:  int(math.Round(synthDuration * 60)),
			MaxDepth:  int(math.Round(synthMaxDepth * 1000)),
			MeanDepth: int(math.Round(synthAvgDepth * 1000)),
		}
		dive.Synthesize(&dc)

		if synthJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(dc)
		}
		if len(dc.Samples) == 0 {
			fmt.Println("no samples: need a non-zero max depth and duration")
			return nil
		}
		fmt.Printf("%8s  %9s\n", "time", "depth")
		for _, s := range dc.Samples {
			fmt.Printf("%5d:%02d  %8.1fm\n", s.Time/60, s.Time%60, float64(s.Depth)/1000)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(synthCmd)

	synthCmd.Flags().Float64Var(&synthMaxDepth, "max-depth", 0, "max depth in meters")
	synthCmd.Flags().Float64Var(&synthAvgDepth, "avg-depth", 0, "average depth in meters (0 if unknown)")
	synthCmd.Flags().Float64Var(&synthDuration, "duration", 0, "dive duration in minutes")
	synthCmd.Flags().BoolVar(&synthJSON, "json", false, "print the full record as JSON")
	_ = synthCmd.MarkFlagRequired("max-depth")
	_ = synthCmd.MarkFlagRequired("duration")
}
