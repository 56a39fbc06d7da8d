package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vocalens/vocalens/configs"
	"github.com/vocalens/vocalens/internal/analysis"
	"github.com/vocalens/vocalens/pkg/logging"
)

var compareTimeout time.Duration

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [takeA.wav] [takeB.wav]",
	Short: "Compare two takes of the same material",
	Long: `Analyze two recordings and report how take B moved relative to
take A for each core metric, plus a verdict on which take carries more
volume, more pitch movement and more clarity.

Deltas are expressed as percent change from A to B; a metric whose A value
is zero reports no delta.

Examples:
  # Compare two takes
  vocalens compare rehearsal.wav final.wav

  # Emit the comparison as YAML
  vocalens compare --output yaml rehearsal.wav final.wav`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().DurationVar(&compareTimeout, "timeout", 2*time.Minute,
		"analysis timeout")
}

func runCompare(cmd *cobra.Command, args []string) error {
	pathA, pathB := args[0], args[1]

	cfg, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := configs.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), compareTimeout)
	defer cancel()

	engine := analysis.NewEngine(&analysis.EngineConfig{
		Features:           &cfg.Analysis,
		FeedbackThresholds: &cfg.Feedback,
		SegmentThresholds:  &cfg.Segments,
		Logger:             logging.WithFields(logging.Fields{"component": "compare"}),
	})

	report, err := engine.CompareFiles(ctx, pathA, pathB)
	if err != nil {
		return err
	}

	if !cfg.Output.IncludeSeries {
		report.FeaturesA.RMS = nil
		report.FeaturesA.Pitch = nil
		report.FeaturesA.Clarity = nil
		report.FeaturesB.RMS = nil
		report.FeaturesB.Pitch = nil
		report.FeaturesB.Clarity = nil
	}

	format := viper.GetString("output_format")
	if format == "text" {
		fmt.Print(renderComparisonText(report, cfg.Output.Colors))
		return nil
	}

	out, err := renderStructured(report, format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
