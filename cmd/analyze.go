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

var (
	analyzeSkipExtended bool
	analyzeTimeout      time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.wav]",
	Short: "Analyze a single voice recording",
	Long: `Analyze a mono WAV recording and report loudness, pitch, clarity
and qualitative delivery feedback.

Recordings longer than the extended-analysis threshold additionally get
MFCC statistics, formant estimates, spectral slope and a natural-language
summary of timbre anomalies.

Examples:
  # Analyze a recording with text output
  vocalens analyze take1.wav

  # Emit the full report as JSON
  vocalens analyze --output json take1.wav

  # Skip extended features even for long recordings
  vocalens analyze --skip-extended take1.wav`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeSkipExtended, "skip-extended", false,
		"skip extended feature extraction")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute,
		"analysis timeout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := configs.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if analyzeSkipExtended {
		// A threshold above any real recording disables the extended pass.
		cfg.Analysis.MinExtendedDuration = 1e12
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	engine := analysis.NewEngine(&analysis.EngineConfig{
		Features:           &cfg.Analysis,
		FeedbackThresholds: &cfg.Feedback,
		SegmentThresholds:  &cfg.Segments,
		Logger:             logging.WithFields(logging.Fields{"component": "analyze"}),
	})

	report, err := engine.AnalyzeFile(ctx, path)
	if err != nil {
		return err
	}

	if !cfg.Output.IncludeSeries {
		report.Features.RMS = nil
		report.Features.Pitch = nil
		report.Features.Clarity = nil
	}

	format := viper.GetString("output_format")
	if format == "text" {
		fmt.Print(renderClipText(report, cfg.Output.Colors))
		return nil
	}

	out, err := renderStructured(report, format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
