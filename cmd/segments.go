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
	segmentsTranscript string
	segmentsTimeout    time.Duration
)

// segmentsCmd represents the segments command
var segmentsCmd = &cobra.Command{
	Use:   "segments [file.wav]",
	Short: "Score a recording sentence by sentence against a transcript",
	Long: `Score each transcript segment of a recording for pacing,
expressiveness and pausing.

The transcript is a JSON file of timed segments. For each segment the
command reports speech rate, pitch statistics, pause ratio and loudness,
and tags the delivery (slow, fast, monotone, expressive, pause-heavy or
stable).

Examples:
  # Score a narration against its transcript
  vocalens segments --transcript take1.json take1.wav

  # Emit the per-segment metrics as JSON
  vocalens segments --transcript take1.json --output json take1.wav`,
	Args: cobra.ExactArgs(1),
	RunE: runSegments,
}

func init() {
	rootCmd.AddCommand(segmentsCmd)

	segmentsCmd.Flags().StringVarP(&segmentsTranscript, "transcript", "t", "",
		"transcript JSON file (required)")
	segmentsCmd.MarkFlagRequired("transcript")
	segmentsCmd.Flags().DurationVar(&segmentsTimeout, "timeout", 2*time.Minute,
		"analysis timeout")
}

func runSegments(cmd *cobra.Command, args []string) error {
	audioPath := args[0]

	cfg, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := configs.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), segmentsTimeout)
	defer cancel()

	engine := analysis.NewEngine(&analysis.EngineConfig{
		Features:           &cfg.Analysis,
		FeedbackThresholds: &cfg.Feedback,
		SegmentThresholds:  &cfg.Segments,
		Logger:             logging.WithFields(logging.Fields{"component": "segments"}),
	})

	report, err := engine.ScoreTranscript(ctx, audioPath, segmentsTranscript)
	if err != nil {
		return err
	}

	format := viper.GetString("output_format")
	if format == "text" {
		fmt.Print(renderSegmentText(report, cfg.Output.Colors))
		return nil
	}

	out, err := renderStructured(report, format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
