package analysis

import (
	"context"
	"fmt"

	"github.com/vocalens/vocalens/pkg/audio/common"
	"github.com/vocalens/vocalens/pkg/audio/config"
	"github.com/vocalens/vocalens/pkg/audio/feedback"
	"github.com/vocalens/vocalens/pkg/audio/features"
	"github.com/vocalens/vocalens/pkg/audio/segments"
	"github.com/vocalens/vocalens/pkg/audio/wavio"
	"github.com/vocalens/vocalens/pkg/logging"
)

// Engine wires decoding, feature extraction, scoring and feedback into the
// report structs the CLI renders
type Engine struct {
	logger   logging.Logger
	analyzer *features.Analyzer
	feedback *feedback.Engine
	scorer   *segments.Scorer
}

// EngineConfig contains configuration for the analysis engine
type EngineConfig struct {
	Features           *config.FeatureConfig
	FeedbackThresholds *feedback.Thresholds
	SegmentThresholds  *segments.Thresholds
	Logger             logging.Logger
}

// NewEngine creates an analysis engine; nil config fields select defaults
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Engine{
		logger:   logger,
		analyzer: features.NewAnalyzer(cfg.Features),
		feedback: feedback.NewEngine(cfg.FeedbackThresholds),
		scorer:   segments.NewScorer(cfg.Features, cfg.SegmentThresholds),
	}
}

// AnalyzeFile decodes one recording and produces its full report. Extended
// features are attempted and their absence is reported, never fatal.
func (e *Engine) AnalyzeFile(ctx context.Context, path string) (*ClipReport, error) {
	e.logger.Debug("Starting clip analysis", logging.Fields{"path": path})

	buf, err := wavio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	featureSet, err := e.analyzer.Analyze(ctx, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", path, err)
	}

	report := &ClipReport{
		Path:     path,
		Features: featureSet,
		Feedback: e.feedback.Feedback(featureSet),
	}

	ext, err := e.analyzer.AnalyzeExtended(ctx, buf)
	switch {
	case err == nil:
		report.Extended = ext
		report.NaturalFeedback = e.feedback.Natural(ext)
	case common.IsCode(err, common.ErrCodeInsufficientData):
		report.ExtendedSkipped = err.Error()
		e.logger.Debug("Extended features skipped", logging.Fields{"reason": err.Error()})
	default:
		report.ExtendedSkipped = err.Error()
		e.logger.Warn("Extended feature extraction failed", logging.Fields{"error": err.Error()})
	}

	e.logger.Debug("Clip analysis completed", logging.Fields{
		"path":     path,
		"duration": featureSet.Duration,
		"frames":   len(featureSet.RMS),
	})

	return report, nil
}

// CompareFiles analyzes two recordings and pairs their feature sets. Each
// buffer keeps its own sample rate; differing rates between the two takes
// are tolerated.
func (e *Engine) CompareFiles(ctx context.Context, pathA, pathB string) (*ComparisonReport, error) {
	bufA, err := wavio.ReadFile(pathA)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", pathA, err)
	}
	bufB, err := wavio.ReadFile(pathB)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", pathB, err)
	}

	featuresA, err := e.analyzer.Analyze(ctx, bufA)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", pathA, err)
	}
	featuresB, err := e.analyzer.Analyze(ctx, bufB)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", pathB, err)
	}

	return &ComparisonReport{
		PathA:     pathA,
		PathB:     pathB,
		FeaturesA: featuresA,
		FeaturesB: featuresB,
		Metrics:   features.Compare(featuresA, featuresB),
		Feedback:  e.feedback.Comparative(featuresA, featuresB),
	}, nil
}

// ScoreTranscript evaluates a recording against a transcript JSON file
func (e *Engine) ScoreTranscript(_ context.Context, audioPath, transcriptPath string) (*SegmentReport, error) {
	buf, err := wavio.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", audioPath, err)
	}

	transcript, err := segments.LoadTranscript(transcriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript %s: %w", transcriptPath, err)
	}

	return &SegmentReport{
		Path:           audioPath,
		TranscriptPath: transcriptPath,
		Language:       transcript.Language,
		Segments:       e.scorer.Score(buf, transcript),
	}, nil
}
