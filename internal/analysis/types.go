package analysis

import (
	"github.com/vocalens/vocalens/pkg/audio/features"
	"github.com/vocalens/vocalens/pkg/audio/segments"
)

// ClipReport is the full analysis result for one recording. Extended is nil
// when the clip was too short for extended features; ExtendedSkipped then
// carries the reason so renderers can say "not computed" instead of zero.
type ClipReport struct {
	Path     string               `json:"path"`
	Features *features.FeatureSet `json:"features"`
	Feedback []string             `json:"feedback"`

	Extended        *features.ExtendedFeatures `json:"extended,omitempty"`
	NaturalFeedback []string                   `json:"natural_feedback,omitempty"`
	ExtendedSkipped string                     `json:"extended_skipped,omitempty"`
}

// ComparisonReport pairs two recordings
type ComparisonReport struct {
	PathA string `json:"path_a"`
	PathB string `json:"path_b"`

	FeaturesA *features.FeatureSet `json:"features_a"`
	FeaturesB *features.FeatureSet `json:"features_b"`

	Metrics  []features.ComparisonResult `json:"metrics"`
	Feedback []string                    `json:"feedback"`
}

// SegmentReport evaluates a recording against its transcript
type SegmentReport struct {
	Path           string            `json:"path"`
	TranscriptPath string            `json:"transcript_path"`
	Language       string            `json:"language,omitempty"`
	Segments       []segments.Metric `json:"segments"`
}
