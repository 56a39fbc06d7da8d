package segments

import (
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/vocalens/vocalens/pkg/audio/analyzers"
	"github.com/vocalens/vocalens/pkg/audio/config"
	"github.com/vocalens/vocalens/pkg/audio/wave"
	"github.com/vocalens/vocalens/pkg/logging"
)

// Metric is the per-segment evaluation record. Instances are created once
// per transcript segment and never mutated afterward.
type Metric struct {
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	WordCount  int      `json:"word_count"`
	SpeechRate float64  `json:"speech_rate"`
	F0Mean     float64  `json:"f0_mean"`
	F0Std      float64  `json:"f0_std"`
	PauseRatio float64  `json:"pause_ratio"`
	RMSMean    float64  `json:"rms_mean"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags"`
}

// Thresholds holds the cutoffs for segment tagging
type Thresholds struct {
	SlowRate      float64 `mapstructure:"slow_rate"`
	FastRate      float64 `mapstructure:"fast_rate"`
	MonotoneF0Std float64 `mapstructure:"monotone_f0_std"`
	ExpressiveStd float64 `mapstructure:"expressive_f0_std"`
	PauseHeavyPct float64 `mapstructure:"pause_heavy_pct"`
}

// DefaultThresholds returns the canonical segment cutoffs
func DefaultThresholds() *Thresholds {
	return &Thresholds{
		SlowRate:      2.5,
		FastRate:      5.0,
		MonotoneF0Std: 15.0,
		ExpressiveStd: 30.0,
		PauseHeavyPct: 30.0,
	}
}

// Scorer combines clip audio with transcript segment boundaries to derive
// speech-rate and pause metrics
type Scorer struct {
	cfg        *config.FeatureConfig
	thresholds *Thresholds
	logger     logging.Logger
}

// NewScorer creates a segment scorer; nil arguments select defaults
func NewScorer(cfg *config.FeatureConfig, thresholds *Thresholds) *Scorer {
	if cfg == nil {
		cfg = config.DefaultFeatureConfig()
	}
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	return &Scorer{
		cfg:        cfg,
		thresholds: thresholds,
		logger: logging.WithFields(logging.Fields{
			"component": "segment_scorer",
		}),
	}
}

// Score evaluates every transcript segment against the full-clip buffer
func (s *Scorer) Score(buf *wave.Buffer, transcript *Transcript) []Metric {
	metrics := make([]Metric, 0, len(transcript.Segments))
	for _, seg := range transcript.Segments {
		metrics = append(metrics, s.ScoreSegment(buf, seg))
	}
	return metrics
}

// ScoreSegment evaluates one segment. Negative or out-of-range times are
// clamped into the clip; a zero-length segment yields a speech rate of 0.
func (s *Scorer) ScoreSegment(buf *wave.Buffer, seg Segment) Metric {
	start := seg.Start
	end := seg.End
	if start < 0 {
		start = 0
	}
	if end > buf.Duration() {
		end = buf.Duration()
	}

	metric := Metric{
		Start:     seg.Start,
		End:       seg.End,
		Text:      strings.TrimSpace(seg.Text),
		WordCount: countWords(seg.Text),
	}

	if dur := end - start; dur > 0 {
		metric.SpeechRate = float64(metric.WordCount) / dur
	}

	slice := buf.SliceSeconds(start, end)
	signal := slice.Samples()

	f0 := analyzers.NewPitchTracker(slice.SampleRate(), s.cfg).EstimateF0(signal)
	if len(f0) > 0 {
		metric.F0Mean = stat.Mean(f0, nil)
		metric.F0Std = stat.PopStdDev(f0, nil)
	}

	rms := analyzers.NewEnergyAnalyzer(s.cfg).ComputeRMS(signal)
	if len(rms) > 0 {
		metric.RMSMean = stat.Mean(rms, nil)

		silent := 0
		for _, v := range rms {
			if v < s.cfg.SilenceThreshold {
				silent++
			}
		}
		metric.PauseRatio = float64(silent) / float64(len(rms)) * 100
	}

	metric.Tags = s.tag(metric)

	s.logger.Debug("Segment scored", logging.Fields{
		"start":       metric.Start,
		"end":         metric.End,
		"word_count":  metric.WordCount,
		"speech_rate": metric.SpeechRate,
		"pause_ratio": metric.PauseRatio,
		"tags":        metric.Tags,
	})

	return metric
}

// tag assigns descriptive tags; every rule is evaluated independently, so a
// segment can carry several. "stable" is the fallback when nothing fires.
func (s *Scorer) tag(m Metric) []string {
	t := s.thresholds
	tags := make([]string, 0, 3)

	if m.SpeechRate < t.SlowRate {
		tags = append(tags, "slow")
	} else if m.SpeechRate > t.FastRate {
		tags = append(tags, "fast")
	}

	if m.F0Std < t.MonotoneF0Std {
		tags = append(tags, "monotone")
	} else if m.F0Std > t.ExpressiveStd {
		tags = append(tags, "expressive")
	}

	if m.PauseRatio > t.PauseHeavyPct {
		tags = append(tags, "pause-heavy")
	}

	if len(tags) == 0 {
		tags = append(tags, "stable")
	}

	return tags
}

// countWords splits on whitespace, treating the full-width space used in
// CJK transcripts as a delimiter too. Text without explicit word
// separators (e.g. unsegmented Japanese) is under-counted; that is a known
// limitation of whitespace counting, not something to paper over here.
func countWords(text string) int {
	normalized := strings.ReplaceAll(text, "　", " ")
	return len(strings.Fields(normalized))
}
