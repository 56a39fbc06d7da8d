package features

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/vocalens/vocalens/pkg/audio/analyzers"
	"github.com/vocalens/vocalens/pkg/audio/config"
	"github.com/vocalens/vocalens/pkg/audio/wave"
	"github.com/vocalens/vocalens/pkg/logging"
)

// FeatureSet aggregates the per-clip acoustic descriptors. The rms, pitch
// and clarity series all use the same frame/hop configuration and are
// index-aligned.
type FeatureSet struct {
	Duration   float64 `json:"duration"`
	SampleRate int     `json:"sample_rate"`

	RMS     []float64 `json:"rms,omitempty"`
	RMSMean float64   `json:"rms_mean"`

	// Pitch holds 0 for unvoiced frames; those zeros are included in
	// PitchMean and PitchStd, so pause-heavy clips read low
	Pitch     []float64 `json:"pitch,omitempty"`
	PitchMean float64   `json:"pitch_mean"`
	PitchStd  float64   `json:"pitch_std"`

	Clarity     []float64 `json:"clarity,omitempty"`
	ClarityMean float64   `json:"clarity_mean"`
}

// Analyzer runs the independent per-clip analyses and aggregates them
type Analyzer struct {
	cfg    *config.FeatureConfig
	logger logging.Logger
}

// NewAnalyzer creates a feature analyzer; nil cfg selects the defaults
func NewAnalyzer(cfg *config.FeatureConfig) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultFeatureConfig()
	}
	return &Analyzer{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "feature_analyzer",
		}),
	}
}

// Analyze computes the FeatureSet for one buffer. The energy, pitch and
// clarity analyses have no data dependency on each other and run
// concurrently; aggregation waits for all of them.
func (a *Analyzer) Analyze(ctx context.Context, buf *wave.Buffer) (*FeatureSet, error) {
	logger := a.logger.WithFields(logging.Fields{
		"function":    "Analyze",
		"samples":     buf.Len(),
		"sample_rate": buf.SampleRate(),
	})
	logger.Debug("Extracting clip features")

	fs := &FeatureSet{
		Duration:   buf.Duration(),
		SampleRate: buf.SampleRate(),
	}

	signal := buf.Samples()
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		fs.RMS = analyzers.NewEnergyAnalyzer(a.cfg).ComputeRMS(signal)
		return nil
	})
	g.Go(func() error {
		fs.Pitch = analyzers.NewPitchTracker(buf.SampleRate(), a.cfg).EstimateF0(signal)
		return nil
	})
	g.Go(func() error {
		fs.Clarity = analyzers.NewSpectralAnalyzer(buf.SampleRate(), a.cfg).Flatness(signal)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fs.RMSMean = seriesMean(fs.RMS)
	fs.PitchMean = seriesMean(fs.Pitch)
	fs.PitchStd = seriesPopStd(fs.Pitch)
	fs.ClarityMean = seriesMean(fs.Clarity)

	logger.Debug("Clip feature extraction completed", logging.Fields{
		"frames":       len(fs.RMS),
		"rms_mean":     fs.RMSMean,
		"pitch_mean":   fs.PitchMean,
		"clarity_mean": fs.ClarityMean,
	})

	return fs, nil
}

// seriesMean is an arithmetic mean that treats an empty series as 0,
// so short buffers flow through as "nothing measured" rather than NaN
func seriesMean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// seriesPopStd is the population standard deviation with the same guard
func seriesPopStd(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.PopStdDev(xs, nil)
}
