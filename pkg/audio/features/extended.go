package features

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vocalens/vocalens/pkg/audio/analyzers"
	"github.com/vocalens/vocalens/pkg/audio/common"
	"github.com/vocalens/vocalens/pkg/audio/wave"
	"github.com/vocalens/vocalens/pkg/logging"
)

// ExtendedFeatures holds the spectral-shape and formant descriptors
// computed only for clips long enough to give them stable estimates.
// F1/F2 stay nil when fewer than two resonances were found; callers must
// render absence as "not computed", never as zero.
type ExtendedFeatures struct {
	MFCCMean []float64 `json:"mfcc_mean"`
	MFCCStd  []float64 `json:"mfcc_std"`

	F1 *float64 `json:"f1,omitempty"`
	F2 *float64 `json:"f2,omitempty"`

	CentroidMean  float64 `json:"centroid_mean"`
	BandwidthMean float64 `json:"bandwidth_mean"`
	Slope         float64 `json:"slope"`
	FlatnessMean  float64 `json:"flatness_mean"`
}

// AnalyzeExtended computes ExtendedFeatures for a buffer of at least
// MinExtendedDuration seconds. Shorter input yields an INSUFFICIENT_DATA
// error; a degenerate formant fit only leaves F1/F2 absent while every
// other field still computes.
func (a *Analyzer) AnalyzeExtended(ctx context.Context, buf *wave.Buffer) (*ExtendedFeatures, error) {
	if buf.Duration() < a.cfg.MinExtendedDuration {
		return nil, common.NewAnalysisError("extended_features", common.ErrCodeInsufficientData,
			fmt.Sprintf("clip is %.2fs, extended features need at least %.0fs",
				buf.Duration(), a.cfg.MinExtendedDuration), nil)
	}

	logger := a.logger.WithFields(logging.Fields{
		"function": "AnalyzeExtended",
		"duration": buf.Duration(),
	})
	logger.Debug("Extracting extended features")

	signal := buf.Samples()
	sampleRate := buf.SampleRate()
	ext := &ExtendedFeatures{}

	spectral := analyzers.NewSpectralAnalyzer(sampleRate, a.cfg)

	var formants []float64
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		coeffs := analyzers.NewMFCC(sampleRate, a.cfg).Compute(signal)
		ext.MFCCMean, ext.MFCCStd = coefficientStats(coeffs, a.cfg.MFCCCoefficients)
		return nil
	})
	g.Go(func() error {
		formants = analyzers.NewFormantEstimator(sampleRate, a.cfg).EstimateFromClip(signal)
		return nil
	})
	g.Go(func() error {
		ext.CentroidMean = seriesMean(spectral.Centroid(signal))
		ext.BandwidthMean = seriesMean(spectral.Bandwidth(signal))
		ext.FlatnessMean = seriesMean(spectral.Flatness(signal))
		return nil
	})
	g.Go(func() error {
		ext.Slope = spectral.Slope(signal)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(formants) > 0 {
		f1 := formants[0]
		ext.F1 = &f1
	}
	if len(formants) > 1 {
		f2 := formants[1]
		ext.F2 = &f2
	}

	logger.Debug("Extended feature extraction completed", logging.Fields{
		"formants_found": len(formants),
		"centroid_mean":  ext.CentroidMean,
		"slope":          ext.Slope,
	})

	return ext, nil
}

// coefficientStats reduces per-frame coefficient vectors to per-coefficient
// mean and population standard deviation
func coefficientStats(frames [][]float64, numCoeffs int) ([]float64, []float64) {
	mean := make([]float64, numCoeffs)
	std := make([]float64, numCoeffs)
	if len(frames) == 0 {
		return mean, std
	}

	column := make([]float64, len(frames))
	for c := range numCoeffs {
		for t, frame := range frames {
			column[t] = frame[c]
		}
		mean[c] = seriesMean(column)
		std[c] = seriesPopStd(column)
	}

	return mean, std
}
