package analyzers

import (
	"github.com/vocalens/vocalens/pkg/audio/config"
	"github.com/vocalens/vocalens/pkg/logging"
)

// PitchTracker estimates the fundamental frequency per frame using the YIN
// cumulative-mean-normalized-difference method.
//
// Reference: de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental
// frequency estimator for speech and music"
type PitchTracker struct {
	sampleRate int
	frameSize  int
	hopSize    int
	fMin       float64
	fMax       float64
	threshold  float64
	logger     logging.Logger
}

// NewPitchTracker creates a pitch tracker for the given sample rate
func NewPitchTracker(sampleRate int, cfg *config.FeatureConfig) *PitchTracker {
	return &PitchTracker{
		sampleRate: sampleRate,
		frameSize:  cfg.FrameSize,
		hopSize:    cfg.HopSize,
		fMin:       cfg.FMin,
		fMax:       cfg.FMax,
		threshold:  cfg.YinThreshold,
		logger: logging.WithFields(logging.Fields{
			"component":   "pitch_tracker",
			"sample_rate": sampleRate,
		}),
	}
}

// EstimateF0 returns one F0 estimate in Hz per analysis frame. Frames with
// no qualifying lag (unvoiced or silent) yield numeric 0, and callers fold
// those zeros into pitch mean/std, so heavily-unvoiced material reads low.
func (pt *PitchTracker) EstimateF0(signal []float64) []float64 {
	numFrames := NumFrames(len(signal), pt.frameSize, pt.hopSize)
	pitch := make([]float64, numFrames)

	for i := range numFrames {
		pitch[i] = pt.yinFrame(Frame(signal, i, pt.frameSize, pt.hopSize))
	}

	return pitch
}

// yinFrame runs YIN on a single frame and returns 0 when unvoiced
func (pt *PitchTracker) yinFrame(frame []float64) float64 {
	halfN := len(frame) / 2

	tauMin := int(float64(pt.sampleRate) / pt.fMax)
	tauMax := int(float64(pt.sampleRate) / pt.fMin)
	if tauMin < 1 {
		tauMin = 1
	}
	if tauMax >= halfN {
		tauMax = halfN - 1
	}
	if tauMin >= tauMax {
		return 0
	}

	// Difference function
	diff := make([]float64, tauMax+1)
	for tau := 1; tau <= tauMax; tau++ {
		sum := 0.0
		for j := range halfN {
			delta := frame[j] - frame[j+tau]
			sum += delta * delta
		}
		diff[tau] = sum
	}

	// Cumulative mean normalized difference
	cmndf := make([]float64, tauMax+1)
	cmndf[0] = 1.0
	runningSum := 0.0
	for tau := 1; tau <= tauMax; tau++ {
		runningSum += diff[tau]
		if runningSum == 0 {
			cmndf[tau] = 1.0
		} else {
			cmndf[tau] = diff[tau] / (runningSum / float64(tau))
		}
	}

	// First dip below the threshold inside the lag range; follow the dip
	// to its local minimum before interpolating
	for tau := tauMin; tau <= tauMax; tau++ {
		if cmndf[tau] >= pt.threshold {
			continue
		}
		for tau+1 <= tauMax && cmndf[tau+1] < cmndf[tau] {
			tau++
		}
		period := parabolicInterpolation(cmndf, tau)
		if period <= 0 {
			return 0
		}
		return float64(pt.sampleRate) / period
	}

	return 0
}

// parabolicInterpolation refines a discrete minimum position by fitting a
// parabola through the point and its neighbors
func parabolicInterpolation(values []float64, idx int) float64 {
	if idx <= 0 || idx >= len(values)-1 {
		return float64(idx)
	}

	a := values[idx-1]
	b := values[idx]
	c := values[idx+1]

	denom := a - 2*b + c
	if denom == 0 {
		return float64(idx)
	}

	return float64(idx) + 0.5*(a-c)/denom
}
