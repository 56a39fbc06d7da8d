package analyzers

import (
	"math"

	"github.com/vocalens/vocalens/pkg/audio/config"
)

// EnergyAnalyzer computes frame-wise RMS energy, the loudness proxy used
// by feedback thresholds and pause detection
type EnergyAnalyzer struct {
	frameSize int
	hopSize   int
}

// NewEnergyAnalyzer creates an energy analyzer using the shared framing config
func NewEnergyAnalyzer(cfg *config.FeatureConfig) *EnergyAnalyzer {
	return &EnergyAnalyzer{
		frameSize: cfg.FrameSize,
		hopSize:   cfg.HopSize,
	}
}

// ComputeRMS returns root-mean-square amplitude per frame. A zero-amplitude
// signal yields exactly 0 for every frame.
func (ea *EnergyAnalyzer) ComputeRMS(signal []float64) []float64 {
	numFrames := NumFrames(len(signal), ea.frameSize, ea.hopSize)
	rms := make([]float64, numFrames)

	for i := range numFrames {
		frame := Frame(signal, i, ea.frameSize, ea.hopSize)

		sum := 0.0
		for _, s := range frame {
			sum += s * s
		}
		rms[i] = math.Sqrt(sum / float64(len(frame)))
	}

	return rms
}
