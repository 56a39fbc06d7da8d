package analyzers

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/vocalens/vocalens/pkg/audio/config"
)

// SpectralAnalyzer provides STFT-based descriptors: flatness (the clarity
// proxy), centroid, bandwidth and whole-clip spectral slope
type SpectralAnalyzer struct {
	sampleRate      int
	frameSize       int
	hopSize         int
	slopeFFTSize    int
	windowGenerator *WindowGenerator
}

// NewSpectralAnalyzer creates a new spectral analyzer
func NewSpectralAnalyzer(sampleRate int, cfg *config.FeatureConfig) *SpectralAnalyzer {
	return &SpectralAnalyzer{
		sampleRate:      sampleRate,
		frameSize:       cfg.FrameSize,
		hopSize:         cfg.HopSize,
		slopeFFTSize:    cfg.SlopeFFTSize,
		windowGenerator: NewWindowGenerator(),
	}
}

// Spectrogram computes per-frame magnitude spectra (positive frequencies
// only) with a Hann window, using the shared framing rule
func (sa *SpectralAnalyzer) Spectrogram(signal []float64, fftSize, hopSize int) [][]float64 {
	numFrames := NumFrames(len(signal), fftSize, hopSize)
	win := sa.windowGenerator.Hann(fftSize)
	freqBins := fftSize/2 + 1

	magnitude := make([][]float64, numFrames)
	for i := range numFrames {
		windowed := ApplyWindow(Frame(signal, i, fftSize, hopSize), win)
		spectrum := fft.FFTReal(windowed)

		magnitude[i] = make([]float64, freqBins)
		for f := range freqBins {
			magnitude[i][f] = cmplx.Abs(spectrum[f])
		}
	}

	return magnitude
}

// Flatness returns per-frame spectral flatness in [0, 1]: the ratio of the
// geometric to the arithmetic mean of the magnitude spectrum. Near 0 means
// tonal/harmonic content, near 1 means noise-like content.
func (sa *SpectralAnalyzer) Flatness(signal []float64) []float64 {
	magnitude := sa.Spectrogram(signal, sa.frameSize, sa.hopSize)

	flatness := make([]float64, len(magnitude))
	for t, spectrum := range magnitude {
		flatness[t] = spectralFlatness(spectrum)
	}
	return flatness
}

// Centroid returns the magnitude-weighted mean frequency per frame
func (sa *SpectralAnalyzer) Centroid(signal []float64) []float64 {
	magnitude := sa.Spectrogram(signal, sa.frameSize, sa.hopSize)
	freqs := sa.FrequencyBins(sa.frameSize/2 + 1)

	centroid := make([]float64, len(magnitude))
	for t, spectrum := range magnitude {
		centroid[t] = spectralCentroid(spectrum, freqs)
	}
	return centroid
}

// Bandwidth returns the magnitude-weighted spread around the centroid per frame
func (sa *SpectralAnalyzer) Bandwidth(signal []float64) []float64 {
	magnitude := sa.Spectrogram(signal, sa.frameSize, sa.hopSize)
	freqs := sa.FrequencyBins(sa.frameSize/2 + 1)

	bandwidth := make([]float64, len(magnitude))
	for t, spectrum := range magnitude {
		centroid := spectralCentroid(spectrum, freqs)
		bandwidth[t] = spectralBandwidth(spectrum, freqs, centroid)
	}
	return bandwidth
}

// Slope averages the clip's magnitude spectrum in dB relative to the clip
// peak and returns the slope of a linear regression of dB against frequency.
// The regression runs over linear frequency, not log frequency.
func (sa *SpectralAnalyzer) Slope(signal []float64) float64 {
	hop := sa.slopeFFTSize / 4
	magnitude := sa.Spectrogram(signal, sa.slopeFFTSize, hop)
	if len(magnitude) == 0 {
		return 0
	}

	freqBins := sa.slopeFFTSize/2 + 1
	freqs := sa.FrequencyBins(freqBins)

	// Clip peak for the dB reference
	peak := 0.0
	for _, spectrum := range magnitude {
		for _, mag := range spectrum {
			if mag > peak {
				peak = mag
			}
		}
	}
	if peak <= 0 {
		return 0
	}

	// Mean dB spectrum across frames, floored to avoid log(0)
	meanDB := make([]float64, freqBins)
	for f := range freqBins {
		sum := 0.0
		for t := range magnitude {
			mag := magnitude[t][f]
			if mag < 1e-10 {
				mag = 1e-10
			}
			sum += 20 * math.Log10(mag/peak)
		}
		meanDB[f] = sum / float64(len(magnitude))
	}

	return regressionSlope(freqs, meanDB)
}

// FrequencyBins returns the frequency in Hz of each positive FFT bin
func (sa *SpectralAnalyzer) FrequencyBins(numBins int) []float64 {
	freqs := make([]float64, numBins)
	for i := range numBins {
		freqs[i] = float64(i) * float64(sa.sampleRate) / float64((numBins-1)*2)
	}
	return freqs
}

// spectralFlatness computes flatness of one magnitude spectrum (Wiener entropy)
func spectralFlatness(spectrum []float64) float64 {
	if len(spectrum) == 0 {
		return 0
	}

	// Geometric mean in the log domain for numerical stability
	logSum := 0.0
	count := 0
	for _, mag := range spectrum {
		if mag > 1e-10 {
			logSum += math.Log(mag)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	geometricMean := math.Exp(logSum / float64(count))

	arithmeticMean := 0.0
	for _, mag := range spectrum {
		arithmeticMean += mag
	}
	arithmeticMean /= float64(len(spectrum))

	if arithmeticMean == 0 {
		return 0
	}

	flatness := geometricMean / arithmeticMean
	if flatness > 1.0 {
		flatness = 1.0
	}
	return flatness
}

// spectralCentroid computes the center of mass of one magnitude spectrum
func spectralCentroid(spectrum, freqs []float64) float64 {
	numerator := 0.0
	denominator := 0.0
	for i := range spectrum {
		numerator += freqs[i] * spectrum[i]
		denominator += spectrum[i]
	}
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// spectralBandwidth computes the magnitude-weighted spread around the centroid
func spectralBandwidth(spectrum, freqs []float64, centroid float64) float64 {
	numerator := 0.0
	denominator := 0.0
	for i := range spectrum {
		diff := freqs[i] - centroid
		numerator += diff * diff * spectrum[i]
		denominator += spectrum[i]
	}
	if denominator == 0 {
		return 0
	}
	return math.Sqrt(numerator / denominator)
}

// regressionSlope returns the least-squares slope of y against x
func regressionSlope(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	n := float64(len(x))
	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumXX := 0.0
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denominator
}
