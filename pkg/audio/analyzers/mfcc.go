package analyzers

import (
	"math"

	"github.com/vocalens/vocalens/pkg/audio/config"
)

// MFCC computes mel-frequency cepstral coefficients, the compact
// spectral-shape descriptor used by the extended feature report
type MFCC struct {
	sampleRate int
	frameSize  int
	hopSize    int
	numFilters int
	numCoeffs  int

	spectral   *SpectralAnalyzer
	filterBank [][]float64
	dctMatrix  [][]float64
}

// NewMFCC creates an MFCC extractor for the given sample rate
func NewMFCC(sampleRate int, cfg *config.FeatureConfig) *MFCC {
	m := &MFCC{
		sampleRate: sampleRate,
		frameSize:  cfg.FrameSize,
		hopSize:    cfg.HopSize,
		numFilters: cfg.MelFilters,
		numCoeffs:  cfg.MFCCCoefficients,
		spectral:   NewSpectralAnalyzer(sampleRate, cfg),
	}

	m.filterBank = melFilterBank(m.numFilters, m.frameSize/2+1, sampleRate)
	m.dctMatrix = dctII(m.numCoeffs, m.numFilters)

	return m
}

// Compute returns one vector of numCoeffs coefficients per analysis frame
func (m *MFCC) Compute(signal []float64) [][]float64 {
	magnitude := m.spectral.Spectrogram(signal, m.frameSize, m.hopSize)

	coeffs := make([][]float64, len(magnitude))
	for t, spectrum := range magnitude {
		// Power spectrum through the mel filter bank, then log
		logEnergies := make([]float64, m.numFilters)
		for f := range m.numFilters {
			energy := 0.0
			for b, weight := range m.filterBank[f] {
				energy += weight * spectrum[b] * spectrum[b]
			}
			if energy < 1e-10 {
				energy = 1e-10
			}
			logEnergies[f] = math.Log(energy)
		}

		// DCT-II decorrelates the filter energies into cepstral coefficients
		frame := make([]float64, m.numCoeffs)
		for c := range m.numCoeffs {
			sum := 0.0
			for f := range m.numFilters {
				sum += m.dctMatrix[c][f] * logEnergies[f]
			}
			frame[c] = sum
		}
		coeffs[t] = frame
	}

	return coeffs
}

// hzToMel converts Hz to the HTK mel scale
func hzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// melToHz converts mel back to Hz
func melToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// melFilterBank builds numFilters triangular filters spanning 0..Nyquist,
// returned as per-filter weights over the FFT bins
func melFilterBank(numFilters, numBins, sampleRate int) [][]float64 {
	nyquist := float64(sampleRate) / 2.0
	melMax := hzToMel(nyquist)

	// Filter edge frequencies, evenly spaced on the mel scale
	edges := make([]float64, numFilters+2)
	for i := range edges {
		edges[i] = melToHz(melMax * float64(i) / float64(numFilters+1))
	}

	freqPerBin := nyquist / float64(numBins-1)
	bank := make([][]float64, numFilters)

	for f := range numFilters {
		lower, center, upper := edges[f], edges[f+1], edges[f+2]
		weights := make([]float64, numBins)

		for b := range numBins {
			freq := float64(b) * freqPerBin
			switch {
			case freq >= lower && freq <= center && center > lower:
				weights[b] = (freq - lower) / (center - lower)
			case freq > center && freq <= upper && upper > center:
				weights[b] = (upper - freq) / (upper - center)
			}
		}
		bank[f] = weights
	}

	return bank
}

// dctII builds an orthonormal DCT-II matrix of numCoeffs x numInputs
func dctII(numCoeffs, numInputs int) [][]float64 {
	matrix := make([][]float64, numCoeffs)
	scale0 := math.Sqrt(1.0 / float64(numInputs))
	scale := math.Sqrt(2.0 / float64(numInputs))

	for c := range numCoeffs {
		row := make([]float64, numInputs)
		for f := range numInputs {
			row[f] = math.Cos(math.Pi * float64(c) * (float64(f) + 0.5) / float64(numInputs))
			if c == 0 {
				row[f] *= scale0
			} else {
				row[f] *= scale
			}
		}
		matrix[c] = row
	}

	return matrix
}
