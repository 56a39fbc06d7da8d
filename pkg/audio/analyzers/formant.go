package analyzers

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/vocalens/vocalens/pkg/audio/config"
	"github.com/vocalens/vocalens/pkg/logging"
)

// formantFrameSize is the length of the centered analysis frame used for
// linear prediction
const formantFrameSize = 1024

// FormantEstimator estimates vocal-tract resonance frequencies from a short
// Hamming-windowed frame via linear prediction and polynomial root-finding.
// A silent or numerically degenerate frame yields an empty result rather
// than an error; missing formants are a tolerated outcome downstream.
type FormantEstimator struct {
	sampleRate      int
	order           int
	windowGenerator *WindowGenerator
	logger          logging.Logger
}

// NewFormantEstimator creates an estimator with LPC order sampleRate/1000+offset
func NewFormantEstimator(sampleRate int, cfg *config.FeatureConfig) *FormantEstimator {
	return &FormantEstimator{
		sampleRate:      sampleRate,
		order:           cfg.LPCOrder(sampleRate),
		windowGenerator: NewWindowGenerator(),
		logger: logging.WithFields(logging.Fields{
			"component":   "formant_estimator",
			"sample_rate": sampleRate,
		}),
	}
}

// EstimateFromClip runs the estimation on a frame centered in the clip
func (fe *FormantEstimator) EstimateFromClip(signal []float64) []float64 {
	if len(signal) < formantFrameSize {
		return nil
	}
	mid := len(signal) / 2
	return fe.Estimate(signal[mid-formantFrameSize/2 : mid+formantFrameSize/2])
}

// Estimate returns resonance frequencies in ascending order for one frame.
// The first two entries are conventionally F1 and F2.
func (fe *FormantEstimator) Estimate(frame []float64) []float64 {
	if len(frame) < fe.order*2 {
		return nil
	}

	windowed := ApplyWindow(frame, fe.windowGenerator.Hamming(len(frame)))

	coeffs, ok := fe.lpc(windowed)
	if !ok {
		fe.logger.Debug("LPC fit degenerate, returning no formants")
		return nil
	}

	roots, ok := polynomialRoots(coeffs)
	if !ok {
		fe.logger.Debug("root-finding failed, returning no formants")
		return nil
	}

	// Keep the conjugate-symmetric upper half and map pole angles to Hz
	nyquist := float64(fe.sampleRate) / 2.0
	freqs := make([]float64, 0, len(roots))
	for _, root := range roots {
		if imag(root) < 0 {
			continue
		}
		freq := cmplx.Phase(root) * float64(fe.sampleRate) / (2 * math.Pi)
		if freq < nyquist {
			freqs = append(freqs, freq)
		}
	}

	sort.Float64s(freqs)
	return freqs
}

// lpc fits linear-prediction coefficients by the autocorrelation method with
// Levinson-Durbin recursion and returns the prediction-error filter
// [1, -a1, ..., -ap], whose roots are the vocal-tract poles. Returns false
// when the signal is silent or the recursion collapses.
func (fe *FormantEstimator) lpc(signal []float64) ([]float64, bool) {
	p := fe.order

	// Autocorrelation sequence up to lag p
	r := make([]float64, p+1)
	for lag := 0; lag <= p; lag++ {
		sum := 0.0
		for i := 0; i < len(signal)-lag; i++ {
			sum += signal[i] * signal[i+lag]
		}
		r[lag] = sum
	}

	if r[0] == 0 {
		return nil, false
	}

	a := make([]float64, p+1)
	a[0] = 1.0
	e := r[0]

	for i := 1; i <= p; i++ {
		numerator := r[i]
		for j := 1; j < i; j++ {
			numerator -= a[j] * r[i-j]
		}

		if e == 0 {
			return nil, false
		}
		k := numerator / e

		prev := make([]float64, i)
		copy(prev, a[:i])

		a[i] = k
		for j := 1; j < i; j++ {
			a[j] = prev[j] - k*prev[i-j]
		}

		e *= 1 - k*k
		if e <= 0 {
			return nil, false
		}
	}

	// The recursion builds predictor weights; the error filter A(z) that
	// polynomialRoots needs carries them negated
	for j := 1; j <= p; j++ {
		a[j] = -a[j]
	}

	return a, true
}

// polynomialRoots finds the roots of a polynomial with highest-order
// coefficient first, as eigenvalues of its companion matrix
func polynomialRoots(coeffs []float64) ([]complex128, bool) {
	degree := len(coeffs) - 1
	if degree < 1 || coeffs[0] == 0 {
		return nil, false
	}

	companion := mat.NewDense(degree, degree, nil)
	for j := range degree {
		companion.Set(0, j, -coeffs[j+1]/coeffs[0])
	}
	for i := 1; i < degree; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, false
	}

	return eig.Values(nil), true
}
