package analyzers

import (
	"sync"

	"github.com/mjibson/go-dsp/window"
)

// WindowGenerator caches window functions so repeated per-frame analysis
// does not recompute coefficient tables. Safe for concurrent use; analyses
// that share an analyzer may request windows from separate goroutines.
type WindowGenerator struct {
	mu      sync.Mutex
	hann    map[int][]float64
	hamming map[int][]float64
}

// NewWindowGenerator creates a new window generator
func NewWindowGenerator() *WindowGenerator {
	return &WindowGenerator{
		hann:    make(map[int][]float64),
		hamming: make(map[int][]float64),
	}
}

// Hann returns a Hann window of the given size
func (wg *WindowGenerator) Hann(size int) []float64 {
	wg.mu.Lock()
	defer wg.mu.Unlock()

	if w, ok := wg.hann[size]; ok {
		return w
	}
	w := window.Hann(size)
	wg.hann[size] = w
	return w
}

// Hamming returns a Hamming window of the given size
func (wg *WindowGenerator) Hamming(size int) []float64 {
	wg.mu.Lock()
	defer wg.mu.Unlock()

	if w, ok := wg.hamming[size]; ok {
		return w
	}
	w := window.Hamming(size)
	wg.hamming[size] = w
	return w
}

// ApplyWindow multiplies a frame by a window into a fresh slice
func ApplyWindow(frame, win []float64) []float64 {
	out := make([]float64, len(frame))
	for i := range frame {
		out[i] = frame[i] * win[i]
	}
	return out
}
