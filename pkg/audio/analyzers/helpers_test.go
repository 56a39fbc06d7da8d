package analyzers

import (
	"math"
	"math/rand"
)

// genSine produces duration seconds of a pure sine tone
func genSine(freq float64, sampleRate int, duration, amplitude float64) []float64 {
	n := int(duration * float64(sampleRate))
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return signal
}

// genNoise produces deterministic uniform white noise in [-amplitude, amplitude]
func genNoise(n int, amplitude float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = amplitude * (2*rng.Float64() - 1)
	}
	return signal
}
