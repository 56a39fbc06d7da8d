package analyzers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalens/vocalens/pkg/audio/config"
)

func TestComputeRMSSilence(t *testing.T) {
	ea := NewEnergyAnalyzer(config.DefaultFeatureConfig())

	rms := ea.ComputeRMS(make([]float64, 16000))
	require.Len(t, rms, 28)
	for _, v := range rms {
		assert.Equal(t, 0.0, v)
	}
}

func TestComputeRMSSine(t *testing.T) {
	ea := NewEnergyAnalyzer(config.DefaultFeatureConfig())

	// RMS of a sine is amplitude / sqrt(2)
	signal := genSine(150, 16000, 1.0, 0.5)
	expected := 0.5 / math.Sqrt2

	rms := ea.ComputeRMS(signal)
	require.NotEmpty(t, rms)
	for _, v := range rms {
		assert.InDelta(t, expected, v, 0.01)
	}
}

func TestComputeRMSShortSignal(t *testing.T) {
	ea := NewEnergyAnalyzer(config.DefaultFeatureConfig())

	rms := ea.ComputeRMS(make([]float64, 100))
	assert.Empty(t, rms)
}
