package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferCopiesSamples(t *testing.T) {
	samples := []float64{0.1, 0.2, 0.3}
	buf := NewBuffer(samples, 16000)

	samples[0] = 99.0
	assert.Equal(t, 0.1, buf.Samples()[0], "buffer must not alias caller slice")
}

func TestBufferDuration(t *testing.T) {
	buf := NewBuffer(make([]float64, 16000), 16000)
	assert.Equal(t, 1.0, buf.Duration())
	assert.Equal(t, 16000, buf.Len())
	assert.Equal(t, 16000, buf.SampleRate())
}

func TestBufferDurationZeroRate(t *testing.T) {
	buf := NewBuffer([]float64{0.1}, 0)
	assert.Equal(t, 0.0, buf.Duration())
}

func TestSliceClamps(t *testing.T) {
	buf := NewBuffer([]float64{0, 1, 2, 3, 4}, 10)

	s := buf.Slice(-3, 100)
	require.Equal(t, 5, s.Len())
	assert.Equal(t, buf.Samples(), s.Samples())

	s = buf.Slice(3, 2)
	assert.Equal(t, 0, s.Len())
}

func TestSliceIsCopy(t *testing.T) {
	buf := NewBuffer([]float64{0, 1, 2, 3, 4}, 10)
	s := buf.Slice(1, 3)

	require.Equal(t, []float64{1, 2}, s.Samples())
	assert.Equal(t, 10, s.SampleRate())
}

func TestSliceSecondsRoundTrip(t *testing.T) {
	samples := make([]float64, 4800)
	for i := range samples {
		samples[i] = float64(i%7) * 0.01
	}
	buf := NewBuffer(samples, 4800)

	s := buf.SliceSeconds(0, buf.Duration())
	require.Equal(t, buf.Len(), s.Len())
	assert.Equal(t, buf.Samples(), s.Samples())
}
