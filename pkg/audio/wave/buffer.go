package wave

// Buffer is an immutable view over mono PCM samples at a fixed sample rate.
// Construction and slicing both copy, so no two buffers ever share backing
// storage; concurrent analyses can read the same Buffer freely.
type Buffer struct {
	samples    []float64
	sampleRate int
}

// NewBuffer creates a buffer from decoded mono samples. The input slice is
// copied; later mutation of it does not affect the buffer.
func NewBuffer(samples []float64, sampleRate int) *Buffer {
	owned := make([]float64, len(samples))
	copy(owned, samples)

	return &Buffer{
		samples:    owned,
		sampleRate: sampleRate,
	}
}

// SampleRate returns the buffer's sample rate in Hz
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// Len returns the number of samples
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Duration returns the buffer duration in seconds
func (b *Buffer) Duration() float64 {
	if b.sampleRate <= 0 {
		return 0
	}
	return float64(len(b.samples)) / float64(b.sampleRate)
}

// Samples returns the underlying sample slice. Callers must treat it as
// read-only; mutating it violates the buffer's immutability contract.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Slice returns a new buffer over [startSample, endSample). Out-of-range
// bounds are clamped rather than rejected so callers converting rounded
// times to sample indices never fail at the edges.
func (b *Buffer) Slice(startSample, endSample int) *Buffer {
	if startSample < 0 {
		startSample = 0
	}
	if endSample > len(b.samples) {
		endSample = len(b.samples)
	}
	if startSample > endSample {
		startSample = endSample
	}

	return NewBuffer(b.samples[startSample:endSample], b.sampleRate)
}

// SliceSeconds returns a new buffer over [start, end) expressed in seconds
func (b *Buffer) SliceSeconds(start, end float64) *Buffer {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return b.Slice(int(start*float64(b.sampleRate)), int(end*float64(b.sampleRate)))
}
