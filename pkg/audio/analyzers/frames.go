package analyzers

// Framing rule shared by every per-frame analysis: frames start at multiples
// of the hop size and only full frames are produced; the trailing partial
// frame is dropped. This keeps the RMS, pitch and clarity series the same
// length for any given buffer, frame size and hop size.

// NumFrames returns the number of full hop-aligned frames in n samples
func NumFrames(n, frameSize, hopSize int) int {
	if frameSize <= 0 || hopSize <= 0 || n < frameSize {
		return 0
	}
	return 1 + (n-frameSize)/hopSize
}

// Frame returns the i-th full frame of the signal
func Frame(signal []float64, i, frameSize, hopSize int) []float64 {
	start := i * hopSize
	return signal[start : start+frameSize]
}
