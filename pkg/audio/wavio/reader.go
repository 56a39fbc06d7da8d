package wavio

import (
	"errors"
	"math"
	"os"

	"github.com/go-audio/wav"

	"github.com/vocalens/vocalens/pkg/audio/common"
	"github.com/vocalens/vocalens/pkg/audio/wave"
	"github.com/vocalens/vocalens/pkg/logging"
)

// ReadFile decodes a WAV file into a mono waveform buffer with samples
// normalized to [-1, 1]. Multi-channel audio is averaged down to mono so
// the analysis core only ever sees a pre-mixed signal.
func ReadFile(path string) (*wave.Buffer, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "wav_reader",
		"path":      path,
	})

	file, err := os.Open(path)
	if err != nil {
		return nil, common.NewAnalysisError("decode", common.ErrCodeDecoding,
			"could not open audio file", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, common.NewAnalysisError("decode", common.ErrCodeDecoding,
			"not a valid WAV file", errors.New("invalid RIFF/WAVE header"))
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, common.NewAnalysisError("decode", common.ErrCodeDecoding,
			"could not read PCM data", err)
	}

	numChannels := buf.Format.NumChannels
	if numChannels <= 0 {
		numChannels = 1
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = int(decoder.BitDepth)
	}
	scale := math.Pow(2, float64(bitDepth-1))

	numFrames := len(buf.Data) / numChannels
	samples := make([]float64, numFrames)
	for i := range numFrames {
		sum := 0.0
		for ch := range numChannels {
			sum += float64(buf.Data[i*numChannels+ch])
		}
		samples[i] = sum / float64(numChannels) / scale
	}

	logger.Debug("Decoded WAV file", logging.Fields{
		"sample_rate": buf.Format.SampleRate,
		"channels":    numChannels,
		"bit_depth":   bitDepth,
		"frames":      numFrames,
	})

	return wave.NewBuffer(samples, buf.Format.SampleRate), nil
}
