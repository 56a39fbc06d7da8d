package segments

import (
	"encoding/json"
	"os"

	"github.com/vocalens/vocalens/pkg/audio/common"
)

// Segment is one time-aligned transcript segment as supplied by a
// Whisper-style transcription engine. The engine is trusted to emit
// non-overlapping, time-ordered segments with start <= end; the scorer
// only clamps times into the clip, it does not re-validate ordering.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the engine's full output for one clip
type Transcript struct {
	Segments []Segment `json:"segments"`
	Language string    `json:"language,omitempty"`
}

// LoadTranscript reads a transcript JSON file
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewAnalysisError("transcript", common.ErrCodeDecoding,
			"could not read transcript file", err)
	}

	var transcript Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, common.NewAnalysisError("transcript", common.ErrCodeDecoding,
			"could not parse transcript JSON", err)
	}

	return &transcript, nil
}
