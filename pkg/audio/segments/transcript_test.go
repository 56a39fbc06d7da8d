package segments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalens/vocalens/pkg/audio/common"
)

func TestLoadTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")
	data := `{
		"language": "en",
		"segments": [
			{"start": 0.0, "end": 2.5, "text": "hello there"},
			{"start": 2.5, "end": 4.0, "text": "second line"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	transcript, err := LoadTranscript(path)
	require.NoError(t, err)

	assert.Equal(t, "en", transcript.Language)
	require.Len(t, transcript.Segments, 2)
	assert.Equal(t, 0.0, transcript.Segments[0].Start)
	assert.Equal(t, 2.5, transcript.Segments[0].End)
	assert.Equal(t, "hello there", transcript.Segments[0].Text)
}

func TestLoadTranscriptMissingFile(t *testing.T) {
	_, err := LoadTranscript(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.ErrCodeDecoding))
}

func TestLoadTranscriptInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadTranscript(path)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.ErrCodeDecoding))
}
