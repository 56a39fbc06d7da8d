package segments

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalens/vocalens/pkg/audio/wave"
)

func toneBuffer(freq float64, sampleRate int, duration, amplitude float64) *wave.Buffer {
	n := int(duration * float64(sampleRate))
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return wave.NewBuffer(signal, sampleRate)
}

func TestScoreSegmentSlowRate(t *testing.T) {
	scorer := NewScorer(nil, nil)
	buf := toneBuffer(150, 16000, 2.0, 0.5)

	metric := scorer.ScoreSegment(buf, Segment{Start: 0, End: 2, Text: "a b c d"})

	assert.Equal(t, 4, metric.WordCount)
	assert.InDelta(t, 2.0, metric.SpeechRate, 1e-9)
	assert.Contains(t, metric.Tags, "slow")
	assert.InDelta(t, 150.0, metric.F0Mean, 3.0)
	assert.Equal(t, 0.0, metric.PauseRatio)
}

func TestScoreSegmentFastRate(t *testing.T) {
	scorer := NewScorer(nil, nil)
	buf := toneBuffer(150, 16000, 1.0, 0.5)

	metric := scorer.ScoreSegment(buf, Segment{Start: 0, End: 1, Text: "a b c d e f"})

	assert.InDelta(t, 6.0, metric.SpeechRate, 1e-9)
	assert.Contains(t, metric.Tags, "fast")
}

func TestScoreSegmentSilenceIsPauseHeavy(t *testing.T) {
	scorer := NewScorer(nil, nil)
	buf := wave.NewBuffer(make([]float64, 2*16000), 16000)

	metric := scorer.ScoreSegment(buf, Segment{Start: 0, End: 2, Text: "quiet part"})

	assert.Equal(t, 100.0, metric.PauseRatio)
	assert.Contains(t, metric.Tags, "pause-heavy")
	assert.Contains(t, metric.Tags, "monotone")
	assert.Equal(t, 0.0, metric.RMSMean)
}

func TestScoreSegmentZeroDuration(t *testing.T) {
	scorer := NewScorer(nil, nil)
	buf := toneBuffer(150, 16000, 2.0, 0.5)

	metric := scorer.ScoreSegment(buf, Segment{Start: 1, End: 1, Text: "hello"})

	assert.Equal(t, 1, metric.WordCount)
	assert.Equal(t, 0.0, metric.SpeechRate)
	assert.Equal(t, 0.0, metric.F0Mean)
}

func TestScoreSegmentClampsTimes(t *testing.T) {
	scorer := NewScorer(nil, nil)
	buf := toneBuffer(150, 16000, 2.0, 0.5)

	metric := scorer.ScoreSegment(buf, Segment{Start: -1, End: 100, Text: "a b c"})

	// Clamped to the 2s clip; the reported times keep the transcript values
	assert.Equal(t, -1.0, metric.Start)
	assert.Equal(t, 100.0, metric.End)
	assert.InDelta(t, 150.0, metric.F0Mean, 3.0)
}

func TestTagFallbackStable(t *testing.T) {
	scorer := NewScorer(nil, nil)

	tags := scorer.tag(Metric{SpeechRate: 3.5, F0Std: 20, PauseRatio: 10})
	assert.Equal(t, []string{"stable"}, tags)
}

func TestTagMultiple(t *testing.T) {
	scorer := NewScorer(nil, nil)

	tags := scorer.tag(Metric{SpeechRate: 1.0, F0Std: 5, PauseRatio: 50})
	assert.Equal(t, []string{"slow", "monotone", "pause-heavy"}, tags)
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 4, countWords("a b c d"))
	assert.Equal(t, 0, countWords(""))
	assert.Equal(t, 0, countWords("   "))
	assert.Equal(t, 2, countWords("こんにちは　世界"))
	assert.Equal(t, 3, countWords("  spaced   out words  "))
}

func TestScoreAllSegments(t *testing.T) {
	scorer := NewScorer(nil, nil)
	buf := toneBuffer(150, 16000, 4.0, 0.5)

	transcript := &Transcript{
		Segments: []Segment{
			{Start: 0, End: 2, Text: "first part"},
			{Start: 2, End: 4, Text: "second part"},
		},
	}

	metrics := scorer.Score(buf, transcript)
	require.Len(t, metrics, 2)
	assert.Equal(t, "first part", metrics[0].Text)
	assert.Equal(t, "second part", metrics[1].Text)
}
