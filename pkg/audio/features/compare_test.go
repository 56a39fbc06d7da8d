package features

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalens/vocalens/pkg/audio/wave"
)

func TestCompareIdenticalTakes(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	buf := wave.NewBuffer(genSine(150, 16000, 5.0, 0.5), 16000)

	fs, err := analyzer.Analyze(context.Background(), buf)
	require.NoError(t, err)

	results := Compare(fs, fs)
	require.Len(t, results, 5)

	wantOrder := []string{"duration", "rms_mean", "pitch_mean", "pitch_std", "clarity_mean"}
	for i, r := range results {
		assert.Equal(t, wantOrder[i], r.MetricName)
		assert.Equal(t, r.ValueA, r.ValueB)
		if r.ValueA != 0 {
			require.NotNil(t, r.PercentDelta, "%s delta should be defined", r.MetricName)
			assert.InDelta(t, 0.0, *r.PercentDelta, 1e-9)
			assert.Contains(t, r.Formatted, "+0.0%")
		}
	}
}

func TestComparePercentDelta(t *testing.T) {
	a := &FeatureSet{Duration: 10, RMSMean: 0.02, PitchMean: 100, PitchStd: 10, ClarityMean: 0.2}
	b := &FeatureSet{Duration: 10, RMSMean: 0.03, PitchMean: 150, PitchStd: 5, ClarityMean: 0.2}

	results := Compare(a, b)
	byName := map[string]ComparisonResult{}
	for _, r := range results {
		byName[r.MetricName] = r
	}

	require.NotNil(t, byName["rms_mean"].PercentDelta)
	assert.InDelta(t, 50.0, *byName["rms_mean"].PercentDelta, 1e-9)

	require.NotNil(t, byName["pitch_std"].PercentDelta)
	assert.InDelta(t, -50.0, *byName["pitch_std"].PercentDelta, 1e-9)
}

func TestCompareZeroBaseline(t *testing.T) {
	a := &FeatureSet{}
	b := &FeatureSet{Duration: 5, RMSMean: 0.02, PitchMean: 150, PitchStd: 12, ClarityMean: 0.3}

	for _, r := range Compare(a, b) {
		assert.Nil(t, r.PercentDelta, "%s delta is undefined at a zero baseline", r.MetricName)
		assert.Contains(t, r.Formatted, "(n/a)")
	}
}

func TestCompareFormatted(t *testing.T) {
	a := &FeatureSet{Duration: 1.0, RMSMean: 0.02, PitchMean: 150, PitchStd: 10, ClarityMean: 0.25}
	b := &FeatureSet{Duration: 2.0, RMSMean: 0.02, PitchMean: 150, PitchStd: 10, ClarityMean: 0.25}

	results := Compare(a, b)
	assert.Equal(t, "1.00s → 2.00s (+100.0%)", results[0].Formatted)
}
