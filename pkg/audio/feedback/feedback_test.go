package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalens/vocalens/pkg/audio/features"
)

func TestFeedbackBands(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name string
		fs   features.FeatureSet
		want []string
	}{
		{
			name: "quiet low monotone",
			fs:   features.FeatureSet{RMSMean: 0.005, PitchMean: 90, ClarityMean: 0.1},
			want: []string{"quiet", "low-pitched", "clear"},
		},
		{
			name: "moderate stable midband",
			fs:   features.FeatureSet{RMSMean: 0.02, PitchMean: 180, ClarityMean: 0.3},
			want: []string{"moderate volume", "stable pitch"},
		},
		{
			name: "loud high muffled",
			fs:   features.FeatureSet{RMSMean: 0.05, PitchMean: 300, ClarityMean: 0.5},
			want: []string{"volume", "high-pitched", "muffled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrases := engine.Feedback(&tt.fs)
			require.Len(t, phrases, len(tt.want))
			for i, substr := range tt.want {
				assert.Contains(t, phrases[i], substr)
			}
		})
	}
}

func TestFeedbackClaritySilentInMiddleBand(t *testing.T) {
	engine := NewEngine(nil)

	fs := &features.FeatureSet{RMSMean: 0.02, PitchMean: 180, ClarityMean: 0.3}
	phrases := engine.Feedback(fs)

	// Volume and pitch always speak; clarity stays silent between the
	// clear and muffled cutoffs
	assert.Len(t, phrases, 2)
}

func TestFeedbackDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	fs := &features.FeatureSet{RMSMean: 0.02, PitchMean: 180, ClarityMean: 0.1}

	first := engine.Feedback(fs)
	second := engine.Feedback(fs)
	assert.Equal(t, first, second)
}

func TestComparativeWinners(t *testing.T) {
	engine := NewEngine(nil)

	a := &features.FeatureSet{RMSMean: 0.02, PitchStd: 20, ClarityMean: 0.3}
	b := &features.FeatureSet{RMSMean: 0.04, PitchStd: 10, ClarityMean: 0.2}

	phrases := engine.Comparative(a, b)
	require.Len(t, phrases, 3)
	assert.Equal(t, "Take B carries more volume.", phrases[0])
	assert.Equal(t, "Take B holds a steadier pitch.", phrases[1])
	assert.Equal(t, "Take B sounds clearer.", phrases[2])
}

func TestComparativeTiesFallToA(t *testing.T) {
	engine := NewEngine(nil)

	fs := &features.FeatureSet{RMSMean: 0.02, PitchStd: 15, ClarityMean: 0.3}
	phrases := engine.Comparative(fs, fs)

	require.Len(t, phrases, 3)
	assert.Equal(t, "Take A carries more volume.", phrases[0])
	assert.Equal(t, "Take A shows more pitch movement.", phrases[1])
	assert.Equal(t, "Take A sounds clearer.", phrases[2])
}
