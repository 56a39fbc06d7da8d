package feedback

import (
	"github.com/vocalens/vocalens/pkg/audio/features"
)

// Thresholds holds the cutoffs for the qualitative feedback rules. The
// extended-feature cutoffs ride along so one injected struct configures
// both rule tables.
type Thresholds struct {
	QuietRMS     float64 `mapstructure:"quiet_rms"`
	LoudRMS      float64 `mapstructure:"loud_rms"`
	LowPitch     float64 `mapstructure:"low_pitch"`
	HighPitch    float64 `mapstructure:"high_pitch"`
	ClearLimit   float64 `mapstructure:"clear_limit"`
	MuffledLimit float64 `mapstructure:"muffled_limit"`

	Extended ExtendedThresholds `mapstructure:"extended"`
}

// DefaultThresholds returns the canonical feedback cutoffs
func DefaultThresholds() *Thresholds {
	return &Thresholds{
		QuietRMS:     0.01,
		LoudRMS:      0.03,
		LowPitch:     110.0,
		HighPitch:    250.0,
		ClearLimit:   0.2,
		MuffledLimit: 0.4,
		Extended:     DefaultExtendedThresholds(),
	}
}

// Engine evaluates threshold rules into qualitative phrases. It is a pure
// function of its inputs: the same FeatureSet always produces the same
// phrases in the same order.
type Engine struct {
	thresholds *Thresholds
}

// NewEngine creates a feedback engine; nil selects the default thresholds.
// A thresholds struct that leaves the extended table zeroed gets the
// default extended cutoffs filled in.
func NewEngine(thresholds *Thresholds) *Engine {
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	if thresholds.Extended == (ExtendedThresholds{}) {
		thresholds.Extended = DefaultExtendedThresholds()
	}
	return &Engine{thresholds: thresholds}
}

// Feedback maps a FeatureSet through the threshold table into phrases, in
// fixed metric order: volume, pitch, clarity. Volume and pitch always
// contribute a phrase; clarity is silent in the middle band between
// ClearLimit and MuffledLimit.
func (e *Engine) Feedback(fs *features.FeatureSet) []string {
	t := e.thresholds
	phrases := make([]string, 0, 3)

	switch {
	case fs.RMSMean < t.QuietRMS:
		phrases = append(phrases, "Volume is on the quiet side; the voice may be hard to hear.")
	case fs.RMSMean > t.LoudRMS:
		phrases = append(phrases, "Plenty of volume; the delivery comes across as forceful.")
	default:
		phrases = append(phrases, "Speaking at a moderate volume.")
	}

	switch {
	case fs.PitchMean < t.LowPitch:
		phrases = append(phrases, "The voice sits relatively low-pitched.")
	case fs.PitchMean > t.HighPitch:
		phrases = append(phrases, "The voice sits relatively high-pitched.")
	default:
		phrases = append(phrases, "The voice holds a stable pitch.")
	}

	switch {
	case fs.ClarityMean < t.ClearLimit:
		phrases = append(phrases, "Speech is clear and easy to follow.")
	case fs.ClarityMean > t.MuffledLimit:
		phrases = append(phrases, "The voice may come across as somewhat muffled.")
	}

	return phrases
}

// Comparative produces the qualitative A/B sentences. Each rule picks
// exactly one winner; ties fall to the A side, the same directional
// default as the else branches above, so identical takes still get
// deterministic wording rather than a neutral "no difference".
func (e *Engine) Comparative(a, b *features.FeatureSet) []string {
	phrases := make([]string, 0, 3)

	if b.RMSMean > a.RMSMean {
		phrases = append(phrases, "Take B carries more volume.")
	} else {
		phrases = append(phrases, "Take A carries more volume.")
	}

	if b.PitchStd < a.PitchStd {
		phrases = append(phrases, "Take B holds a steadier pitch.")
	} else {
		phrases = append(phrases, "Take A shows more pitch movement.")
	}

	// Lower flatness reads as clearer
	if b.ClarityMean < a.ClarityMean {
		phrases = append(phrases, "Take B sounds clearer.")
	} else {
		phrases = append(phrases, "Take A sounds clearer.")
	}

	return phrases
}
