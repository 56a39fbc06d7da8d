package feedback

import (
	"github.com/vocalens/vocalens/pkg/audio/features"
)

// NoAnomalies is returned when no extended-feature rule fires
const NoAnomalies = "No notable acoustic anomalies detected."

// ExtendedThresholds holds the cutoffs for the extended-feature rules
type ExtendedThresholds struct {
	F1Upper       float64 `mapstructure:"f1_upper"`
	F2Lower       float64 `mapstructure:"f2_lower"`
	DarkCentroid  float64 `mapstructure:"dark_centroid"`
	CrispCentroid float64 `mapstructure:"crisp_centroid"`
	NarrowBand    float64 `mapstructure:"narrow_band"`
	SteepSlope    float64 `mapstructure:"steep_slope"`
	NoisyFlatness float64 `mapstructure:"noisy_flatness"`
}

// DefaultExtendedThresholds returns the canonical extended cutoffs
func DefaultExtendedThresholds() ExtendedThresholds {
	return ExtendedThresholds{
		F1Upper:       800.0,
		F2Lower:       1000.0,
		DarkCentroid:  1200.0,
		CrispCentroid: 2500.0,
		NarrowBand:    300.0,
		SteepSlope:    -10.0,
		NoisyFlatness: 0.85,
	}
}

// Natural evaluates the extended-feature rule table. Rules fire
// independently and each appends one observation; when none fires, the
// NoAnomalies sentinel is the sole entry. The formant rule only runs when
// both F1 and F2 were found, so missing formants pass silently.
func (e *Engine) Natural(ext *features.ExtendedFeatures) []string {
	t := e.thresholds.Extended
	observations := make([]string, 0, 6)

	if ext.F1 != nil && ext.F2 != nil {
		if *ext.F1 > t.F1Upper || *ext.F2 < t.F2Lower {
			observations = append(observations,
				"Vowel articulation looks weak; pronunciation may sound muffled.")
		}
	}

	switch {
	case ext.CentroidMean < t.DarkCentroid:
		observations = append(observations,
			"The spectral balance gives the voice a dark, muffled impression.")
	case ext.CentroidMean > t.CrispCentroid:
		observations = append(observations,
			"The spectral balance suggests a bright, crisp voice.")
	}

	if ext.BandwidthMean < t.NarrowBand {
		observations = append(observations,
			"Narrow spectral spread; the timbre may sound monotonous.")
	}

	if ext.Slope < t.SteepSlope {
		observations = append(observations,
			"High frequencies fall off steeply; the voice may lack presence.")
	}

	if ext.FlatnessMean > t.NoisyFlatness {
		observations = append(observations,
			"Little harmonic content; the signal trends noise-like.")
	}

	if len(observations) == 0 {
		return []string{NoAnomalies}
	}

	return observations
}
