package configs

import (
	"github.com/spf13/viper"
)

// setDefaults sets default configuration values for all components. Every
// analysis threshold lives here as a named, overridable value.
func setDefaults(v *viper.Viper) {
	// Application defaults
	if !v.IsSet("verbose") {
		v.Set("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
	if !v.IsSet("output_format") {
		v.Set("output_format", "text")
	}

	// Analysis framing and estimation defaults
	if !v.IsSet("analysis.frame_size") {
		v.Set("analysis.frame_size", 2048)
	}
	if !v.IsSet("analysis.hop_size") {
		v.Set("analysis.hop_size", 512)
	}
	if !v.IsSet("analysis.fmin") {
		v.Set("analysis.fmin", 50.0)
	}
	if !v.IsSet("analysis.fmax") {
		v.Set("analysis.fmax", 500.0)
	}
	if !v.IsSet("analysis.yin_threshold") {
		v.Set("analysis.yin_threshold", 0.1)
	}
	if !v.IsSet("analysis.silence_threshold") {
		v.Set("analysis.silence_threshold", 0.01)
	}
	if !v.IsSet("analysis.slope_fft_size") {
		v.Set("analysis.slope_fft_size", 1024)
	}
	if !v.IsSet("analysis.mfcc_coefficients") {
		v.Set("analysis.mfcc_coefficients", 13)
	}
	if !v.IsSet("analysis.mel_filters") {
		v.Set("analysis.mel_filters", 40)
	}
	if !v.IsSet("analysis.min_extended_duration") {
		v.Set("analysis.min_extended_duration", 15.0)
	}
	if !v.IsSet("analysis.lpc_order_offset") {
		v.Set("analysis.lpc_order_offset", 2)
	}

	// Qualitative feedback thresholds
	if !v.IsSet("feedback.quiet_rms") {
		v.Set("feedback.quiet_rms", 0.01)
	}
	if !v.IsSet("feedback.loud_rms") {
		v.Set("feedback.loud_rms", 0.03)
	}
	if !v.IsSet("feedback.low_pitch") {
		v.Set("feedback.low_pitch", 110.0)
	}
	if !v.IsSet("feedback.high_pitch") {
		v.Set("feedback.high_pitch", 250.0)
	}
	if !v.IsSet("feedback.clear_limit") {
		v.Set("feedback.clear_limit", 0.2)
	}
	if !v.IsSet("feedback.muffled_limit") {
		v.Set("feedback.muffled_limit", 0.4)
	}

	// Extended-feature feedback thresholds
	if !v.IsSet("feedback.extended.f1_upper") {
		v.Set("feedback.extended.f1_upper", 800.0)
	}
	if !v.IsSet("feedback.extended.f2_lower") {
		v.Set("feedback.extended.f2_lower", 1000.0)
	}
	if !v.IsSet("feedback.extended.dark_centroid") {
		v.Set("feedback.extended.dark_centroid", 1200.0)
	}
	if !v.IsSet("feedback.extended.crisp_centroid") {
		v.Set("feedback.extended.crisp_centroid", 2500.0)
	}
	if !v.IsSet("feedback.extended.narrow_band") {
		v.Set("feedback.extended.narrow_band", 300.0)
	}
	if !v.IsSet("feedback.extended.steep_slope") {
		v.Set("feedback.extended.steep_slope", -10.0)
	}
	if !v.IsSet("feedback.extended.noisy_flatness") {
		v.Set("feedback.extended.noisy_flatness", 0.85)
	}

	// Segment tagging thresholds
	if !v.IsSet("segments.slow_rate") {
		v.Set("segments.slow_rate", 2.5)
	}
	if !v.IsSet("segments.fast_rate") {
		v.Set("segments.fast_rate", 5.0)
	}
	if !v.IsSet("segments.monotone_f0_std") {
		v.Set("segments.monotone_f0_std", 15.0)
	}
	if !v.IsSet("segments.expressive_f0_std") {
		v.Set("segments.expressive_f0_std", 30.0)
	}
	if !v.IsSet("segments.pause_heavy_pct") {
		v.Set("segments.pause_heavy_pct", 30.0)
	}

	// Output defaults
	if !v.IsSet("output.precision") {
		v.Set("output.precision", 3)
	}
	if !v.IsSet("output.include_series") {
		v.Set("output.include_series", false)
	}
	if !v.IsSet("output.colors") {
		v.Set("output.colors", true)
	}
}
