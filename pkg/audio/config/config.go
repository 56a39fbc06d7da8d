package config

// FeatureConfig holds the analysis parameters shared by every per-frame
// feature so that RMS, pitch and clarity series stay frame-aligned
type FeatureConfig struct {
	FrameSize        int     `mapstructure:"frame_size"`
	HopSize          int     `mapstructure:"hop_size"`
	FMin             float64 `mapstructure:"fmin"`
	FMax             float64 `mapstructure:"fmax"`
	YinThreshold     float64 `mapstructure:"yin_threshold"`
	SilenceThreshold float64 `mapstructure:"silence_threshold"`
	SlopeFFTSize     int     `mapstructure:"slope_fft_size"`
	MFCCCoefficients int     `mapstructure:"mfcc_coefficients"`
	MelFilters       int     `mapstructure:"mel_filters"`

	// Minimum clip length in seconds before extended features
	// (MFCC stats, formants, spectral shape) are computed
	MinExtendedDuration float64 `mapstructure:"min_extended_duration"`

	// Added to sampleRate/1000 to obtain the LPC order
	LPCOrderOffset int `mapstructure:"lpc_order_offset"`
}

// DefaultFeatureConfig returns the canonical analysis parameters
func DefaultFeatureConfig() *FeatureConfig {
	return &FeatureConfig{
		FrameSize:           2048,
		HopSize:             512,
		FMin:                50.0,
		FMax:                500.0,
		YinThreshold:        0.1,
		SilenceThreshold:    0.01,
		SlopeFFTSize:        1024,
		MFCCCoefficients:    13,
		MelFilters:          40,
		MinExtendedDuration: 15.0,
		LPCOrderOffset:      2,
	}
}

// LPCOrder returns the linear-prediction order for a given sample rate
func (c *FeatureConfig) LPCOrder(sampleRate int) int {
	return sampleRate/1000 + c.LPCOrderOffset
}
