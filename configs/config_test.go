package configs

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalens/vocalens/pkg/audio/common"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.OutputFormat)

	assert.Equal(t, 2048, cfg.Analysis.FrameSize)
	assert.Equal(t, 512, cfg.Analysis.HopSize)
	assert.Equal(t, 50.0, cfg.Analysis.FMin)
	assert.Equal(t, 500.0, cfg.Analysis.FMax)
	assert.Equal(t, 0.1, cfg.Analysis.YinThreshold)
	assert.Equal(t, 15.0, cfg.Analysis.MinExtendedDuration)

	assert.Equal(t, 0.01, cfg.Feedback.QuietRMS)
	assert.Equal(t, 0.03, cfg.Feedback.LoudRMS)
	assert.Equal(t, 110.0, cfg.Feedback.LowPitch)
	assert.Equal(t, 250.0, cfg.Feedback.HighPitch)
	assert.Equal(t, 800.0, cfg.Feedback.Extended.F1Upper)
	assert.Equal(t, 2500.0, cfg.Feedback.Extended.CrispCentroid)
	assert.Equal(t, 0.85, cfg.Feedback.Extended.NoisyFlatness)

	assert.Equal(t, 2.5, cfg.Segments.SlowRate)
	assert.Equal(t, 5.0, cfg.Segments.FastRate)
	assert.Equal(t, 30.0, cfg.Segments.PauseHeavyPct)

	assert.Equal(t, 3, cfg.Output.Precision)

	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfigOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("analysis.frame_size", 1024)
	viper.Set("feedback.loud_rms", 0.05)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Analysis.FrameSize)
	assert.Equal(t, 0.05, cfg.Feedback.LoudRMS)
	// Untouched keys keep their defaults
	assert.Equal(t, 512, cfg.Analysis.HopSize)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		viper.Reset()
		cfg, err := LoadConfig()
		require.NoError(t, err)
		return cfg
	}
	defer viper.Reset()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frame size", func(c *Config) { c.Analysis.FrameSize = 0 }},
		{"zero hop size", func(c *Config) { c.Analysis.HopSize = 0 }},
		{"hop larger than frame", func(c *Config) { c.Analysis.HopSize = 4096 }},
		{"inverted pitch range", func(c *Config) { c.Analysis.FMax = 40 }},
		{"yin threshold too large", func(c *Config) { c.Analysis.YinThreshold = 1.5 }},
		{"mfcc exceeds filters", func(c *Config) { c.Analysis.MFCCCoefficients = 100 }},
		{"negative extended duration", func(c *Config) { c.Analysis.MinExtendedDuration = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			require.Error(t, err)
			assert.True(t, common.IsCode(err, common.ErrCodeInvalidConfig))
		})
	}
}
