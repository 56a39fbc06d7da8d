package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vocalens/vocalens/pkg/audio/common"
	"github.com/vocalens/vocalens/pkg/audio/config"
	"github.com/vocalens/vocalens/pkg/audio/feedback"
	"github.com/vocalens/vocalens/pkg/audio/segments"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Analysis parameters shared by every per-frame feature
	Analysis config.FeatureConfig `mapstructure:"analysis"`

	// Qualitative feedback thresholds
	Feedback feedback.Thresholds `mapstructure:"feedback"`

	// Segment tagging thresholds
	Segments segments.Thresholds `mapstructure:"segments"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision     int  `mapstructure:"precision"`
	IncludeSeries bool `mapstructure:"include_series"`
	Colors        bool `mapstructure:"colors"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	setDefaults(viper.GetViper())

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return cfg, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(cfg *Config) error {
	if cfg.Analysis.FrameSize <= 0 {
		return invalidConfig("analysis frame size must be positive")
	}

	if cfg.Analysis.HopSize <= 0 {
		return invalidConfig("analysis hop size must be positive")
	}

	if cfg.Analysis.HopSize > cfg.Analysis.FrameSize {
		return invalidConfig("hop size cannot exceed frame size")
	}

	if cfg.Analysis.FMin <= 0 || cfg.Analysis.FMax <= cfg.Analysis.FMin {
		return invalidConfig("pitch search range requires 0 < fmin < fmax")
	}

	if cfg.Analysis.YinThreshold <= 0 || cfg.Analysis.YinThreshold >= 1 {
		return invalidConfig("yin threshold must be between 0 and 1")
	}

	if cfg.Analysis.MFCCCoefficients <= 0 || cfg.Analysis.MFCCCoefficients > cfg.Analysis.MelFilters {
		return invalidConfig("mfcc coefficient count must be positive and at most the mel filter count")
	}

	if cfg.Analysis.MinExtendedDuration < 0 {
		return invalidConfig("minimum extended duration cannot be negative")
	}

	return nil
}

func invalidConfig(message string) error {
	return common.NewAnalysisError("config", common.ErrCodeInvalidConfig, message, nil)
}
