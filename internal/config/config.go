// Package config handles tool configuration loading and management.
package config

// Config holds all worldtool settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig holds default conversion parameters. Command-line flags
// override these per run.
type ConvertConfig struct {
	// ScaleFactor is the vertical span, in world units, covered by the full
	// 8-bit sample range.
	ScaleFactor float64 `yaml:"scale_factor"`
	// HeightOffset is the additive bias applied to every altitude.
	HeightOffset float64 `yaml:"height_offset"`
	// Smooth enables one box-filter pass after converting an image.
	Smooth bool `yaml:"smooth"`
	// Compress writes zstd-compressed world files.
	Compress bool `yaml:"compress"`
	// FitPowerOfTwo downscales non-conforming images before validation.
	FitPowerOfTwo bool `yaml:"fit_power_of_two"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			ScaleFactor:  1000.0,
			HeightOffset: -600.0,
			Smooth:       false,
			Compress:     false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
