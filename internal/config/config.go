package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "kecktod/internal/errors"
)

// Config is the complete configuration for the todinfo tooling. The
// library API takes explicit arguments; only the command-line surface
// reads this.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// PathsConfig contains file-system configuration.
type PathsConfig struct {
	// DataDir is the prefix under which tag directories live. Empty
	// means each tag directory is resolved from the tag name alone.
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load reads configuration from environment variables (prefix KECKTOD)
// and, when present, a YAML config file. Environment values win over
// file values.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("KECKTOD", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("file", configFile)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// configFilePath returns the config file location, overridable via
// KECKTOD_CONFIG.
func configFilePath() string {
	if path := os.Getenv("KECKTOD_CONFIG"); path != "" {
		return path
	}
	return "kecktod.yml"
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays env values onto file values; env wins where both
// are set.
func mergeConfigs(fileCfg, envCfg Config) Config {
	merged := fileCfg

	if envCfg.Paths.DataDir != "" {
		merged.Paths.DataDir = envCfg.Paths.DataDir
	}
	if envCfg.Logging.Level != "" {
		merged.Logging.Level = envCfg.Logging.Level
	}
	if envCfg.Logging.Format != "" {
		merged.Logging.Format = envCfg.Logging.Format
	}
	if envCfg.Logging.Output != "" {
		merged.Logging.Output = envCfg.Logging.Output
	}
	if envCfg.Logging.FilePath != "" {
		merged.Logging.FilePath = envCfg.Logging.FilePath
	}

	return merged
}

// applyDefaults fills unset logging values. Defaults live here rather
// than in envconfig tags so that file values are distinguishable from
// unset environment values during the merge.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/kecktod.log"
	}
}

// validate checks the configuration for invalid values.
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return apperrors.NewConfigError(
			fmt.Sprintf("invalid logging level %q", c.Logging.Level), nil)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return apperrors.NewConfigError(
			fmt.Sprintf("invalid logging format %q", c.Logging.Format), nil)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return apperrors.NewConfigError(
			fmt.Sprintf("invalid logging output %q", c.Logging.Output), nil)
	}

	return nil
}
