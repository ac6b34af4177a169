package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultName      = "erm"
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Name      string
	LogLevel  string
	LogFormat string
	Employees []EmployeeConfig
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Name      string           `yaml:"name"`
	Logging   yamlLogging      `yaml:"logging"`
	Employees []EmployeeConfig `yaml:"employees"`
}

// yamlLogging represents the logging section in YAML.
type yamlLogging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	Name       *string
	LogLevel   *string
	LogFormat  *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Name:      defaultName,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Name != "" {
		cfg.Name = yamlCfg.Name
	}

	if yamlCfg.Logging.Level != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.Logging.Level)
	}

	if yamlCfg.Logging.Format != "" {
		cfg.LogFormat = strings.ToLower(yamlCfg.Logging.Format)
	}

	if len(yamlCfg.Employees) > 0 {
		cfg.Employees = yamlCfg.Employees
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if name := strings.TrimSpace(os.Getenv("ERM_NAME")); name != "" {
		cfg.Name = name
	}

	if level := strings.TrimSpace(os.Getenv("ERM_LOG_LEVEL")); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if format := strings.TrimSpace(os.Getenv("ERM_LOG_FORMAT")); format != "" {
		cfg.LogFormat = strings.ToLower(format)
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Name != nil && *overrides.Name != "" {
		cfg.Name = *overrides.Name
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*overrides.LogLevel)
	}

	if overrides.LogFormat != nil && *overrides.LogFormat != "" {
		cfg.LogFormat = strings.ToLower(*overrides.LogFormat)
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("log level must be one of %v, got %q", validLogLevels, cfg.LogLevel)
	}
	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		return fmt.Errorf("log format must be one of %v, got %q", validLogFormats, cfg.LogFormat)
	}
	for i, entry := range cfg.Employees {
		if err := entry.validate(); err != nil {
			return fmt.Errorf("employees[%d]: %w", i, err)
		}
	}
	return nil
}
