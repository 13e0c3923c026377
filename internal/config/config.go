package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
)

const configFileName = "conference_config.yaml"

// ErrConfigNotFound is returned by Load when no config file exists in either location
var ErrConfigNotFound = errors.New("config file not found in current directory or home directory")

// Config represents the application configuration
type Config struct {
	// MinimumConsecutiveTalksPauseInMinutes is the pause a speaker needs between two of their talks
	MinimumConsecutiveTalksPauseInMinutes int `yaml:"minimumConsecutiveTalksPauseInMinutes" validate:"min=0"`

	// UseRecommendedWeights starts from the recommended weight preset before applying Weights
	UseRecommendedWeights bool `yaml:"useRecommendedWeights"`

	// Weights maps constraint names to weights. Unknown names are reported and ignored.
	Weights map[string]int `yaml:"weights,omitempty" validate:"dive,min=0"`

	// CrowdControlPenalizeLoneTalks also penalizes a risky talk alone in its timeslot
	CrowdControlPenalizeLoneTalks bool `yaml:"crowdControlPenalizeLoneTalks"`

	// Concurrency bounds how many schedule documents are evaluated at once
	Concurrency int `yaml:"concurrency" validate:"min=1,max=256"`

	// MetricsFile is where evaluation metrics are written in Prometheus text format. Empty disables it.
	MetricsFile string `yaml:"metricsFile,omitempty"`

	LogDir string `yaml:"logDir" validate:"required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		MinimumConsecutiveTalksPauseInMinutes: scoring.DefaultMinimumConsecutiveTalksPauseInMinutes,
		Concurrency:                           4,
		LogDir:                                "logs",
	}
}

// Load loads and validates the configuration from conference_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields missing from the file keep their Default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// EffectiveWeights merges the recommended preset (when enabled) with the configured weights
func (c *Config) EffectiveWeights() map[string]int {
	weights := make(map[string]int)
	if c.UseRecommendedWeights {
		for name, weight := range scoring.RecommendedWeights() {
			weights[name] = weight
		}
	}
	for name, weight := range c.Weights {
		weights[name] = weight
	}
	return weights
}

// CalculatorOptions turns the configuration into calculator options
func (c *Config) CalculatorOptions() []scoring.Option {
	return []scoring.Option{
		scoring.WithWeights(c.EffectiveWeights()),
		scoring.WithMinimumConsecutiveTalksPause(c.MinimumConsecutiveTalksPauseInMinutes),
		scoring.WithCrowdControlLoneTalkPenalty(c.CrowdControlPenalizeLoneTalks),
	}
}

// findConfigFile searches for conference_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", ErrConfigNotFound
}
