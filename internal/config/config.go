package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SCHOOL_TRANSFORM"

// Config is the complete run configuration.
type Config struct {
	School  School  `yaml:"school" envconfig:"SCHOOL"`
	Flat    Flat    `yaml:"flat" envconfig:"FLAT"`
	Logging Logging `yaml:"logging" envconfig:"LOGGING"`
}

// School holds the school attributes written on roll-up.
type School struct {
	Name string `yaml:"name" envconfig:"NAME" validate:"required"`
	ID   string `yaml:"id" envconfig:"ID" validate:"required"`
}

// Flat controls how flat files are read and written.
type Flat struct {
	HasHeader bool   `yaml:"has_header" envconfig:"HAS_HEADER"`
	Sheet     string `yaml:"sheet" envconfig:"SHEET"`
}

// Logging controls the run logger.
type Logging struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		School: School{
			Name: "WGen School",
			ID:   "100",
		},
		Flat: Flat{
			HasHeader: true,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Override changes a loaded configuration before it is validated.
type Override func(*Config)

// Load builds the configuration from defaults, the YAML file at path (skipped when
// path is empty), a local .env file, the environment and finally overrides, then
// validates the result once.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	for _, override := range overrides {
		override(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks required values and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
