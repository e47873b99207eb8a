package config

import "github.com/kbukum/extkit/validation"

// BaseConfig contains the fields every extkit tool carries.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

var validEnvironments = []string{"development", "staging", "production"}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "extkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	if err := validation.New().
		Required("base.name", c.Name).
		OneOf("base.environment", c.Environment, validEnvironments).
		Validate(); err != nil {
		return err
	}
	return nil
}
