package config

import (
	"time"

	"github.com/kbukum/extkit/logger"
	"github.com/kbukum/extkit/pipeline"
	"github.com/kbukum/extkit/strutil"
	"github.com/kbukum/extkit/validation"
)

// AppName names the config file, .env file and logger service of the CLI.
const AppName = "extkit"

// Config is the extkit CLI configuration.
//
//	base:
//	  environment: production
//	logging:
//	  level: debug
//	zip:
//	  policy: pad
//	  separator: ","
//	  padding_marker: "-"
//	text:
//	  ellipsis: "~"
//	  width: 40
//	telemetry:
//	  enabled: true
//	  endpoint: collector:4318
type Config struct {
	Base      BaseConfig      `yaml:"base" mapstructure:"base"`
	Logging   logger.Config   `yaml:"logging" mapstructure:"logging"`
	Zip       ZipConfig       `yaml:"zip" mapstructure:"zip"`
	Text      TextConfig      `yaml:"text" mapstructure:"text"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ZipConfig configures the zip command.
type ZipConfig struct {
	Policy        string `yaml:"policy" mapstructure:"policy" validate:"oneof=truncate shortest pad longest fail even"`
	Separator     string `yaml:"separator" mapstructure:"separator"`
	PaddingMarker string `yaml:"padding_marker" mapstructure:"padding_marker"`
}

// ImbalancePolicy parses Policy.
func (c ZipConfig) ImbalancePolicy() (pipeline.ImbalancePolicy, error) {
	return pipeline.ParsePolicy(c.Policy)
}

// TextConfig configures the truncate command.
type TextConfig struct {
	Ellipsis string `yaml:"ellipsis" mapstructure:"ellipsis"`
	Width    int    `yaml:"width" mapstructure:"width" validate:"gte=0"`
}

// TelemetryConfig configures OTLP export of traces and metrics.
type TelemetryConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// Defaults returns the loader defaults for every key Config reads.
func Defaults() map[string]any {
	return map[string]any{
		"base.name":             AppName,
		"base.environment":      "development",
		"logging.level":         "info",
		"logging.format":        "console",
		"logging.output":        "stderr",
		"zip.policy":            pipeline.Truncate.String(),
		"zip.separator":         "\t",
		"text.ellipsis":         strutil.Ellipsis,
		"text.width":            80,
		"telemetry.endpoint":    "localhost:4318",
		"telemetry.insecure":    true,
		"telemetry.sample_rate": 1.0,
		"telemetry.interval":    "15s",
	}
}

// ApplyDefaults fills anything the loader left empty.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.Zip.Policy == "" {
		c.Zip.Policy = pipeline.Truncate.String()
	}
	if c.Zip.Separator == "" {
		c.Zip.Separator = "\t"
	}
	if c.Text.Ellipsis == "" {
		c.Text.Ellipsis = strutil.Ellipsis
	}
	if c.Text.Width == 0 {
		c.Text.Width = 80
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.Interval == 0 {
		c.Telemetry.Interval = 15 * time.Second
	}
}

// Validate checks struct tags first and then the cross-field rules.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := validation.New().
		Custom(!c.Telemetry.Enabled || c.Telemetry.Endpoint != "", "telemetry.endpoint", "is required when telemetry is enabled").
		Validate(); err != nil {
		return err
	}
	return nil
}

// Load resolves, loads, defaults and validates the CLI configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	opts = append([]LoaderOption{WithDefaults(Defaults())}, opts...)
	var cfg Config
	if err := LoadConfig(AppName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
