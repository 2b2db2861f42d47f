package config

import (
	"github.com/robokoder/processor/errors"
	"github.com/robokoder/processor/observability"
	"github.com/robokoder/processor/resilience"
	"github.com/robokoder/processor/validation"
)

// Config is the full configuration of a processor deployment: service
// settings, telemetry, and the declared chain.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Tracing    observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics    observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
	Processors []EntryConfig              `yaml:"processors" mapstructure:"processors" validate:"dive"`
}

// EntryConfig declares one chain entry. Kind selects the factory that builds
// the processor; Options are passed to that factory untouched.
type EntryConfig struct {
	Name     string         `yaml:"name" mapstructure:"name" validate:"required"`
	Kind     string         `yaml:"kind" mapstructure:"kind" validate:"required"`
	Priority *int           `yaml:"priority" mapstructure:"priority"`
	Disabled bool           `yaml:"disabled" mapstructure:"disabled"`
	Options  map[string]any `yaml:"options" mapstructure:"options"`

	// Retry wraps the built processor with retry when set.
	Retry *resilience.RetryConfig `yaml:"retry" mapstructure:"retry"`
}

// PriorityOr returns the declared priority or def when none was given.
func (e EntryConfig) PriorityOr(def int) int {
	if e.Priority == nil {
		return def
	}
	return *e.Priority
}

// ApplyDefaults fills defaults across all sections.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Tracing.ApplyDefaults(c.Name)
	c.Metrics.ApplyDefaults(c.Name)
	if c.Tracing.ServiceVersion == "" {
		c.Tracing.ServiceVersion = c.Version
	}
	if c.Metrics.ServiceVersion == "" {
		c.Metrics.ServiceVersion = c.Version
	}
	if c.Tracing.Environment == "" {
		c.Tracing.Environment = c.Environment
	}
	if c.Metrics.Environment == "" {
		c.Metrics.Environment = c.Environment
	}
}

// Validate checks struct tags and the service section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.ServiceConfig.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	return nil
}

// Enabled returns the entries not marked disabled, in declaration order.
func (c *Config) Enabled() []EntryConfig {
	out := make([]EntryConfig, 0, len(c.Processors))
	for _, e := range c.Processors {
		if !e.Disabled {
			out = append(out, e)
		}
	}
	return out
}
