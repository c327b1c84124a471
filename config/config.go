package config

import (
	"fmt"

	"github.com/DavidRaab/website-sub000/errors"
	"github.com/DavidRaab/website-sub000/logger"
	"github.com/DavidRaab/website-sub000/validation"
)

// ServiceName names the tool for file resolution and logging.
const ServiceName = "nextpost"

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "NEXTPOST"

// Config is the configuration of the nextpost tool.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Posts       PostsConfig   `yaml:"posts" mapstructure:"posts"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// PostsConfig describes where posts live and how their files are named.
type PostsConfig struct {
	// Dir is the directory holding numbered post files.
	Dir string `yaml:"dir" mapstructure:"dir" validate:"required"`
	// Extension is the post file extension, including the dot.
	Extension string `yaml:"extension" mapstructure:"extension" validate:"required,startswith=."`
	// Width is the zero-padded width of the post number.
	Width int `yaml:"width" mapstructure:"width" validate:"min=1,max=9"`
	// Metrics enables in-process pull metrics for the directory scan.
	Metrics bool `yaml:"metrics" mapstructure:"metrics"`
}

// Defaults returns the default values keyed by configuration path.
func Defaults() map[string]any {
	return map[string]any{
		"name":            ServiceName,
		"environment":     "development",
		"posts.dir":       "posts",
		"posts.extension": ".md",
		"posts.width":     4,
		"posts.metrics":   false,
		"logging.level":   "info",
		"logging.format":  "console",
		"logging.output":  "stderr",
	}
}

// ApplyDefaults fills empty fields that have no configuration default.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig("configuration is invalid", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(fmt.Sprintf("logging: %v", err), err)
	}
	return nil
}

// Load reads the nextpost configuration using the standard defaults, file
// locations and the NEXTPOST_ environment prefix, then validates it.
func Load(opts ...LoaderOption) (*Config, error) {
	base := []LoaderOption{WithDefaults(Defaults()), WithEnvPrefix(EnvPrefix)}
	cfg := &Config{}
	if err := LoadConfig(ServiceName, cfg, append(base, opts...)...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
