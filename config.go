package paramselect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ineyio/paramselect/policy"
)

// Fallback names what happens when none of a parameter's preferences is offered.
type Fallback string

const (
	FallbackNone  Fallback = "none"
	FallbackFirst Fallback = "first"
)

// Config is a preference profile: an ordered list of parameters to resolve.
type Config struct {
	Parameters []ParameterConfig `yaml:"parameters"`
}

// ParameterConfig configures the selection for one parameter.
type ParameterConfig struct {
	Name     string   `yaml:"name"`
	Prefer   []string `yaml:"prefer"`
	Fallback Fallback `yaml:"fallback"`
	Required bool     `yaml:"required"`
}

// LoadConfig reads and parses a YAML config file.
// Environment variables in the format ${VAR} are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("paramselect: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config data.
func ParseConfig(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("paramselect: parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the config for required fields and consistency.
func (c Config) Validate() error {
	if len(c.Parameters) == 0 {
		return fmt.Errorf("%w: at least one parameter is required", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(c.Parameters))
	for i, p := range c.Parameters {
		if p.Name == "" {
			return fmt.Errorf("%w: parameters[%d]: name is required", ErrInvalidConfig, i)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate parameter %q", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true

		switch p.Fallback {
		case "", FallbackNone, FallbackFirst:
		default:
			return fmt.Errorf("%w: parameters[%d] (%s): invalid fallback %q", ErrInvalidConfig, i, p.Name, p.Fallback)
		}

		if len(p.Prefer) == 0 && p.Fallback != FallbackFirst {
			return fmt.Errorf("%w: parameters[%d] (%s): prefer is empty and fallback is not %q", ErrInvalidConfig, i, p.Name, FallbackFirst)
		}
	}

	return nil
}

// Selector builds the selector described by p: its preferences in order,
// then the fallback.
func (p ParameterConfig) Selector() Selector[string] {
	var fallback Selector[string] = Nothing[string]()
	if p.Fallback == FallbackFirst {
		fallback = policy.First[string]()
	}
	return FirstAvailable(FirstAvailableOf(p.Prefer...), fallback)
}
