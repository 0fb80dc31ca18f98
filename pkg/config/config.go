// Package config provides configuration loading for the gateway console.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"
)

// Gateway schedule-anytime delay bounds, in milliseconds.
const (
	// MinimumGatewayScheduleAnytimeDelay is the lower bound the Gateway
	// Server enforces. Shorter delays are replaced by this value.
	MinimumGatewayScheduleAnytimeDelay = 1000

	// DefaultGatewayScheduleAnytimeDelay is the delay used when none is set.
	DefaultGatewayScheduleAnytimeDelay = 530
)

// Configuration errors.
var (
	ErrInvalidMinimumDelay = errors.New("minimum schedule anytime delay must be positive")
	ErrInvalidDefaultDelay = errors.New("default schedule anytime delay must not be negative")
	ErrEmptyStorePath      = errors.New("store path must not be empty")
)

// Config represents the complete console configuration.
type Config struct {
	Delays Delays      `yaml:"delays"`
	Store  StoreConfig `yaml:"store"`
	Log    LogConfig   `yaml:"log"`
}

// Delays holds the gateway delay constants injected into the settings form.
type Delays struct {
	// MinimumScheduleAnytime is the delay below which the form warns.
	MinimumScheduleAnytime Duration `yaml:"minimum_schedule_anytime"`

	// DefaultScheduleAnytime is applied when the form has no delay value.
	DefaultScheduleAnytime Duration `yaml:"default_schedule_anytime"`
}

// MinimumMs returns the minimum delay in milliseconds.
func (d Delays) MinimumMs() float64 {
	return float64(d.MinimumScheduleAnytime) / float64(time.Millisecond)
}

// DefaultMs returns the default delay in milliseconds.
func (d Delays) DefaultMs() float64 {
	return float64(d.DefaultScheduleAnytime) / float64(time.Millisecond)
}

// StoreConfig configures the gateway settings store.
type StoreConfig struct {
	// Path is the JSON document holding gateway settings.
	Path string `yaml:"path"`
}

// LogConfig configures operational and form activity logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Events is an optional path for the CBOR form activity log (.flog).
	Events string `yaml:"events"`
}

// Duration is a time.Duration that unmarshals from human-readable strings
// such as "1s", "530ms" or "1d".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := str2duration.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return str2duration.String(time.Duration(d)), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DefaultDelays returns the Gateway Server's delay bounds.
func DefaultDelays() Delays {
	return Delays{
		MinimumScheduleAnytime: Duration(MinimumGatewayScheduleAnytimeDelay * time.Millisecond),
		DefaultScheduleAnytime: Duration(DefaultGatewayScheduleAnytimeDelay * time.Millisecond),
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Delays: DefaultDelays(),
		Store: StoreConfig{
			Path: "./gateways.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	if c.Delays.MinimumScheduleAnytime <= 0 {
		errs = append(errs, ErrInvalidMinimumDelay)
	}
	if c.Delays.DefaultScheduleAnytime < 0 {
		errs = append(errs, ErrInvalidDefaultDelay)
	}
	if c.Store.Path == "" {
		errs = append(errs, ErrEmptyStorePath)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration on top of DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
