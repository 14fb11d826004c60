package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults used when no config file is given or a field is omitted
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8080
	DefaultPollIntervalMs = 500
	DefaultSettleDelayMs  = 200
	DefaultForce          = 500
	DefaultDiameter01MM   = 1000
	DefaultGripType       = "external"
)

// Config is the panel configuration loaded from a YAML file
type Config struct {
	Device DeviceConfig `yaml:"device"`
	Poll   PollConfig   `yaml:"poll"`
	Params ParamsConfig `yaml:"defaults"`
}

// DeviceConfig locates the control service
type DeviceConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// PollConfig tunes the synchronization loop
type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	SettleMs   int `yaml:"settle_ms"`
}

// ParamsConfig provides initial values for the parameter inputs
type ParamsConfig struct {
	Force        int    `yaml:"force"`
	Diameter01MM int    `yaml:"diameter_01mm"`
	GripType     string `yaml:"grip_type"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Device: DeviceConfig{Host: DefaultHost, Port: DefaultPort},
		Poll:   PollConfig{IntervalMs: DefaultPollIntervalMs, SettleMs: DefaultSettleDelayMs},
		Params: ParamsConfig{Force: DefaultForce, Diameter01MM: DefaultDiameter01MM, GripType: DefaultGripType},
	}
}

// Load reads the configuration from path. An empty path or a missing file
// yields the defaults without error; a present but unreadable or invalid
// file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	Normalize(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Normalize fills omitted fields with defaults. It is allowed to mutate
// configuration and MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Device.Host == "" {
		cfg.Device.Host = DefaultHost
	}
	if cfg.Device.Port == 0 {
		cfg.Device.Port = DefaultPort
	}
	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = DefaultPollIntervalMs
	}
	if cfg.Poll.SettleMs == 0 {
		cfg.Poll.SettleMs = DefaultSettleDelayMs
	}
	if cfg.Params.GripType == "" {
		cfg.Params.GripType = DefaultGripType
	}
}

// Validate checks configuration correctness. It performs declarative
// validation only and MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Device.Port < 1 || cfg.Device.Port > 65535 {
		return fmt.Errorf("device port %d out of range 1-65535", cfg.Device.Port)
	}
	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll interval_ms must be >= 0")
	}
	if cfg.Poll.SettleMs < 0 {
		return fmt.Errorf("poll settle_ms must be >= 0")
	}
	if cfg.Params.Force < 0 || cfg.Params.Force > 1000 {
		return fmt.Errorf("default force %d out of range 0-1000", cfg.Params.Force)
	}
	if cfg.Params.Diameter01MM < 0 {
		return fmt.Errorf("default diameter must be >= 0")
	}
	if cfg.Params.GripType != "external" && cfg.Params.GripType != "internal" {
		return fmt.Errorf("default grip_type %q must be external or internal", cfg.Params.GripType)
	}
	return nil
}

// PollInterval returns the poll cadence as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalMs) * time.Millisecond
}

// SettleDelay returns the post-command settle delay as a duration
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Poll.SettleMs) * time.Millisecond
}
