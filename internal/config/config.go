// Package config loads agent configuration from defaults, an optional
// config file, and ALVEA_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire agent configuration.
type Config struct {
	Agent  AgentConfig  `mapstructure:"agent"  yaml:"agent"`
	Poll   PollConfig   `mapstructure:"poll"   yaml:"poll"`
	Serve  ServeConfig  `mapstructure:"serve"  yaml:"serve"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// AgentConfig identifies the hosting application.
type AgentConfig struct {
	// SelfName is matched (case-insensitive substring) against each root
	// element's owning app to exclude the agent's own UI from tracking.
	SelfName string `mapstructure:"self_name" yaml:"self_name"`
}

// PollConfig controls the accessibility polling loop.
type PollConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// ServeConfig controls the MCP command surface.
type ServeConfig struct {
	Transport string `mapstructure:"transport" yaml:"transport"`
	Port      int    `mapstructure:"port"      yaml:"port"`
}

// LoggerConfig controls structured logging output.
type LoggerConfig struct {
	Level      string `mapstructure:"level"       yaml:"level"`
	Format     string `mapstructure:"format"      yaml:"format"`
	LogFile    string `mapstructure:"log_file"    yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size"    yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"     yaml:"max_age"`
	Compress   bool   `mapstructure:"compress"    yaml:"compress"`
}

// SetDefaults initializes default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("agent.self_name", "alvea")

	v.SetDefault("poll.interval", "200ms")

	v.SetDefault("serve.transport", "stdio")
	v.SetDefault("serve.port", 8080)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)
}

// Load reads configuration from the optional file path, the environment,
// and defaults, in increasing priority of env > file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("ALVEA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// NewDefaultConfig returns a configuration populated with defaults only.
func NewDefaultConfig() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("default config must load: %v", err))
	}
	return cfg
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Agent.SelfName == "" {
		return fmt.Errorf("agent.self_name must not be empty")
	}
	if c.Poll.Interval <= 0 {
		return fmt.Errorf("poll.interval must be positive")
	}
	switch c.Serve.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("serve.transport must be stdio or streamable-http, got %q", c.Serve.Transport)
	}
	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be in 1..65535")
	}
	return nil
}
