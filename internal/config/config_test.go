package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "alvea", cfg.Agent.SelfName)
	assert.Equal(t, 200*time.Millisecond, cfg.Poll.Interval)
	assert.Equal(t, "stdio", cfg.Serve.Transport)
	assert.Equal(t, 8080, cfg.Serve.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
agent:
  self_name: myapp
poll:
  interval: 500ms
serve:
  transport: streamable-http
  port: 9000
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "myapp", cfg.Agent.SelfName)
	assert.Equal(t, 500*time.Millisecond, cfg.Poll.Interval)
	assert.Equal(t, "streamable-http", cfg.Serve.Transport)
	assert.Equal(t, 9000, cfg.Serve.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ALVEA_AGENT_SELF_NAME", "envapp")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "envapp", cfg.Agent.SelfName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty self name",
			mutate:  func(c *Config) { c.Agent.SelfName = "" },
			wantErr: "self_name",
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Poll.Interval = 0 },
			wantErr: "interval",
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Poll.Interval = -time.Second },
			wantErr: "interval",
		},
		{
			name:    "unknown transport",
			mutate:  func(c *Config) { c.Serve.Transport = "grpc" },
			wantErr: "transport",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Serve.Port = 70000 },
			wantErr: "port",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
