package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nonexistent.yaml"))

	// Explicit path to a missing file must fail.
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_EnvOnly(t *testing.T) {
	// No CONFIG_PATH and no ./config.yaml in the test working directory,
	// so Load falls back to ENV + defaults.
	t.Setenv("CONFIG_PATH", "")
	os.Unsetenv("CONFIG_PATH")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "/graphql", cfg.GraphQL.Path)
	assert.Equal(t, "/graphiql", cfg.GraphQL.PlaygroundPath)
	assert.True(t, cfg.GraphQL.PlaygroundEnabled)
	assert.Equal(t, "./static", cfg.Static.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("GRAPHQL_PLAYGROUND_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.False(t, cfg.GraphQL.PlaygroundEnabled)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  port: 5001\ngraphql:\n  path: /api/graphql\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "/api/graphql", cfg.GraphQL.Path)
	// Untouched sections still get defaults.
	assert.Equal(t, "./static", cfg.Static.Dir)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 4000},
			GraphQL: GraphQLConfig{Path: "/graphql", PlaygroundPath: "/graphiql"},
			Static:  StaticConfig{Dir: "./static"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "graphql path without slash",
			mutate:  func(c *Config) { c.GraphQL.Path = "graphql" },
			wantErr: "graphql.path",
		},
		{
			name:    "playground path collides",
			mutate:  func(c *Config) { c.GraphQL.PlaygroundPath = "/graphql" },
			wantErr: "must differ",
		},
		{
			name:    "empty static dir",
			mutate:  func(c *Config) { c.Static.Dir = "  " },
			wantErr: "static.dir",
		},
		{
			name: "rate limit enabled without rpm",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = true
				c.RateLimit.RequestsPerMinute = 0
			},
			wantErr: "requests_per_minute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
