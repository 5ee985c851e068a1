package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty file uses defaults",
			yaml: ``,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
				assert.Equal(t, "finn-client", cfg.API.UserAgent)
				assert.Equal(t, 30*time.Second, cfg.API.Timeout)
				assert.InDelta(t, 5.0, cfg.API.RateLimit.PerSecond, 0.0001)
				assert.Equal(t, 10, cfg.API.RateLimit.Burst)
				assert.Equal(t, int64(0), cfg.API.RateLimit.DailyLimit)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
				assert.False(t, cfg.Tracing.Enabled)
				assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
				assert.Equal(t, "finn-client", cfg.Tracing.ServiceName)
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0.0001)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
api:
  headers:
    x-FINN-apikey: "${TEST_FINN_API_KEY}"
`,
			envVars: map[string]string{
				"TEST_FINN_API_KEY": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.API.Headers["x-FINN-apikey"])
			},
		},
		{
			name: "relative base url",
			yaml: `
api:
  base_url: /iad/
`,
			wantErr: "api.base_url must be an absolute http(s) URL",
		},
		{
			name: "unsupported base url scheme",
			yaml: `
api:
  base_url: ftp://cache.api.finn.no/iad/
`,
			wantErr: "api.base_url must be an absolute http(s) URL",
		},
		{
			name: "negative daily limit",
			yaml: `
api:
  rate_limit:
    daily_limit: -1
`,
			wantErr: "api.rate_limit.daily_limit must not be negative",
		},
		{
			name: "negative rate",
			yaml: `
api:
  rate_limit:
    per_second: -2
`,
			wantErr: "api.rate_limit.per_second must not be negative",
		},
		{
			name: "port out of range",
			yaml: `
server:
  port: 70000
`,
			wantErr: "server.port must be between 1 and 65535 (got 70000)",
		},
		{
			name: "sample ratio out of range",
			yaml: `
tracing:
  enabled: true
  sample_ratio: 1.5
`,
			wantErr: "tracing.sample_ratio must be within [0, 1]",
		},
		{
			name: "invalid logging level",
			yaml: `
logging:
  level: trace
`,
			wantErr: `logging.level must be one of: debug, info, warn, error (got "trace")`,
		},
		{
			name: "invalid logging format",
			yaml: `
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
api:
  base_url: http://localhost:9090/iad
  user_agent: finn-test/2.0
  headers:
    x-FINN-apikey: abc
  timeout: 5s
  rate_limit:
    per_second: 1.5
    burst: 3
    daily_limit: 2000
server:
  host: "127.0.0.1"
  port: 9091
  read_timeout: 10s
  write_timeout: 20s
tracing:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  service_name: finn-proxy
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "http://localhost:9090/iad", cfg.API.BaseURL)
				assert.Equal(t, "finn-test/2.0", cfg.API.UserAgent)
				assert.Equal(t, map[string]string{"x-FINN-apikey": "abc"}, cfg.API.Headers)
				assert.Equal(t, 5*time.Second, cfg.API.Timeout)
				assert.InDelta(t, 1.5, cfg.API.RateLimit.PerSecond, 0.0001)
				assert.Equal(t, 3, cfg.API.RateLimit.Burst)
				assert.Equal(t, int64(2000), cfg.API.RateLimit.DailyLimit)
				assert.Equal(t, "127.0.0.1:9091", cfg.Server.Addr())
				assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
				assert.True(t, cfg.Tracing.Enabled)
				assert.True(t, cfg.Tracing.Insecure)
				assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
				assert.Equal(t, "finn-proxy", cfg.Tracing.ServiceName)
				assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 0.0001)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Server.Port = -1
	cfg.Logging.Format = "xml"
	cfg.API.RateLimit.Burst = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "api.rate_limit.burst must be at least 1")
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ServerConfig
		want string
	}{
		{name: "ipv4", cfg: ServerConfig{Host: "0.0.0.0", Port: 8080}, want: "0.0.0.0:8080"},
		{name: "ipv6", cfg: ServerConfig{Host: "::1", Port: 9000}, want: "[::1]:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.Addr())
		})
	}
}
