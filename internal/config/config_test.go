package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"port": 9090,
		"database_url": "postgres://localhost/quiz",
		"log_mode": "development",
		"allowed_origins": ["https://runmvmt.example"],
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/quiz", cfg.DatabaseURL)
	assert.Equal(t, "development", cfg.LogMode)
	assert.Equal(t, []string{"https://runmvmt.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
port: 7070
report_timeout: 45s
mindset_seed: 42
allowed_origins:
  - https://a.example
  - https://b.example
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "45s", cfg.ReportTimeout)
	assert.Equal(t, uint64(42), cfg.MindsetSeed)
	assert.Len(t, cfg.AllowedOrigins, 2)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "config.json", `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "config.yml", "port: [unclosed"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Port: 8080, LogMode: "development", ReportTimeout: "10s"}, ""},
		{"empty is valid", Config{}, ""},
		{"port out of range", Config{Port: 70000}, "port"},
		{"negative port", Config{Port: -1}, "port"},
		{"bad log mode", Config{LogMode: "loud"}, "log_mode"},
		{"bad timeout", Config{ReportTimeout: "soon"}, "report_timeout"},
		{"zero timeout", Config{ReportTimeout: "0s"}, "must be positive"},
		{"missing chrome", Config{ChromePath: "/nonexistent/chrome"}, "chrome binary not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:          8080,
		LogMode:       "production",
		ReportTimeout: "30s",
		DatabaseURL:   "postgres://default",
	}

	partial := Config{
		Port:    9000,
		LogMode: "development",
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "development", merged.LogMode)
	assert.Equal(t, "30s", merged.ReportTimeout)
	assert.Equal(t, "postgres://default", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Port: 1234}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, Config{Port: 1234}, merged)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("LOG_MODE", "development")
	t.Setenv("CHROME_PATH", "")
	t.Setenv("REPORT_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, "development", cfg.LogMode)
	assert.Equal(t, "5s", cfg.ReportTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "PORT must be an integer")
	})
}

func TestResolve(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_MODE", "development")
	t.Setenv("CHROME_PATH", "")
	t.Setenv("REPORT_TIMEOUT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	path := writeFile(t, "config.yaml", "port: 9191\nlog_mode: production\n")
	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "development", cfg.LogMode, "environment wins over file")
	assert.Equal(t, DefaultReportTimeout, cfg.ReportTimeout)
	assert.Equal(t, 30*time.Second, cfg.ReportTimeoutDuration())

	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}
