// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultPort          = 8080
	DefaultLogMode       = "production"
	DefaultReportTimeout = "30s"
)

// Config is loaded from a JSON or YAML file and the environment.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port           int      `json:"port,omitempty" yaml:"port,omitempty"`                       // HTTP listen port
	DatabaseURL    string   `json:"database_url,omitempty" yaml:"database_url,omitempty"`       // PostgreSQL connection URL; empty disables persistence
	LogMode        string   `json:"log_mode,omitempty" yaml:"log_mode,omitempty"`               // development or production
	ChromePath     string   `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`         // Chrome binary for PDF reports
	ReportTimeout  string   `json:"report_timeout,omitempty" yaml:"report_timeout,omitempty"`   // Go duration, e.g. "30s"
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"` // CORS origins; empty allows any
	MindsetSeed    uint64   `json:"mindset_seed,omitempty" yaml:"mindset_seed,omitempty"`       // Fixed seed for mindset shift selection; 0 is random
	Verbose        bool     `json:"verbose,omitempty" yaml:"verbose,omitempty"`                 // Print detailed debug information
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv builds a Config from PORT, DATABASE_URL, LOG_MODE, CHROME_PATH and REPORT_TIMEOUT.
// Unset variables leave fields empty so the result can be merged over file values.
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogMode:       os.Getenv("LOG_MODE"),
		ChromePath:    os.Getenv("CHROME_PATH"),
		ReportTimeout: os.Getenv("REPORT_TIMEOUT"),
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: PORT must be an integer: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	switch c.LogMode {
	case "", "development", "production":
	default:
		return fmt.Errorf("config error: 'log_mode' must be development or production, got %q", c.LogMode)
	}
	if c.ReportTimeout != "" {
		d, err := time.ParseDuration(c.ReportTimeout)
		if err != nil {
			return fmt.Errorf("config error: 'report_timeout' is not a duration: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'report_timeout' must be positive")
		}
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Bool fields are not merged since unset cannot be told apart from false.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.ReportTimeout == "" {
		result.ReportTimeout = defaults.ReportTimeout
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}
	if result.MindsetSeed == 0 {
		result.MindsetSeed = defaults.MindsetSeed
	}

	return result
}

// Builtin returns the built-in defaults.
func Builtin() Config {
	return Config{
		Port:          DefaultPort,
		LogMode:       DefaultLogMode,
		ReportTimeout: DefaultReportTimeout,
	}
}

// Resolve layers the environment over the file config (if path is set) over the built-in defaults.
func Resolve(path string) (Config, error) {
	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	file := Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		file = *loaded
	}
	merged := env.MergeWithDefaults(file.MergeWithDefaults(Builtin()))
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// ReportTimeoutDuration parses ReportTimeout, falling back to the default when empty.
func (c *Config) ReportTimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.ReportTimeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultReportTimeout)
	return d
}
