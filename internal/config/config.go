package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/consolidator/internal/pattern"
	"github.com/harrison/consolidator/internal/report"
)

// CredentialsEnv overrides the GCS credentials from the config file. A value
// starting with "{" is treated as service account JSON, anything else as a
// path to a credentials file.
const CredentialsEnv = "CONSOLIDATOR_GCS_CREDENTIALS"

// GCSConfig represents Google Cloud Storage access settings
type GCSConfig struct {
	// CredentialsFile is a path to a service account key file
	CredentialsFile string `yaml:"credentials_file"`

	// CredentialsJSON is an inline service account key
	CredentialsJSON string `yaml:"credentials_json"`

	// Endpoint overrides the storage API endpoint (emulators)
	Endpoint string `yaml:"endpoint"`
}

// Config represents consolidator configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs will be written
	// (empty = logs under the consolidator home directory)
	LogDir string `yaml:"log_dir"`

	// Strategy selects the consolidation algorithm (greedy, components)
	Strategy pattern.Strategy `yaml:"strategy"`

	// Format selects the report format (text, json, yaml, markdown, html)
	Format string `yaml:"format"`

	// GCS contains bucket listing configuration
	GCS GCSConfig `yaml:"gcs"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		LogDir:   "",
		Strategy: pattern.StrategyGreedy,
		Format:   string(report.FormatText),
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
// CONSOLIDATOR_GCS_CREDENTIALS is applied last in both cases.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = normalizeLogLevel(fileCfg.LogLevel)
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.Strategy != "" {
		cfg.Strategy = fileCfg.Strategy
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.GCS.CredentialsFile != "" {
		cfg.GCS.CredentialsFile = fileCfg.GCS.CredentialsFile
	}
	if fileCfg.GCS.CredentialsJSON != "" {
		cfg.GCS.CredentialsJSON = fileCfg.GCS.CredentialsJSON
	}
	if fileCfg.GCS.Endpoint != "" {
		cfg.GCS.Endpoint = fileCfg.GCS.Endpoint
	}

	cfg.applyEnv()
	return cfg, nil
}

// normalizeLogLevel accepts levels in any case and with surrounding spaces.
func normalizeLogLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

func (c *Config) applyEnv() {
	creds := strings.TrimSpace(os.Getenv(CredentialsEnv))
	if creds == "" {
		return
	}
	if strings.HasPrefix(creds, "{") {
		c.GCS.CredentialsJSON = creds
		c.GCS.CredentialsFile = ""
		return
	}
	c.GCS.CredentialsFile = creds
	c.GCS.CredentialsJSON = ""
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel, logDir, strategy, format *string) {
	if logLevel != nil {
		c.LogLevel = normalizeLogLevel(*logLevel)
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if strategy != nil {
		c.Strategy = pattern.Strategy(*strategy)
	}
	if format != nil {
		c.Format = *format
	}
}

// ResolveLogDir returns LogDir, or the logs directory under the consolidator
// home when LogDir is empty.
func (c *Config) ResolveLogDir() (string, error) {
	if c.LogDir != "" {
		return c.LogDir, nil
	}
	return GetLogDir()
}

// PatternConfig returns the consolidation settings.
func (c *Config) PatternConfig() pattern.Config {
	return pattern.Config{Strategy: c.Strategy}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	pc := c.PatternConfig()
	if err := pc.Validate(); err != nil {
		return err
	}

	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}

	if c.GCS.CredentialsFile != "" && c.GCS.CredentialsJSON != "" {
		return fmt.Errorf("gcs.credentials_file and gcs.credentials_json are mutually exclusive")
	}

	return nil
}
