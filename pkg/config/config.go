// Package config handles loading and managing fsaw configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dir and FileName locate the project config: <project>/.fsaw/config.yaml.
const (
	Dir      = ".fsaw"
	FileName = "config.yaml"
)

// Environment variables that override file settings.
const (
	EnvLogLevel   = "FSAW_LOG_LEVEL"
	EnvOutput     = "FSAW_OUTPUT"
	EnvS3Endpoint = "FSAW_S3_ENDPOINT"
	EnvS3Region   = "FSAW_S3_REGION"
)

// Config is the top-level configuration for fsaw.
type Config struct {
	Workbook string        `yaml:"workbook"` // default workbook path or URI
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
	Share    ShareConfig   `yaml:"share"`
	Sources  SourcesConfig `yaml:"sources"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, markdown
	Color  bool   `yaml:"color"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// ShareConfig controls share links.
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// SourcesConfig configures remote workbook sources.
type SourcesConfig struct {
	S3  S3Config  `yaml:"s3"`
	GCS GCSConfig `yaml:"gcs"`
}

// S3Config configures the S3 fetcher. Empty keys fall back to the AWS
// default credential chain.
type S3Config struct {
	Region         string `yaml:"region"`
	Endpoint       string `yaml:"endpoint"` // custom endpoint for MinIO, R2
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	ForcePathStyle bool   `yaml:"force_path_style"`
}

// GCSConfig configures the GCS fetcher. Credentials come from ADC.
type GCSConfig struct {
	ProjectID string `yaml:"project_id"` // billed as the quota project when set
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Share: ShareConfig{
			BaseURL: "http://localhost:3000/fsaw-detection/interpretasi",
		},
		Sources: SourcesConfig{
			S3: S3Config{Region: "us-east-1"},
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "", "text", "terminal", "json", "markdown", "md":
	default:
		return fmt.Errorf("output.format %q: want text, json or markdown", c.Output.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q: want debug, info, warn or error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format %q: want console or json", c.Logging.Format)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := getenv(EnvOutput); v != "" {
		c.Output.Format = v
	}
	if v := getenv(EnvS3Endpoint); v != "" {
		c.Sources.S3.Endpoint = v
		c.Sources.S3.ForcePathStyle = true
	}
	if v := getenv(EnvS3Region); v != "" {
		c.Sources.S3.Region = v
	}
}

// FindConfigFile looks for .fsaw/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, Dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Resolve loads the config at path, or the nearest .fsaw/config.yaml above
// the working directory when path is empty, then applies env overrides.
func Resolve(path string) (*Config, error) {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = FindConfigFile(wd)
		}
	}

	cfg := DefaultConfig()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}
