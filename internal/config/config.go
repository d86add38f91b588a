// Package config holds the settings for the dataframe shell.
//
// Values are read from an optional YAML file in which ${VAR} references are
// replaced by environment variables, then missing fields fall back to
// defaults and the result is validated before anything else starts.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Ingest  IngestConfig  `yaml:"ingest"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`
}

// IngestConfig controls how delimited files are read
type IngestConfig struct {
	// BatchSize is the number of row slots added each time a table grows (default: 5000)
	BatchSize int `yaml:"batch_size"`

	// MaxColumns is the largest header accepted (default: 1000)
	MaxColumns int `yaml:"max_columns"`

	// MaxRows caps the number of data rows; 0 means unlimited
	MaxRows int `yaml:"max_rows"`

	// MaxColumnName truncates header names to this many characters (default: 30)
	MaxColumnName int `yaml:"max_column_name"`

	// DefaultSeparator is used when load/add omit one (default: ",")
	DefaultSeparator string `yaml:"default_separator"`
}

// SessionConfig controls the interactive session
type SessionConfig struct {
	ViewRows     int    `yaml:"view_rows"`      // default row count for view (default: 10)
	TablePrefix  string `yaml:"table_prefix"`   // loaded tables are named <prefix><n> (default: df)
	MaxTableName int    `yaml:"max_table_name"` // limit for the name command (default: 50)
}

// LoggingConfig controls slog output
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `yaml:"level"`

	// SeqURL enables the Seq sink when non-empty
	SeqURL string `yaml:"seq_url"`

	SeqBatchSize     int           `yaml:"seq_batch_size"`
	SeqFlushInterval time.Duration `yaml:"seq_flush_interval"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Ingest: IngestConfig{
			BatchSize:        5000,
			MaxColumns:       1000,
			MaxColumnName:    30,
			DefaultSeparator: ",",
		},
		Session: SessionConfig{
			ViewRows:     10,
			TablePrefix:  "df",
			MaxTableName: 50,
		},
		Logging: LoggingConfig{
			Level:            "info",
			SeqBatchSize:     1,
			SeqFlushInterval: 500 * time.Millisecond,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	content := substituteEnvVars(string(raw))
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills zero values left by a partial file
func (c *Config) applyDefaults() {
	d := Default()
	if c.Ingest.BatchSize == 0 {
		c.Ingest.BatchSize = d.Ingest.BatchSize
	}
	if c.Ingest.MaxColumns == 0 {
		c.Ingest.MaxColumns = d.Ingest.MaxColumns
	}
	if c.Ingest.MaxColumnName == 0 {
		c.Ingest.MaxColumnName = d.Ingest.MaxColumnName
	}
	if c.Ingest.DefaultSeparator == "" {
		c.Ingest.DefaultSeparator = d.Ingest.DefaultSeparator
	}
	if c.Session.ViewRows == 0 {
		c.Session.ViewRows = d.Session.ViewRows
	}
	if c.Session.TablePrefix == "" {
		c.Session.TablePrefix = d.Session.TablePrefix
	}
	if c.Session.MaxTableName == 0 {
		c.Session.MaxTableName = d.Session.MaxTableName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.SeqBatchSize == 0 {
		c.Logging.SeqBatchSize = d.Logging.SeqBatchSize
	}
	if c.Logging.SeqFlushInterval == 0 {
		c.Logging.SeqFlushInterval = d.Logging.SeqFlushInterval
	}
}

// Validate checks all settings and reports every problem at once
func (c *Config) Validate() error {
	var errs []string

	if c.Ingest.BatchSize < 1 {
		errs = append(errs, "ingest.batch_size must be at least 1")
	}
	if c.Ingest.MaxColumns < 1 {
		errs = append(errs, "ingest.max_columns must be at least 1")
	}
	if c.Ingest.MaxRows < 0 {
		errs = append(errs, "ingest.max_rows must not be negative")
	}
	if c.Ingest.MaxColumnName < 1 {
		errs = append(errs, "ingest.max_column_name must be at least 1")
	}
	if len(c.Ingest.DefaultSeparator) != 1 {
		errs = append(errs, "ingest.default_separator must be a single character")
	}
	if c.Session.ViewRows < 1 {
		errs = append(errs, "session.view_rows must be at least 1")
	}
	if c.Session.MaxTableName < 1 {
		errs = append(errs, "session.max_table_name must be at least 1")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Separator returns the default separator as a byte
func (c *Config) Separator() byte {
	return c.Ingest.DefaultSeparator[0]
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		content = content[:start] + os.Getenv(varName) + content[end+1:]
	}
	return content
}
