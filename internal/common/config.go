// -----------------------------------------------------------------------
// Configuration - TOML file loading with environment variable overrides
// -----------------------------------------------------------------------

package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the fluentdocs-mcp application configuration.
type Config struct {
	Environment string       `toml:"environment"` // "development" or "production"
	Logging     LoggingConfig `toml:"logging"`
	Docs        DocsConfig   `toml:"docs"`    // Documentation corpus configuration
	Search      SearchConfig `toml:"search"`  // Search/ranking tuning
	Reindex     ReindexConfig `toml:"reindex"` // Optional scheduled reindex
}

// LoggingConfig controls arbor logger setup. The MCP server only ever
// writes to stderr/file - stdout is reserved for the JSON-RPC stream.
type LoggingConfig struct {
	Level      string `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`    // "stderr", "file" (never "stdout")
	TimeFormat string `toml:"time_format"` // default: "15:04:05.000"
}

// DocsConfig describes the Markdown corpus the index builder walks.
type DocsConfig struct {
	Dir        string   `toml:"dir"`        // Root directory, e.g. "./docs"
	Extensions []string `toml:"extensions"` // File extensions to scan, default [".md"]
}

// SearchConfig tunes the TF-IDF search engine and default result limits.
type SearchConfig struct {
	DefaultLimit int `toml:"default_limit"` // Default search_docs limit (10)
	MaxLimit     int `toml:"max_limit"`     // Hard cap on search_docs limit (25)
}

// ReindexConfig optionally schedules a background reindex on a cron expression.
// Left empty, the corpus is only rebuilt on startup or via the reindex tool.
type ReindexConfig struct {
	Schedule string `toml:"schedule"` // Standard 5-field cron expression, empty disables
}

// NewDefaultConfig returns a configuration with sane defaults. Technical
// parameters are hardcoded here; only user-facing settings belong in
// fluentdocs.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:      "warn", // minimal logging to avoid cluttering MCP stdio
			Output:     []string{"stderr"},
			TimeFormat: "15:04:05.000",
		},
		Docs: DocsConfig{
			Dir:        "./docs",
			Extensions: []string{".md"},
		},
		Search: SearchConfig{
			DefaultLimit: 10,
			MaxLimit:     25,
		},
		Reindex: ReindexConfig{
			Schedule: "",
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// An empty path loads defaults plus environment overrides only.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			// Missing config file is fine - defaults + env apply.
		} else if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies FLUENTDOCS_* environment variables, which take
// precedence over both defaults and the config file.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FLUENTDOCS_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("FLUENTDOCS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("FLUENTDOCS_LOG_OUTPUT"); output != "" {
		config.Logging.Output = strings.Split(output, ",")
	}

	if dir := os.Getenv("FLUENTDOCS_DOCS_DIR"); dir != "" {
		config.Docs.Dir = dir
	}

	if limit := os.Getenv("FLUENTDOCS_SEARCH_DEFAULT_LIMIT"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			config.Search.DefaultLimit = l
		}
	}
	if limit := os.Getenv("FLUENTDOCS_SEARCH_MAX_LIMIT"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			config.Search.MaxLimit = l
		}
	}

	if schedule := os.Getenv("FLUENTDOCS_REINDEX_SCHEDULE"); schedule != "" {
		config.Reindex.Schedule = schedule
	}
}
