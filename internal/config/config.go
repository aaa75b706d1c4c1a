// Package config holds the patternbook configuration: where the corpus and
// state live, how snippets are interpreted, how documents are rendered.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all patternbook configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Corpus location
	Docs DocsConfig `yaml:"docs"`

	// Snippet interpretation
	Runner RunnerConfig `yaml:"runner"`

	// Search index
	Index IndexConfig `yaml:"index"`

	// Terminal rendering
	Render RenderConfig `yaml:"render"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DocsConfig locates the corpus. An empty Dir means the embedded corpus.
type DocsConfig struct {
	Dir string `yaml:"dir"`
}

// RunnerConfig configures the snippet interpreter.
type RunnerConfig struct {
	// Timeout per snippet, as a duration string.
	Timeout string `yaml:"timeout"`
	// ExtraPackages extends the import whitelist.
	ExtraPackages []string `yaml:"extra_packages"`
}

// IndexConfig configures the search index.
type IndexConfig struct {
	// Path of the SQLite database. Empty = <state-dir>/index.db.
	Path string `yaml:"path"`
}

// RenderConfig configures glamour output.
type RenderConfig struct {
	Style string `yaml:"style"` // auto, dark, light, notty
	Wrap  int    `yaml:"wrap"`  // word-wrap column, 0 = default
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Categories map[string]bool `yaml:"categories"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "patternbook",
		Version: "1.0.0",
		Runner: RunnerConfig{
			Timeout: "10s",
		},
		Render: RenderConfig{
			Style: "auto",
			Wrap:  100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// StateDir returns the directory holding config, logs and the index.
// PATTERNBOOK_STATE_DIR overrides the default under the home directory.
func StateDir() string {
	if dir := os.Getenv("PATTERNBOOK_STATE_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".patternbook"
	}
	return filepath.Join(home, ".patternbook")
}

// Path returns the config file location under the state dir.
func Path() string {
	return filepath.Join(StateDir(), "config.yaml")
}

// Load reads the config file at path, applying defaults for anything unset
// and environment overrides on top. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides layers environment variables over the file values.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("PATTERNBOOK_DOCS_DIR"); dir != "" {
		c.Docs.Dir = dir
	}
	if timeout := os.Getenv("PATTERNBOOK_RUNNER_TIMEOUT"); timeout != "" {
		c.Runner.Timeout = timeout
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Render.Style = "notty"
	}
}

// Validate checks values that would otherwise fail deep inside a subsystem.
func (c *Config) Validate() error {
	if _, err := c.RunnerTimeout(); err != nil {
		return fmt.Errorf("runner.timeout: %w", err)
	}
	switch c.Render.Style {
	case "", "auto", "dark", "light", "notty", "dracula", "ascii":
	default:
		return fmt.Errorf("render.style: unknown style %q", c.Render.Style)
	}
	if c.Render.Wrap < 0 {
		return fmt.Errorf("render.wrap: must be >= 0, got %d", c.Render.Wrap)
	}
	return nil
}

// RunnerTimeout parses the per-snippet timeout.
func (c *Config) RunnerTimeout() (time.Duration, error) {
	if c.Runner.Timeout == "" {
		return 10 * time.Second, nil
	}
	return time.ParseDuration(c.Runner.Timeout)
}

// IndexPath resolves the search index location.
func (c *Config) IndexPath() string {
	if c.Index.Path != "" {
		return c.Index.Path
	}
	return filepath.Join(StateDir(), "index.db")
}
