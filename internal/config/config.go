package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"justact/internal/telemetry"
)

// Config holds all justact configuration: logging, the optional mangle
// explain-adapter's bounds, the scenario runner's defaults, and the
// optional trace store.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Logging configures the categorized file logger (internal/telemetry).
	Logging LoggingConfig `yaml:"logging"`

	// Policy holds policy fact-limit and query-timeout settings; nothing
	// reads them beyond Validate.
	Policy PolicyConfig `yaml:"policy"`

	// Scenario holds scenario runner settings; cmd/justact run does not read
	// them (it uses its own --watch and --timeout flags).
	Scenario ScenarioConfig `yaml:"scenario"`

	// TraceStore configures optional SQLite trace archival.
	TraceStore TraceStoreConfig `yaml:"trace_store" json:"trace_store,omitempty"`
}

// ScenarioConfig holds scenario runner defaults; no caller reads them.
type ScenarioConfig struct {
	DefaultTimeout string `yaml:"default_timeout"`
	Watch          bool   `yaml:"watch"`
}

// TraceStoreConfig configures internal/tracestore's SQLite archive.
type TraceStoreConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled,omitempty"`
	Path    string `yaml:"path" json:"path,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "justact",
		Version: "0.1.0",

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "justact.log",
		},

		Policy: PolicyConfig{
			FactLimit:    1000000,
			QueryTimeout: "30s",
		},

		Scenario: ScenarioConfig{
			DefaultTimeout: "30s",
			Watch:          false,
		},

		TraceStore: TraceStoreConfig{
			Enabled: false,
			Path:    "justact-trace.db",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults if
// the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("JUSTACT_TRACE_DB"); path != "" {
		c.TraceStore.Enabled = true
		c.TraceStore.Path = path
	}
	if debug := os.Getenv("JUSTACT_DEBUG"); debug == "1" || debug == "true" {
		c.Logging.DebugMode = true
	}
}

// GetQueryTimeout returns Policy.QueryTimeout as a duration (30s if it does
// not parse).
func (c *Config) GetQueryTimeout() time.Duration {
	d, err := time.ParseDuration(c.Policy.QueryTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetScenarioTimeout returns the scenario runner's default timeout.
func (c *Config) GetScenarioTimeout() time.Duration {
	d, err := time.ParseDuration(c.Scenario.DefaultTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Policy.FactLimit <= 0 {
		return fmt.Errorf("policy.fact_limit must be positive, got %d", c.Policy.FactLimit)
	}
	if _, err := time.ParseDuration(c.Policy.QueryTimeout); err != nil {
		return fmt.Errorf("invalid policy.query_timeout %q: %w", c.Policy.QueryTimeout, err)
	}
	if _, err := time.ParseDuration(c.Scenario.DefaultTimeout); err != nil {
		return fmt.Errorf("invalid scenario.default_timeout %q: %w", c.Scenario.DefaultTimeout, err)
	}
	return nil
}

// telemetryCategories maps the config's per-category toggles onto
// internal/telemetry's Category names, so LoggingConfig.IsCategoryEnabled
// can be reused verbatim by the logger.
var telemetryCategories = []telemetry.Category{
	telemetry.CategoryScheduler,
	telemetry.CategoryPolicy,
	telemetry.CategoryCollections,
	telemetry.CategoryAudit,
	telemetry.CategoryDataplane,
	telemetry.CategoryTrace,
}

// TelemetryCategories lists every category the logger may write to.
func TelemetryCategories() []telemetry.Category {
	out := make([]telemetry.Category, len(telemetryCategories))
	copy(out, telemetryCategories)
	return out
}
