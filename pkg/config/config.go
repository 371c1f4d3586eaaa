// Package config defines core configuration types for swiftlint.
// These types are pure data structures with no dependency on any
// particular config loader.
package config

// OutputFormat specifies the output format for violations.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// Config is the root configuration structure for swiftlint.
type Config struct {
	// Excluded lists glob patterns for paths to skip during discovery.
	Excluded []string `yaml:"excluded"`

	// EnableRules force-enables rules by ID or name (from CLI).
	EnableRules []string `yaml:"-"`

	// DisableRules force-disables rules by ID or name (from CLI).
	DisableRules []string `yaml:"-"`

	// Rules maps rule IDs or names to rule-specific configuration.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Format selects the output format.
	Format OutputFormat `yaml:"format"`

	// Strict treats warnings as failures for the exit code.
	Strict bool `yaml:"strict"`

	// Jobs is the maximum number of concurrent lint workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// LogLevel controls logging verbosity ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Rules:    make(map[string]RuleConfig),
		Format:   FormatText,
		LogLevel: "info",
	}
}
