package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity represents the severity level of a reported violation.
// Levels are totally ordered: VeryLow < Low < Medium < High < VeryHigh.
type Severity int

const (
	SeverityVeryLow Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityVeryHigh
)

// severityNames maps severities to their canonical configuration names.
var severityNames = map[Severity]string{
	SeverityVeryLow:  "very_low",
	SeverityLow:      "low",
	SeverityMedium:   "medium",
	SeverityHigh:     "high",
	SeverityVeryHigh: "very_high",
}

// String returns the canonical name of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// IsError reports whether this severity is treated as an error.
// Severities above Medium are errors; Medium and below are warnings.
func (s Severity) IsError() bool {
	return s > SeverityMedium
}

// Label returns the display label used in diagnostic output.
func (s Severity) Label() string {
	if s.IsError() {
		return "error"
	}
	return "warning"
}

// ParseSeverity converts a configuration string into a Severity.
func ParseSeverity(name string) (Severity, error) {
	for sev, n := range severityNames {
		if n == name {
			return sev, nil
		}
	}
	return SeverityLow, fmt.Errorf("unknown severity %q", name)
}

// UnmarshalYAML implements yaml.Unmarshaler for severity names in config files.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("decode severity: %w", err)
	}
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}
