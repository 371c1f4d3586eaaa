package lint

import "github.com/delonchen2011/SwiftLint/pkg/config"

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "SW101").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Kind returns the violation kind this rule reports.
	Kind() Kind

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["structure"]).
	Tags() []string

	// Apply executes the rule against the given context and returns violations.
	//
	// Rules must:
	//   - Return one violation per finding, never mutating File or Root.
	//   - Treat missing optional data (absent offsets, names, body ranges,
	//     unmappable positions) as "no violation", not as an error.
	//   - Return error only for internal failures.
	Apply(ctx *RuleContext) ([]Violation, error)
}

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
type BaseRule struct {
	id   string
	name string
	desc string
	kind Kind
	tags []string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, kind Kind, tags []string) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		kind: kind,
		tags: tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Kind returns the violation kind this rule reports.
func (r *BaseRule) Kind() Kind {
	return r.kind
}

// DefaultEnabled returns whether the rule is enabled by default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Every shipped rule reports Low; the severity policy is configurable per
// rule but the detection logic never consults it.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityLow
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]Violation, error) {
	return nil, nil
}
