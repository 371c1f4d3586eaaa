package rules

import "github.com/delonchen2011/SwiftLint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// Rule IDs are chosen so that ID order groups structural rules (SW0xx)
// before textual rules (SW1xx); the engine runs rules in ID order.
func RegisterAll(registry *lint.Registry) {
	// Structural rules (declaration tree).
	registry.Register(NewTypeNameRule())           // SW001
	registry.Register(NewVariableNameRule())       // SW002
	registry.Register(NewTypeBodyLengthRule())     // SW003
	registry.Register(NewFunctionBodyLengthRule()) // SW004
	registry.Register(NewNestingRule())            // SW005

	// Textual rules (lines and raw content).
	registry.Register(NewLineLengthRule())         // SW101
	registry.Register(NewFileLengthRule())         // SW102
	registry.Register(NewLeadingWhitespaceRule())  // SW103
	registry.Register(NewTrailingWhitespaceRule()) // SW104
	registry.Register(NewTrailingNewlineRule())    // SW105
	registry.Register(NewForceCastRule())          // SW106
	registry.Register(NewTODORule())               // SW107
	registry.Register(NewColonRule())              // SW108
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
