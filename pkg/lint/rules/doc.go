// Package rules provides the built-in lint rules for swiftlint.
//
// # Rule Domains
//
// Structural rules walk the declaration tree supplied by the external
// syntax-analysis service:
//
//   - SW001: type-name - Type names are alphanumeric, uppercase-first, 3-40 chars
//   - SW002: variable-name - Variable names are alphanumeric, lowercase-first, 3-40 chars
//   - SW003: type-body-length - Type bodies span 200 lines or less
//   - SW004: function-body-length - Function bodies span 40 lines or less
//   - SW005: nesting - Types at most 1 level deep, statements at most 5
//
// Textual rules operate on the raw source lines and content:
//
//   - SW101: line-length - Lines are 100 characters or less
//   - SW102: file-length - Files contain 400 lines or less
//   - SW103: leading-whitespace - Files do not begin with whitespace
//   - SW104: trailing-whitespace - Lines have no trailing whitespace
//   - SW105: trailing-newline - Files end with a single newline
//   - SW106: force-cast - No forced downcasts (as!)
//   - SW107: todo - No TODO/FIXME markers
//   - SW108: colon-spacing - Type annotation colons hug the identifier
//
// SW106-SW108 are token-constrained pattern rules: a regex match only counts
// when the classified tokens inside the match span have exactly the required
// kinds, so text inside strings or comments never triggers them.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll. Each rule
// implements the lint.Rule interface and reports violations through the
// RuleContext.
package rules
