package lint

import "github.com/delonchen2011/SwiftLint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for violations from this rule.
	Severity config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules with their resolved configuration, in registry
// (ID-sorted) order.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}

	if cfg == nil {
		return rr
	}

	for _, key := range cfg.EnableRules {
		if matchesRule(rule, key) {
			rr.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableRules {
		if matchesRule(rule, key) {
			rr.Enabled = false
			break
		}
	}

	ruleCfg, ok := cfg.Rules[rule.ID()]
	if !ok {
		ruleCfg, ok = cfg.Rules[rule.Name()]
	}
	if ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if sev, err := config.ParseSeverity(*ruleCfg.Severity); err == nil {
				rr.Severity = sev
			}
		}
	}

	return rr
}

// matchesRule reports whether key names the rule by ID or name.
func matchesRule(rule Rule, key string) bool {
	return key == rule.ID() || key == rule.Name()
}
