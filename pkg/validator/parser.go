package validator

import "strings"

// RuleConfig is the ordered list of rule names declared for a field.
// Duplicates are allowed and have no additional effect.
type RuleConfig []RuleName

// ParseRules splits a comma-separated configuration string into a RuleConfig.
// Tokens are kept exactly as written: " email" does not name the email rule.
// Empty tokens are dropped, so "" yields an empty config.
func ParseRules(config string) RuleConfig {
	if config == "" {
		return RuleConfig{}
	}

	parts := strings.Split(config, ",")
	rules := make(RuleConfig, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		rules = append(rules, RuleName(p))
	}
	return rules
}

// String joins the config back into its comma-separated form.
func (c RuleConfig) String() string {
	parts := make([]string, len(c))
	for i, name := range c {
		parts[i] = string(name)
	}
	return strings.Join(parts, ",")
}

// Has reports whether name is declared in the config.
func (c RuleConfig) Has(name RuleName) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}
