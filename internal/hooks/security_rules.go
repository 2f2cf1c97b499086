package hooks

import "regexp"

const securityExcerptLen = 20

// credentialRules detect credentials assigned as string literals.
var credentialRules = []PatternRule{
	{
		Pattern:    regexp.MustCompile(`(?i)password\s*[:=]\s*["'][^"']{8,}["']`),
		Family:     FamilySecurity,
		Message:    "Hardcoded password",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)secret\s*[:=]\s*["'][^"']{8,}["']`),
		Family:     FamilySecurity,
		Message:    "Hardcoded secret",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)token\s*[:=]\s*["'][^"']{20,}["']`),
		Family:     FamilySecurity,
		Message:    "Hardcoded token",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)key\s*[:=]\s*["'][^"']{20,}["']`),
		Family:     FamilySecurity,
		Message:    "Hardcoded key",
		ExcerptLen: securityExcerptLen,
	},
}

// codeRiskRules detect sensitive logging and injection-prone constructs.
var codeRiskRules = []PatternRule{
	{
		Pattern:    regexp.MustCompile(`(?i)console\.log\([^)]*(?:password|secret|token|key)`),
		Family:     FamilySecurity,
		Message:    "Logging sensitive information",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)\beval\s*\(`),
		Family:     FamilySecurity,
		Message:    "Use of eval() function is dangerous",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)innerHTML\s*=.*\+`),
		Family:     FamilySecurity,
		Message:    "Potential XSS vulnerability",
		ExcerptLen: securityExcerptLen,
	},
}

// NewSecurityRules creates the security rule set for the advisory hook.
// Lines that read the value from the environment are not reported.
func NewSecurityRules() RuleSet {
	return &lineRuleSet{
		name:        "security",
		description: "Detects hardcoded credentials, sensitive logging, eval and XSS-shaped DOM writes",
		rules:       concatRules(credentialRules, codeRiskRules),
		suppress:    envReference,
	}
}

// NewCodeRiskRules creates the rule set for sensitive logging, eval and
// XSS-shaped DOM writes.
func NewCodeRiskRules() RuleSet {
	return &lineRuleSet{
		name:        "code-risk",
		description: "Detects sensitive logging, eval and XSS-shaped DOM writes",
		rules:       codeRiskRules,
		suppress:    envReference,
	}
}

func concatRules(tables ...[]PatternRule) []PatternRule {
	var rules []PatternRule
	for _, table := range tables {
		rules = append(rules, table...)
	}
	return rules
}
