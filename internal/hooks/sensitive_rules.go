package hooks

import "regexp"

const sensitiveExcerptLen = 10

// identifierRules detect Swedish personal, organisational and payment identifiers.
var identifierRules = []PatternRule{
	{
		Pattern:    regexp.MustCompile(`\d{6}[-\s]?\d{4}`),
		Family:     FamilySensitiveData,
		Message:    "Swedish personal ID number (personnummer)",
		ExcerptLen: sensitiveExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`\d{8}[-\s]?\d{4}`),
		Family:     FamilySensitiveData,
		Message:    "Swedish organization number",
		ExcerptLen: sensitiveExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)bankgiro\s*[:=]\s*\d+`),
		Family:     FamilySensitiveData,
		Message:    "Bankgiro number",
		ExcerptLen: sensitiveExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)plusgiro\s*[:=]\s*\d+`),
		Family:     FamilySensitiveData,
		Message:    "Plusgiro number",
		ExcerptLen: sensitiveExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)iban\s*[:=]\s*[A-Z]{2}\d{2}[A-Z0-9]{4}\d{16}`),
		Family:     FamilySensitiveData,
		Message:    "IBAN number",
		ExcerptLen: sensitiveExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)bic\s*[:=]\s*[A-Z]{6}[A-Z0-9]{2}(?:[A-Z0-9]{3})?`),
		Family:     FamilySensitiveData,
		Message:    "BIC/SWIFT code",
		ExcerptLen: sensitiveExcerptLen,
	},
}

// stripeKeyRules detect Stripe secret and publishable keys.
var stripeKeyRules = []PatternRule{
	{
		Pattern:    regexp.MustCompile(`(?i)sk_test_[a-zA-Z0-9]{24}`),
		Family:     FamilySecurity,
		Message:    "Stripe test key",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)sk_live_[a-zA-Z0-9]{24}`),
		Family:     FamilySecurity,
		Message:    "Stripe live key",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)pk_test_[a-zA-Z0-9]{24}`),
		Family:     FamilySecurity,
		Message:    "Stripe publishable test key",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)pk_live_[a-zA-Z0-9]{24}`),
		Family:     FamilySecurity,
		Message:    "Stripe publishable live key",
		ExcerptLen: securityExcerptLen,
	},
}

// platformKeyRules detect JWTs and Supabase and BankID credentials.
var platformKeyRules = []PatternRule{
	{
		Pattern:    regexp.MustCompile(`(?i)eyJ[A-Za-z0-9_=-]+\.eyJ[A-Za-z0-9_=-]+\.[A-Za-z0-9_.+/=-]*`),
		Family:     FamilySecurity,
		Message:    "JWT token",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)sbp_[a-f0-9]{40}`),
		Family:     FamilySecurity,
		Message:    "Supabase project API key",
		ExcerptLen: securityExcerptLen,
	},
	{
		Pattern:    regexp.MustCompile(`(?i)test.*bank.*id.*key`),
		Family:     FamilySecurity,
		Message:    "BankID test key",
		ExcerptLen: securityExcerptLen,
	},
}

// connectionStringRules detect database URLs with inline credentials.
var connectionStringRules = []PatternRule{
	{
		Pattern:      regexp.MustCompile(`postgresql://[^/\s]+:[^@\s]+@[^/\s]+`),
		Family:       FamilySensitiveData,
		Message:      "PostgreSQL connection string with credentials",
		FixedExcerpt: "Connection string found",
		FirstOnly:    true,
	},
	{
		Pattern:      regexp.MustCompile(`postgres://[^/\s]+:[^@\s]+@[^/\s]+`),
		Family:       FamilySensitiveData,
		Message:      "PostgreSQL connection string with credentials",
		FixedExcerpt: "Connection string found",
		FirstOnly:    true,
	},
	{
		Pattern:      regexp.MustCompile(`mysql://[^/\s]+:[^@\s]+@[^/\s]+`),
		Family:       FamilySensitiveData,
		Message:      "MySQL connection string with credentials",
		FixedExcerpt: "Connection string found",
		FirstOnly:    true,
	},
	{
		Pattern:      regexp.MustCompile(`mongodb://[^/\s]+:[^@\s]+@[^/\s]+`),
		Family:       FamilySensitiveData,
		Message:      "MongoDB connection string with credentials",
		FixedExcerpt: "Connection string found",
		FirstOnly:    true,
	},
}

// genericTokenRules flag any 32-character alphanumeric run. Hashes and
// identifiers match too.
var genericTokenRules = []PatternRule{
	{
		Pattern:    regexp.MustCompile(`[A-Za-z0-9]{32}`),
		Family:     FamilySecurity,
		Message:    "Potential API key (32 chars)",
		ExcerptLen: securityExcerptLen,
	},
}

// NewSensitiveDataRules creates the rule set for regulated identifiers.
// Lines marked as test data, examples or comments are not reported.
func NewSensitiveDataRules() RuleSet {
	return &lineRuleSet{
		name:        "sensitive-data",
		description: "Detects Swedish personal, organisation and payment identifiers",
		rules:       identifierRules,
		suppress:    sampleOrComment,
	}
}

// secretRules is the blocking hook's credential table. Vendor formats,
// the 32-character heuristic and literal assignments share one table so
// a line reports its matches in this order.
var secretRules = concatRules(stripeKeyRules, genericTokenRules, credentialRules, platformKeyRules)

// NewSecretRules creates the rule set for API keys, tokens and literal
// credentials. Lines that read the value from the environment are not reported.
func NewSecretRules() RuleSet {
	return &lineRuleSet{
		name:        "secrets",
		description: "Detects Stripe, Supabase, JWT and BankID credentials, 32-character tokens and literal credentials",
		rules:       secretRules,
		suppress:    envReference,
	}
}

// NewConnectionStringRules creates the rule set for database URLs with credentials.
func NewConnectionStringRules() RuleSet {
	return &lineRuleSet{
		name:        "connection-strings",
		description: "Detects PostgreSQL, MySQL and MongoDB URLs carrying credentials",
		rules:       connectionStringRules,
		suppress:    envAccessor,
	}
}

// NewGenericTokenRules creates the 32-character token heuristic on its own.
func NewGenericTokenRules() RuleSet {
	return &lineRuleSet{
		name:        "generic-token",
		description: "Flags 32-character alphanumeric runs that may be API keys",
		rules:       genericTokenRules,
		suppress:    envReference,
	}
}
