package hooks

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	sourceExtensions = map[string]bool{
		".ts": true, ".tsx": true, ".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
	}
	typedExtensions = map[string]bool{
		".ts": true, ".tsx": true,
	}
)

// IsSourceFile reports whether path names a JavaScript or TypeScript source file.
func IsSourceFile(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsTypedSourceFile reports whether path names a TypeScript source file.
func IsTypedSourceFile(path string) bool {
	return typedExtensions[strings.ToLower(filepath.Ext(path))]
}

// untranslatedRules flag Swedish text that bypasses the i18n helpers.
var untranslatedRules = []PatternRule{
	{
		Pattern: regexp.MustCompile(`(?i)"[^"]*[åäö][^"]*"`),
		Family:  FamilyQuality,
		Message: "Swedish text '{match}' should be internationalized",
	},
	{
		Pattern: regexp.MustCompile(`(?i)'[^']*[åäö][^']*'`),
		Family:  FamilyQuality,
		Message: "Swedish text '{match}' should be internationalized",
	},
	{
		Pattern: regexp.MustCompile(`(?i)(?:avgift|medlem|styrelse|årsstämma|underhåll)`),
		Family:  FamilyQuality,
		Message: "Swedish text '{match}' should be internationalized",
	},
}

var looseTypingRules = []PatternRule{
	{
		Pattern:   regexp.MustCompile(`:\s*any\b`),
		Family:    FamilyQuality,
		Message:   "Use of 'any' type found - consider specific typing for BRF data structures",
		FirstOnly: true,
	},
}

// NewUntranslatedTextRules creates the rule set for strings that should go through t() or translate().
func NewUntranslatedTextRules() RuleSet {
	return &lineRuleSet{
		name:        "untranslated-text",
		description: "Flags Swedish strings and domain terms outside translation calls",
		rules:       untranslatedRules,
		suppress:    insideTranslated,
		applies:     IsSourceFile,
	}
}

// NewLooseTypingRules creates the rule set for `any` annotations in TypeScript.
func NewLooseTypingRules() RuleSet {
	return &lineRuleSet{
		name:        "loose-typing",
		description: "Flags `any` type annotations in TypeScript files",
		rules:       looseTypingRules,
		applies:     IsTypedSourceFile,
	}
}

// domainField is an identifier that must be declared with a constraining type.
type domainField struct {
	identifier string
	marker     string
	advice     string
}

var domainFields = []domainField{
	{identifier: "cooperative_id", marker: "UUID", advice: "Ensure cooperative_id is typed as UUID"},
	{identifier: "member_id", marker: "UUID", advice: "Ensure member_id is typed as UUID"},
	{identifier: "apartment_number", marker: "UUID", advice: "Ensure apartment_number follows Swedish format"},
}

// domainFieldRules inspects the whole file: a field is reported once, at
// its first occurrence, when no line in the file carries the field
// followed by its type marker.
type domainFieldRules struct {
	fields []domainField
}

// NewDomainFieldRules creates the whole-file typing heuristic for BRF identifiers.
func NewDomainFieldRules() RuleSet {
	return &domainFieldRules{fields: domainFields}
}

// Name returns the unique identifier for this rule set.
func (r *domainFieldRules) Name() string {
	return "domain-field-typing"
}

// Description returns a human-readable description of what this rule set checks.
func (r *domainFieldRules) Description() string {
	return "Checks that BRF identifiers are declared with their constraining type"
}

// Check scans doc for each field and its marker.
func (r *domainFieldRules) Check(doc *Document) ([]Finding, error) {
	if !IsTypedSourceFile(doc.Path) {
		return nil, nil
	}

	lines := strings.Split(doc.Text, "\n")
	var findings []Finding
	for _, field := range r.fields {
		firstLine := 0
		typed := false
		for i, line := range lines {
			idx := strings.Index(line, field.identifier)
			if idx < 0 {
				continue
			}
			if firstLine == 0 {
				firstLine = i + 1
			}
			if strings.Contains(line[idx:], field.marker) {
				typed = true
				break
			}
		}
		if firstLine > 0 && !typed {
			findings = append(findings, Finding{
				LineNumber: firstLine,
				Family:     FamilyQuality,
				Message:    "BRF Compliance: " + field.advice,
			})
		}
	}
	return findings, nil
}
