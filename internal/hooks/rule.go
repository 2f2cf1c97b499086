package hooks

import (
	"regexp"
	"strings"
)

// Document is the text under inspection together with the path it came from.
// Path may be empty when the text arrived inline with the event.
type Document struct {
	Path string
	Text string
}

// RuleSet is an ordered group of checks belonging to one concern.
type RuleSet interface {
	// Name returns the unique identifier for this rule set.
	Name() string

	// Description returns a human-readable description of what this rule set checks.
	Description() string

	// Check returns the findings for doc. Check must not depend on any
	// other rule set having run.
	Check(doc *Document) ([]Finding, error)
}

// PatternRule is one declarative (pattern, family, message) record.
type PatternRule struct {
	Pattern *regexp.Regexp
	Family  Family
	// Message may contain {match}, which is replaced by the matched text.
	Message string
	// ExcerptLen bounds the excerpt taken from the match. Zero means no excerpt.
	ExcerptLen int
	// FixedExcerpt replaces the match-derived excerpt when set.
	FixedExcerpt string
	// FirstOnly reports at most one match per line.
	FirstOnly bool
}

func (r PatternRule) finding(lineNumber int, match string) Finding {
	excerpt := r.FixedExcerpt
	if excerpt == "" && r.ExcerptLen > 0 {
		excerpt = truncate(match, r.ExcerptLen)
	}
	return Finding{
		LineNumber: lineNumber,
		Family:     r.Family,
		Message:    strings.ReplaceAll(r.Message, "{match}", match),
		Excerpt:    excerpt,
	}
}

// lineRuleSet evaluates its rules against every line and drops the
// candidates its suppressor rejects.
type lineRuleSet struct {
	name        string
	description string
	rules       []PatternRule
	suppress    Suppressor
	// applies restricts the set to some paths. Nil means every document.
	applies func(path string) bool
}

// Name returns the unique identifier for this rule set.
func (s *lineRuleSet) Name() string {
	return s.name
}

// Description returns a human-readable description of what this rule set checks.
func (s *lineRuleSet) Description() string {
	return s.description
}

// Check matches every rule against every line of doc.
func (s *lineRuleSet) Check(doc *Document) ([]Finding, error) {
	if s.applies != nil && !s.applies(doc.Path) {
		return nil, nil
	}

	var findings []Finding
	for i, line := range strings.Split(doc.Text, "\n") {
		for _, rule := range s.rules {
			limit := -1
			if rule.FirstOnly {
				limit = 1
			}
			for _, loc := range rule.Pattern.FindAllStringIndex(line, limit) {
				if s.suppress != nil && s.suppress(line, loc) {
					continue
				}
				findings = append(findings, rule.finding(i+1, line[loc[0]:loc[1]]))
			}
		}
	}
	return findings, nil
}
