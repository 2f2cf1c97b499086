package hooks

import "fmt"

// Family is the category a rule belongs to. It decides whether the
// rule's findings can block.
type Family string

const (
	FamilyQuality       Family = "quality"
	FamilySecurity      Family = "security"
	FamilySensitiveData Family = "sensitive-data"
)

// Blocks reports whether findings of this family veto the action.
func (f Family) Blocks() bool {
	return f == FamilySecurity || f == FamilySensitiveData
}

// Finding is the result of one rule matching one line of text.
type Finding struct {
	// LineNumber is 1-based. Zero means the finding applies to the whole file.
	LineNumber int
	Family     Family
	Message    string
	// Excerpt is a bounded snippet of the match, never the full secret.
	Excerpt string
}

// String renders the finding as a single report line without indentation.
func (f Finding) String() string {
	text := f.Message
	if f.Excerpt != "" {
		text = fmt.Sprintf("%s (%s)", f.Message, f.Excerpt)
	}
	if f.LineNumber == 0 {
		return text
	}
	return fmt.Sprintf("Line %d: %s", f.LineNumber, text)
}

// HasBlocking reports whether any finding belongs to a blocking family.
func HasBlocking(findings []Finding) bool {
	for _, finding := range findings {
		if finding.Family.Blocks() {
			return true
		}
	}
	return false
}

// truncate keeps a prefix of s and marks the cut with "...". The prefix
// is at most limit runes and at most half of s, so an excerpt never
// reproduces the whole match.
func truncate(s string, limit int) string {
	runes := []rune(s)
	keep := min(limit, len(runes)/2)
	return string(runes[:keep]) + "..."
}
