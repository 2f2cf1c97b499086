package hooks

import "strings"

// Suppressor decides whether a pattern match on line is a false positive.
// match holds the byte offsets of the match within line.
type Suppressor func(line string, match []int) bool

var (
	// envReferenceMarkers mark a value sourced from the environment.
	envReferenceMarkers = []string{"process.env", "env.", "${"}
	// envAccessorMarkers is the narrower set used for connection strings,
	// where ${...} is a normal part of templated URLs.
	envAccessorMarkers = []string{"process.env", "env."}
	// sampleMarkers mark test fixtures and documentation values.
	sampleMarkers = []string{"test", "mock", "example"}
	// commentPrefixes start a comment line in the languages the portal uses.
	commentPrefixes = []string{"//", "/*", "*", "#", "--"}
	// translationCalls are the i18n helpers an internationalized string is passed to.
	translationCalls = []string{"t(", "translate("}
)

// anyOf combines suppressors; a match is suppressed if any of them says so.
func anyOf(suppressors ...Suppressor) Suppressor {
	return func(line string, match []int) bool {
		for _, suppress := range suppressors {
			if suppress(line, match) {
				return true
			}
		}
		return false
	}
}

// lineContains suppresses a match when the line contains any marker.
func lineContains(markers ...string) Suppressor {
	return func(line string, _ []int) bool {
		return containsAny(line, markers)
	}
}

// lineContainsFold is lineContains with case-insensitive comparison.
// markers must be lowercase.
func lineContainsFold(markers ...string) Suppressor {
	return func(line string, _ []int) bool {
		return containsAny(strings.ToLower(line), markers)
	}
}

// lineStartsWith suppresses a match when the trimmed line starts with any prefix.
func lineStartsWith(prefixes ...string) Suppressor {
	return func(line string, _ []int) bool {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range prefixes {
			if strings.HasPrefix(trimmed, prefix) {
				return true
			}
		}
		return false
	}
}

// precededBy suppresses a match when the text before it on the same line
// contains any marker.
func precededBy(markers ...string) Suppressor {
	return func(line string, match []int) bool {
		return containsAny(line[:match[0]], markers)
	}
}

var (
	envReference     = lineContains(envReferenceMarkers...)
	envAccessor      = lineContains(envAccessorMarkers...)
	sampleOrComment  = anyOf(lineContainsFold(sampleMarkers...), lineStartsWith(commentPrefixes...))
	insideTranslated = precededBy(translationCalls...)
)

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
