package hooks

import (
	"fmt"
	"strings"
	"time"

	"github.com/michael-freling/brf-portal-hooks/internal/knowledge"
)

// featureMatchWords is how many leading words of a feature explanation
// also count as keywords for that feature.
const featureMatchWords = 3

// TimeProvider provides the current time (allows mocking in tests)
type TimeProvider func() time.Time

// ContextInjector enriches domain-related prompts with the terminology dataset.
type ContextInjector struct {
	base         *knowledge.Base
	location     *time.Location
	timeProvider TimeProvider
}

// NewContextInjector creates a ContextInjector over base. Timestamps are
// rendered in the dataset's timezone, or UTC when it cannot be loaded.
func NewContextInjector(base *knowledge.Base, timeProvider TimeProvider) *ContextInjector {
	location, err := time.LoadLocation(base.Timezone)
	if err != nil {
		location = time.UTC
	}
	return &ContextInjector{
		base:         base,
		location:     location,
		timeProvider: timeProvider,
	}
}

// IsRelevant reports whether prompt should receive domain context. An
// empty prompt is treated as relevant.
func (c *ContextInjector) IsRelevant(prompt string) bool {
	if prompt == "" {
		return true
	}
	lower := strings.ToLower(prompt)
	for _, indicator := range c.base.Indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// FeatureContext returns the explanation lines whose keyword, or one of
// the first words of the explanation, appears in prompt. Prompt matching
// is case-insensitive; explanation words are compared as written, so a
// capitalised word never matches.
func (c *ContextInjector) FeatureContext(prompt string) []string {
	lower := strings.ToLower(prompt)

	var contexts []string
	for _, feature := range c.base.Features {
		if matchesFeature(lower, feature) {
			contexts = append(contexts, "- "+feature.Context)
		}
	}
	return contexts
}

func matchesFeature(prompt string, feature knowledge.Feature) bool {
	if strings.Contains(prompt, feature.Keyword) {
		return true
	}
	words := strings.Fields(feature.Context)
	if len(words) > featureMatchWords {
		words = words[:featureMatchWords]
	}
	for _, word := range words {
		if strings.Contains(prompt, word) {
			return true
		}
	}
	return false
}

// Build assembles the decision for prompt. Unrelated prompts pass through
// without annotation; the injector never blocks.
func (c *ContextInjector) Build(prompt string) *Decision {
	if !c.IsRelevant(prompt) {
		return NewContinueDecision()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(c.base.Reference))
	b.WriteString("\n\n")

	if features := c.FeatureContext(prompt); len(features) > 0 {
		b.WriteString("\n### Relevant Feature Context:\n")
		b.WriteString(strings.Join(features, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n### Current Context:\n")
	if c.base.Project != "" {
		fmt.Fprintf(&b, "- Working on %s\n", c.base.Project)
	}
	now := c.timeProvider().In(c.location)
	fmt.Fprintf(&b, "- Date: %s (%s)\n", now.Format("2006-01-02 15:04"), c.location.String())

	return NewContextDecision(HookEventUserPromptSubmit, b.String())
}
