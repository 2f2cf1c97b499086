package hooks

import (
	"go.uber.org/zap"
)

// ruleEngine implements the rule evaluation engine.
type ruleEngine struct {
	ruleSets []RuleSet
	logger   *zap.Logger
}

// NewRuleEngine creates a new rule engine with the given rule sets.
func NewRuleEngine(logger *zap.Logger, ruleSets ...RuleSet) *ruleEngine {
	return &ruleEngine{
		ruleSets: ruleSets,
		logger:   logger,
	}
}

// Evaluate runs every rule set against doc and concatenates their
// findings in rule set order. A rule set that fails contributes no
// findings; the remaining sets still run.
func (e *ruleEngine) Evaluate(doc *Document) []Finding {
	if doc == nil || doc.Text == "" {
		return nil
	}

	var findings []Finding
	for _, ruleSet := range e.ruleSets {
		result, err := ruleSet.Check(doc)
		if err != nil {
			e.logger.Warn("rule set failed",
				zap.String("rule_set", ruleSet.Name()),
				zap.String("path", doc.Path),
				zap.Error(err),
			)
			continue
		}
		e.logger.Debug("rule set evaluated",
			zap.String("rule_set", ruleSet.Name()),
			zap.Int("findings", len(result)),
		)
		findings = append(findings, result...)
	}
	return findings
}
