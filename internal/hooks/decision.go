package hooks

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// HookEventPostToolUse is the runtime's name for the after-write lifecycle point.
	HookEventPostToolUse = "PostToolUse"
	// HookEventUserPromptSubmit is the runtime's name for the prompt lifecycle point.
	HookEventUserPromptSubmit = "UserPromptSubmit"

	decisionBlock = "block"
)

// HookSpecificOutput carries advisory context for the runtime to surface.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// Decision is the single output of a handler. Either Continue is set,
// optionally with HookSpecificOutput, or Decision is "block" with a Reason.
type Decision struct {
	Continue           bool                `json:"continue,omitempty"`
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
	Decision           string              `json:"decision,omitempty"`
	Reason             string              `json:"reason,omitempty"`
}

// Blocked reports whether the decision vetoes the action.
func (d *Decision) Blocked() bool {
	return d.Decision == decisionBlock
}

// NewContinueDecision creates a pass-through decision with no annotation.
func NewContinueDecision() *Decision {
	return &Decision{Continue: true}
}

// NewContextDecision creates a pass-through decision annotated with
// additional context for the given hook event.
func NewContextDecision(hookEventName, additionalContext string) *Decision {
	return &Decision{
		Continue: true,
		HookSpecificOutput: &HookSpecificOutput{
			HookEventName:     hookEventName,
			AdditionalContext: additionalContext,
		},
	}
}

// NewBlockDecision creates a decision that vetoes the action.
func NewBlockDecision(reason string) *Decision {
	return &Decision{
		Decision: decisionBlock,
		Reason:   reason,
	}
}

// BuildAdvisoryDecision reports findings and external diagnostics for
// path as additional context. It never blocks. An empty path leaves the
// file name out of the header.
func BuildAdvisoryDecision(path string, findings []Finding, diagnostics []string) *Decision {
	if len(findings) == 0 && len(diagnostics) == 0 {
		return NewContinueDecision()
	}

	var b strings.Builder
	if path == "" {
		b.WriteString("\n🔍 Code Quality Issues:\n")
	} else {
		fmt.Fprintf(&b, "\n🔍 Code Quality Issues in %s:\n", filepath.Base(path))
	}
	items := make([]string, 0, len(findings)+len(diagnostics))
	for _, finding := range findings {
		items = append(items, finding.String())
	}
	items = append(items, diagnostics...)
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  ⚠️  %s", item)
	}
	b.WriteString("\n\n💡 Please review and fix these issues for BRF Portal compliance.\n")

	return NewContextDecision(HookEventPostToolUse, b.String())
}

const securityPolicy = `🔒 BRF Portal Security Policy:
- Never commit API keys, passwords, or tokens
- Use environment variables for sensitive data
- Swedish personal data (personnummer) must be hashed
- Database credentials must use environment variables

💡 To fix:
- Move sensitive values to .env files
- Use process.env.VARIABLE_NAME in code
- Hash or tokenize Swedish personal identifiers
- Review code before committing

Operation blocked to protect BRF Portal security.`

// BuildBlockingDecision blocks when any finding belongs to a blocking
// family and passes through otherwise.
func BuildBlockingDecision(findings []Finding) *Decision {
	if !HasBlocking(findings) {
		return NewContinueDecision()
	}

	var b strings.Builder
	b.WriteString("🚫 SECURITY VIOLATION DETECTED\n\n")
	b.WriteString("The following security issues were found:\n")
	for _, finding := range findings {
		if !finding.Family.Blocks() {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", finding.String())
	}
	b.WriteString("\n")
	b.WriteString(securityPolicy)

	return NewBlockDecision(b.String())
}
