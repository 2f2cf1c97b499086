package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdvisoryDecision(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		findings    []Finding
		diagnostics []string
		want        *Decision
	}{
		{
			name: "nothing to report",
			path: "/p/src/a.ts",
			want: &Decision{Continue: true},
		},
		{
			name: "findings and linter output",
			path: "/p/src/a.ts",
			findings: []Finding{
				{LineNumber: 3, Family: FamilyQuality, Message: "Use of 'any' type found"},
				{Family: FamilyQuality, Message: "BRF Compliance: Ensure member_id is typed as UUID"},
			},
			diagnostics: []string{"ESLint issues:\n  3:1  error  no-unused-vars"},
			want: &Decision{
				Continue: true,
				HookSpecificOutput: &HookSpecificOutput{
					HookEventName: "PostToolUse",
					AdditionalContext: "\n🔍 Code Quality Issues in a.ts:\n" +
						"  ⚠️  Line 3: Use of 'any' type found\n" +
						"  ⚠️  BRF Compliance: Ensure member_id is typed as UUID\n" +
						"  ⚠️  ESLint issues:\n  3:1  error  no-unused-vars" +
						"\n\n💡 Please review and fix these issues for BRF Portal compliance.\n",
				},
			},
		},
		{
			name:        "linter output only",
			path:        "/p/src/b.tsx",
			diagnostics: []string{"TypeScript issues:\nsrc/b.tsx(1,7): error TS2322"},
			want: &Decision{
				Continue: true,
				HookSpecificOutput: &HookSpecificOutput{
					HookEventName: "PostToolUse",
					AdditionalContext: "\n🔍 Code Quality Issues in b.tsx:\n" +
						"  ⚠️  TypeScript issues:\nsrc/b.tsx(1,7): error TS2322" +
						"\n\n💡 Please review and fix these issues for BRF Portal compliance.\n",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAdvisoryDecision(tt.path, tt.findings, tt.diagnostics)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Blocked())
		})
	}
}

func TestBuildAdvisoryDecision_WithoutPath(t *testing.T) {
	findings := []Finding{{LineNumber: 1, Family: FamilyQuality, Message: "Use of 'any' type found"}}

	got := BuildAdvisoryDecision("", findings, nil)

	require.NotNil(t, got.HookSpecificOutput)
	assert.Equal(t, "\n🔍 Code Quality Issues:\n"+
		"  ⚠️  Line 1: Use of 'any' type found"+
		"\n\n💡 Please review and fix these issues for BRF Portal compliance.\n",
		got.HookSpecificOutput.AdditionalContext)
}

func TestBuildAdvisoryDecision_NeverBlocks(t *testing.T) {
	findings := []Finding{
		{LineNumber: 1, Family: FamilySecurity, Message: "Hardcoded password", Excerpt: `password = "ve...`},
	}

	got := BuildAdvisoryDecision("/p/a.ts", findings, nil)

	assert.False(t, got.Blocked())
	require.NotNil(t, got.HookSpecificOutput)
	assert.Contains(t, got.HookSpecificOutput.AdditionalContext, `Line 1: Hardcoded password (password = "ve...)`)
}

func TestBuildBlockingDecision(t *testing.T) {
	tests := []struct {
		name     string
		findings []Finding
		want     *Decision
	}{
		{
			name: "no findings",
			want: &Decision{Continue: true},
		},
		{
			name: "advisory findings only",
			findings: []Finding{
				{LineNumber: 2, Family: FamilyQuality, Message: "Use of 'any' type found"},
			},
			want: &Decision{Continue: true},
		},
		{
			name: "blocking findings are listed, advisory ones are not",
			findings: []Finding{
				{LineNumber: 1, Family: FamilySecurity, Message: "Hardcoded password", Excerpt: `password = "ve...`},
				{LineNumber: 2, Family: FamilyQuality, Message: "Use of 'any' type found"},
				{LineNumber: 5, Family: FamilySensitiveData, Message: "PostgreSQL connection string with credentials", Excerpt: "Connection string found"},
			},
			want: &Decision{
				Decision: "block",
				Reason: "🚫 SECURITY VIOLATION DETECTED\n\n" +
					"The following security issues were found:\n" +
					"  Line 1: Hardcoded password (password = \"ve...)\n" +
					"  Line 5: PostgreSQL connection string with credentials (Connection string found)\n" +
					"\n" + securityPolicy,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildBlockingDecision(tt.findings))
		})
	}
}

func TestSecurityPolicy(t *testing.T) {
	assert.Contains(t, securityPolicy, "Use process.env.VARIABLE_NAME in code")
	assert.Contains(t, securityPolicy, "Swedish personal data (personnummer) must be hashed")
	assert.Regexp(t, `Operation blocked to protect BRF Portal security\.$`, securityPolicy)
}

func TestDecision_Constructors(t *testing.T) {
	assert.Equal(t, &Decision{Continue: true}, NewContinueDecision())
	assert.Equal(t, &Decision{Decision: "block", Reason: "r"}, NewBlockDecision("r"))
	assert.True(t, NewBlockDecision("r").Blocked())
	assert.Equal(t, &Decision{
		Continue:           true,
		HookSpecificOutput: &HookSpecificOutput{HookEventName: "UserPromptSubmit", AdditionalContext: "ctx"},
	}, NewContextDecision(HookEventUserPromptSubmit, "ctx"))
}
