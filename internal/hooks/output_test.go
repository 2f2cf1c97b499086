package hooks

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestWriteDecision(t *testing.T) {
	tests := []struct {
		name     string
		decision *Decision
		want     string
	}{
		{
			name:     "continue",
			decision: NewContinueDecision(),
			want:     "{\n  \"continue\": true\n}\n",
		},
		{
			name:     "context is not HTML escaped",
			decision: NewContextDecision(HookEventPostToolUse, "<b> & </b>"),
			want: "{\n  \"continue\": true,\n  \"hookSpecificOutput\": {\n" +
				"    \"hookEventName\": \"PostToolUse\",\n" +
				"    \"additionalContext\": \"<b> & </b>\"\n  }\n}\n",
		},
		{
			name:     "block",
			decision: NewBlockDecision("🚫 SECURITY VIOLATION DETECTED"),
			want:     "{\n  \"decision\": \"block\",\n  \"reason\": \"🚫 SECURITY VIOLATION DETECTED\"\n}\n",
		},
		{
			name:     "zero decision is replaced by continue",
			decision: &Decision{},
			want:     "{\n  \"continue\": true\n}\n",
		},
		{
			name:     "block without reason is replaced by continue",
			decision: NewBlockDecision(""),
			want:     "{\n  \"continue\": true\n}\n",
		},
		{
			name:     "mixed shapes are replaced by continue",
			decision: &Decision{Continue: true, Decision: "block", Reason: "r"},
			want:     "{\n  \"continue\": true\n}\n",
		},
		{
			name:     "empty context is replaced by continue",
			decision: NewContextDecision(HookEventUserPromptSubmit, ""),
			want:     "{\n  \"continue\": true\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteDecision(&buf, tt.decision, zap.NewNop())

			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteDecision_WriteError(t *testing.T) {
	err := WriteDecision(failingWriter{}, NewContinueDecision(), zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout closed")
}

func TestValidateDecision(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "continue", data: `{"continue": true}`},
		{name: "continue with context", data: `{"continue": true, "hookSpecificOutput": {"hookEventName": "PostToolUse", "additionalContext": "x"}}`},
		{name: "block", data: `{"decision": "block", "reason": "x"}`},
		{name: "continue false", data: `{"continue": false}`, wantErr: true},
		{name: "approve is not a decision", data: `{"decision": "approve", "reason": "x"}`, wantErr: true},
		{name: "unknown field", data: `{"continue": true, "extra": 1}`, wantErr: true},
		{name: "context without event name", data: `{"continue": true, "hookSpecificOutput": {"additionalContext": "x"}}`, wantErr: true},
		{name: "not JSON", data: `continue`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDecision([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
