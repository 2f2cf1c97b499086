package hooks

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.LintTimeout)
	assert.Equal(t, 15*time.Second, cfg.TypeCheckTimeout)
	assert.Empty(t, cfg.KnowledgeFile)
	assert.Equal(t, os.TempDir(), cfg.LockDir)
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want *Config
	}{
		{
			name: "no overrides",
			env:  map[string]string{},
			want: DefaultConfig(),
		},
		{
			name: "all overrides",
			env: map[string]string{
				"BRF_HOOKS_LOG_LEVEL":         "debug",
				"BRF_HOOKS_LINT_TIMEOUT":      "3s",
				"BRF_HOOKS_TYPECHECK_TIMEOUT": "1m",
				"BRF_HOOKS_KNOWLEDGE_FILE":    "/etc/brf/knowledge.yaml",
				"BRF_HOOKS_LOCK_DIR":          "/run/brf",
			},
			want: &Config{
				LogLevel:         "debug",
				LintTimeout:      3 * time.Second,
				TypeCheckTimeout: time.Minute,
				KnowledgeFile:    "/etc/brf/knowledge.yaml",
				LockDir:          "/run/brf",
			},
		},
		{
			name: "invalid durations are ignored",
			env: map[string]string{
				"BRF_HOOKS_LINT_TIMEOUT":      "soon",
				"BRF_HOOKS_TYPECHECK_TIMEOUT": "-5s",
			},
			want: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfigFromEnv(func(key string) string { return tt.env[key] })
			assert.Equal(t, tt.want, got)
		})
	}
}
