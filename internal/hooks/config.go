package hooks

import (
	"os"
	"time"
)

const (
	envLogLevel         = "BRF_HOOKS_LOG_LEVEL"
	envLintTimeout      = "BRF_HOOKS_LINT_TIMEOUT"
	envTypeCheckTimeout = "BRF_HOOKS_TYPECHECK_TIMEOUT"
	envKnowledgeFile    = "BRF_HOOKS_KNOWLEDGE_FILE"
	envLockDir          = "BRF_HOOKS_LOCK_DIR"

	defaultLogLevel         = "warn"
	defaultLintTimeout      = 10 * time.Second
	defaultTypeCheckTimeout = 15 * time.Second
)

// Config holds the tunables shared by all handlers.
type Config struct {
	LogLevel         string
	LintTimeout      time.Duration
	TypeCheckTimeout time.Duration
	// KnowledgeFile replaces the embedded terminology dataset when set.
	KnowledgeFile string
	// LockDir holds the lock files that serialise project type-checks.
	LockDir string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:         defaultLogLevel,
		LintTimeout:      defaultLintTimeout,
		TypeCheckTimeout: defaultTypeCheckTimeout,
		LockDir:          os.TempDir(),
	}
}

// ConfigFromEnv returns the default configuration overridden by
// BRF_HOOKS_* variables read through getenv. Unparsable values are ignored.
func ConfigFromEnv(getenv func(string) string) *Config {
	cfg := DefaultConfig()
	cfg.LogLevel = envOrDefault(getenv, envLogLevel, cfg.LogLevel)
	cfg.LintTimeout = envOrDefaultDuration(getenv, envLintTimeout, cfg.LintTimeout)
	cfg.TypeCheckTimeout = envOrDefaultDuration(getenv, envTypeCheckTimeout, cfg.TypeCheckTimeout)
	cfg.KnowledgeFile = envOrDefault(getenv, envKnowledgeFile, cfg.KnowledgeFile)
	cfg.LockDir = envOrDefault(getenv, envLockDir, cfg.LockDir)
	return cfg
}

func envOrDefault(getenv func(string) string, key, defaultVal string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(getenv func(string) string, key string, defaultVal time.Duration) time.Duration {
	if v := getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}
