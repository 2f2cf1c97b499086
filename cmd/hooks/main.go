package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/michael-freling/brf-portal-hooks/internal/hooks"
	"github.com/michael-freling/brf-portal-hooks/internal/knowledge"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := hooks.ConfigFromEnv(os.Getenv)

	rootCmd := &cobra.Command{
		Use:   "brf-hooks",
		Short: "Claude Code hooks for BRF Portal security, code quality and prompt context",
		Long: `A CLI tool that provides hook handlers for Claude Code. Each subcommand reads one hook event as JSON from stdin and writes one JSON decision to stdout.

Decisions are communicated only through the JSON payload; the exit code is 0 whether the action is allowed or blocked.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level written to stderr (debug, info, warn, error)")
	flags.DurationVar(&cfg.LintTimeout, "lint-timeout", cfg.LintTimeout, "timeout for the eslint run")
	flags.DurationVar(&cfg.TypeCheckTimeout, "typecheck-timeout", cfg.TypeCheckTimeout, "timeout for the tsc run")
	flags.StringVar(&cfg.KnowledgeFile, "knowledge-file", cfg.KnowledgeFile, "YAML file replacing the built-in BRF terminology")
	flags.StringVar(&cfg.LockDir, "lock-dir", cfg.LockDir, "directory for type-check lock files")

	rootCmd.AddCommand(newSecurityCheckCmd(cfg))
	rootCmd.AddCommand(newCodeQualityCmd(cfg))
	rootCmd.AddCommand(newPromptContextCmd(cfg))

	return rootCmd
}

func newSecurityCheckCmd(cfg *hooks.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "security-check",
		Short: "Block file writes that contain secrets or Swedish personal data",
		Long:  `PreToolUse hook. Reads the write arguments from stdin and blocks the write when the content contains credentials, API keys, connection strings or regulated identifiers.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, cfg.LogLevel)
			defer func() { _ = logger.Sync() }()

			return runHook(cmd, hooks.NewSecurityHandler(logger), logger)
		},
	}
}

func newCodeQualityCmd(cfg *hooks.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "code-quality",
		Short: "Annotate written files with code quality and compliance findings",
		Long:  `PostToolUse hook. Checks the written file for untranslated Swedish text, loose typing and security smells, runs eslint and tsc when the project has a package.json, and reports the findings as additional context. Never blocks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, cfg.LogLevel)
			defer func() { _ = logger.Sync() }()

			workDir, err := os.Getwd()
			if err != nil {
				logger.Debug("working directory unavailable", zap.Error(err))
			}

			handler := hooks.NewQualityHandler(hooks.NewLintHelper(cfg, logger), workDir, logger)
			return runHook(cmd, handler, logger)
		},
	}
}

func newPromptContextCmd(cfg *hooks.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt-context",
		Short: "Add BRF terminology and feature context to related prompts",
		Long:  `UserPromptSubmit hook. When the prompt mentions the BRF domain, attaches Swedish housing cooperative terminology, compliance and integration notes, and matching feature explanations. Never blocks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, cfg.LogLevel)
			defer func() { _ = logger.Sync() }()

			base, err := loadKnowledge(cfg.KnowledgeFile, logger)
			if err != nil {
				logger.Error("terminology unavailable", zap.Error(err))
				return hooks.WriteDecision(cmd.OutOrStdout(), hooks.NewContinueDecision(), logger)
			}

			handler := hooks.NewPromptHandler(hooks.NewContextInjector(base, time.Now))
			return runHook(cmd, handler, logger)
		},
	}
}

func runHook(cmd *cobra.Command, handler hooks.Handler, logger *zap.Logger) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return hooks.Run(ctx, handler, hookInput(cmd), cmd.OutOrStdout(), logger)
}

// hookInput returns the command's stdin, or an empty reader when stdin is
// an interactive terminal and nothing will ever be piped in.
func hookInput(cmd *cobra.Command) io.Reader {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return strings.NewReader("")
	}
	return in
}

// loadKnowledge reads the override file when one is configured and falls
// back to the embedded dataset when it cannot be used.
func loadKnowledge(path string, logger *zap.Logger) (*knowledge.Base, error) {
	if path != "" {
		base, err := knowledge.Load(path)
		if err == nil {
			return base, nil
		}
		logger.Warn("using built-in terminology", zap.String("file", path), zap.Error(err))
	}
	return knowledge.Default()
}

// newLogger builds a JSON logger on the command's stderr. Stdout is
// reserved for the decision document.
func newLogger(cmd *cobra.Command, level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.WarnLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zap.NewAtomicLevelAt(zapLevel),
	)
	return zap.New(core).With(
		zap.String("hook", cmd.Name()),
		zap.String("invocation_id", uuid.NewString()),
	)
}
