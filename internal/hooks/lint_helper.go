package hooks

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/michael-freling/brf-portal-hooks/internal/command"
	"go.uber.org/zap"
)

// projectManifest marks a directory as a Node.js project.
const projectManifest = "package.json"

// LintHelper runs the project's external linters. It is best effort:
// a tool that is missing, times out or crashes yields no diagnostics.
type LintHelper interface {
	// Diagnostics returns one formatted block per tool that reported problems for filePath.
	Diagnostics(ctx context.Context, dir string, filePath string) []string
}

// realLintHelper implements LintHelper as an adapter over command.LintRunner.
type realLintHelper struct {
	runner           command.LintRunner
	lintTimeout      time.Duration
	typeCheckTimeout time.Duration
	lockDir          string
	logger           *zap.Logger
}

// NewLintHelper creates a new LintHelper that runs eslint and tsc through npx.
func NewLintHelper(cfg *Config, logger *zap.Logger) LintHelper {
	return NewLintHelperWithRunner(command.NewLintRunner(command.NewRunner()), cfg, logger)
}

// NewLintHelperWithRunner creates a new LintHelper with a custom runner for testing.
func NewLintHelperWithRunner(runner command.LintRunner, cfg *Config, logger *zap.Logger) LintHelper {
	return &realLintHelper{
		runner:           runner,
		lintTimeout:      cfg.LintTimeout,
		typeCheckTimeout: cfg.TypeCheckTimeout,
		lockDir:          cfg.LockDir,
		logger:           logger,
	}
}

// Diagnostics lints filePath and, for TypeScript, type-checks the project in dir.
func (h *realLintHelper) Diagnostics(ctx context.Context, dir string, filePath string) []string {
	if !IsSourceFile(filePath) {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, projectManifest)); err != nil {
		return nil
	}

	var results []string
	if out := h.eslint(ctx, dir, filePath); out != "" {
		results = append(results, "ESLint issues:\n"+out)
	}
	if IsTypedSourceFile(filePath) {
		if out := h.typeCheck(ctx, dir); out != "" {
			results = append(results, "TypeScript issues:\n"+out)
		}
	}
	return results
}

func (h *realLintHelper) eslint(ctx context.Context, dir, filePath string) string {
	ctx, cancel := context.WithTimeout(ctx, h.lintTimeout)
	defer cancel()

	out, err := h.runner.ESLint(ctx, dir, filePath)
	if err != nil {
		h.logger.Debug("eslint produced no result", zap.String("file", filePath), zap.Error(err))
		return ""
	}
	return out
}

// typeCheck runs tsc unless another hook process is already checking the
// same project, in which case that run's report covers this write.
func (h *realLintHelper) typeCheck(ctx context.Context, dir string) string {
	lock := flock.New(h.lockPath(dir))
	locked, err := lock.TryLock()
	if err != nil {
		h.logger.Debug("type-check lock unavailable", zap.String("dir", dir), zap.Error(err))
		return ""
	}
	if !locked {
		h.logger.Debug("type-check already running", zap.String("dir", dir))
		return ""
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			h.logger.Debug("failed to release type-check lock", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, h.typeCheckTimeout)
	defer cancel()

	out, err := h.runner.TypeCheck(ctx, dir)
	if err != nil {
		h.logger.Debug("tsc produced no result", zap.String("dir", dir), zap.Error(err))
		return ""
	}
	return out
}

// lockPath derives a stable lock file name from the project directory.
func (h *realLintHelper) lockPath(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+dir))
	return filepath.Join(h.lockDir, "brf-hooks-tsc-"+id.String()+".lock")
}
