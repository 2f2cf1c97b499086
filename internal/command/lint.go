package command

//go:generate mockgen -source=lint.go -destination=mock_lint.go -package=command

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// LintRunner abstracts the external lint and type-check tools.
// Both methods return the tool's diagnostics when it exits non-zero,
// an empty string when it exits cleanly, and an error when the tool
// could not be run to completion.
type LintRunner interface {
	// ESLint lints a single file with the project's eslint
	ESLint(ctx context.Context, dir string, filePath string) (string, error)
	// TypeCheck runs tsc over the whole project without emitting output
	TypeCheck(ctx context.Context, dir string) (string, error)
}

type lintRunner struct {
	runner Runner
}

// NewLintRunner creates a new LintRunner instance
func NewLintRunner(runner Runner) LintRunner {
	return &lintRunner{
		runner: runner,
	}
}

// ESLint runs `npx eslint <file>` in dir
func (l *lintRunner) ESLint(ctx context.Context, dir string, filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	stdout, stderr, err := l.runner.RunInDir(ctx, dir, "npx", "eslint", filePath)
	return diagnostics(ctx, "eslint", stdout, stderr, err)
}

// TypeCheck runs `npx tsc --noEmit --skipLibCheck` in dir
func (l *lintRunner) TypeCheck(ctx context.Context, dir string) (string, error) {
	stdout, stderr, err := l.runner.RunInDir(ctx, dir, "npx", "tsc", "--noEmit", "--skipLibCheck")
	return diagnostics(ctx, "tsc", stderr, stdout, err)
}

// diagnostics interprets a finished tool run. preferred is the stream the
// tool normally reports on; fallback is used when preferred is empty.
func diagnostics(ctx context.Context, tool, preferred, fallback string, err error) (string, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%s did not finish: %w", tool, ctxErr)
	}
	if err == nil {
		return "", nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return "", fmt.Errorf("failed to run %s: %w", tool, err)
	}

	if preferred != "" {
		return preferred, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("%s exited with %w but produced no output", tool, err)
}
