package command

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=command

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Runner abstracts command execution for testability
type Runner interface {
	// RunInDir executes a command in a specific directory and returns its trimmed stdout and stderr
	RunInDir(ctx context.Context, dir string, name string, args ...string) (stdout string, stderr string, err error)
}

type runner struct{}

// NewRunner creates a Runner backed by os/exec
func NewRunner() Runner {
	return &runner{}
}

// RunInDir executes a command in a specific directory.
// The process is killed when ctx is done.
func (r *runner) RunInDir(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err
}
