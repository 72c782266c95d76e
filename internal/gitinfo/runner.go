package gitinfo

import (
	"context"
	"fmt"
	"os/exec"
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Dir is the working directory of the child process. Empty means the current one.
	Dir string
}

// Run starts the command, waits for it to exit and returns the captured stdout.
// A launch failure or a non-zero exit status is returned as an error.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}

	return out, nil
}
