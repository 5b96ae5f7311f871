package comfy

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	cerr "github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/types"
)

// DefaultTimeout bounds a single external command. Workspace installs
// download models and can legitimately take a while.
const DefaultTimeout = 30 * time.Minute

// execRunner runs commands through os/exec
type execRunner struct {
	timeout time.Duration
}

// NewRunner creates a types.Runner backed by os/exec
func NewRunner() types.Runner {
	return &execRunner{timeout: DefaultTimeout}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (types.CommandResult, error) {
	logging.LogCommand(name, args)
	logger := logging.GetLogger("comfy.runner")

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := types.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return result, cerr.Wrapf(err, cerr.ErrCommandNotFound, "command not found: %s", name)
		}
		logger.Error().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Str("stderr", result.Stderr).
			Msg("Command execution failed")
		return result, cerr.Wrapf(err, cerr.ErrCommandRun, "command failed: %s", name)
	}

	logger.Debug().
		Str("command", name).
		Int("exitCode", result.ExitCode).
		Msg("Command completed")
	return result, nil
}

func (r *execRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
