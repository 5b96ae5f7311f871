package comfy

import (
	"context"
	"strings"

	cerr "github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/types"
)

// DefaultBinary is the comfy-cli executable name
const DefaultBinary = "comfy"

// DefaultPython is the interpreter used to pip-install comfy-cli
const DefaultPython = "python3"

// PipPackage is the pip package providing the comfy executable
const PipPackage = "comfy-cli"

// GPU vendor flags accepted by `comfy install`
const (
	GPUNvidia   = "nvidia"
	GPUAMD      = "amd"
	GPUIntelArc = "intel-arc"
	GPUMSeries  = "m-series"
	GPUCPU      = "cpu"
)

// ValidGPU reports whether vendor is a gpu flag comfy install accepts
func ValidGPU(vendor string) bool {
	switch vendor {
	case GPUNvidia, GPUAMD, GPUIntelArc, GPUMSeries, GPUCPU:
		return true
	}
	return false
}

// Client wraps the comfy-cli executable
type Client struct {
	runner types.Runner

	// Binary is the comfy executable name or path
	Binary string
	// Python is the interpreter used for pip installs
	Python string
}

// NewClient creates a Client using the given runner
func NewClient(runner types.Runner) *Client {
	return &Client{
		runner: runner,
		Binary: DefaultBinary,
		Python: DefaultPython,
	}
}

// Installed reports whether comfy-cli is available, probed with a
// version call like the original setup did.
func (c *Client) Installed(ctx context.Context) bool {
	_, err := c.runner.Run(ctx, c.Binary, "--version")
	return err == nil
}

// InstallCLI installs comfy-cli through pip
func (c *Client) InstallCLI(ctx context.Context) error {
	logger := logging.GetLogger("comfy.client")
	logger.Info().Str("python", c.Python).Msg("Installing comfy-cli")

	result, err := c.runner.Run(ctx, c.Python, "-m", "pip", "install", PipPackage)
	if err != nil {
		return cerr.Wrapf(err, cerr.ErrCommandRun, "failed to install comfy-cli: %s", strings.TrimSpace(result.Stderr))
	}
	logger.Info().Msg("Successfully installed comfy-cli")
	return nil
}

// Which returns the active workspace path, or "" when comfy has none
// configured. The path is the trimmed stdout of `comfy which`.
func (c *Client) Which(ctx context.Context) (string, error) {
	result, err := c.runner.Run(ctx, c.Binary, "which")
	if err != nil {
		// A non-zero exit just means no workspace is configured
		if cerr.IsErrorCode(err, cerr.ErrCommandRun) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

// SetDefault makes path the default comfy workspace
func (c *Client) SetDefault(ctx context.Context, path string) error {
	if _, err := c.runner.Run(ctx, c.Binary, "set-default", path); err != nil {
		return cerr.Wrapf(err, cerr.ErrCommandRun, "failed to set default workspace %s", path)
	}
	return nil
}

// InstallWorkspace installs ComfyUI at path for the given gpu vendor
func (c *Client) InstallWorkspace(ctx context.Context, path, gpu string) error {
	if !ValidGPU(gpu) {
		return cerr.Newf(cerr.ErrInvalidInput, "unknown gpu vendor: %s", gpu)
	}

	logger := logging.GetLogger("comfy.client")
	logger.Info().Str("workspace", path).Str("gpu", gpu).Msg("Installing ComfyUI")

	_, err := c.runner.Run(ctx, c.Binary, "--workspace", path, "--skip-prompt", "install", "--"+gpu)
	if err != nil {
		return cerr.Wrapf(err, cerr.ErrWorkspaceInstall, "failed to install ComfyUI at %s", path)
	}
	return nil
}

// RestoreSnapshot restores an extension snapshot through ComfyUI-Manager
func (c *Client) RestoreSnapshot(ctx context.Context, path string) error {
	logger := logging.GetLogger("comfy.client")
	logger.Info().Str("snapshot", path).Msg("Restoring snapshot")

	result, err := c.runner.Run(ctx, c.Binary, "node", "restore-snapshot", path)
	if err != nil {
		return cerr.Wrapf(err, cerr.ErrCommandRun, "failed to restore snapshot: %s", strings.TrimSpace(result.Stderr))
	}
	logger.Info().Msg("Snapshot restored successfully")
	return nil
}
