// Package status implements the status command: it reports the state of
// the comfy CLI, the workspace, the configured links, and the
// ComfyUI-Manager configuration without changing anything.
package status

import (
	"context"

	"github.com/drmbt/comfy-config/pkg/comfy"
	"github.com/drmbt/comfy-config/pkg/commands/internal"
	"github.com/drmbt/comfy-config/pkg/commands/link"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/manager"
	"github.com/drmbt/comfy-config/pkg/symlink"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Options defines the options for the status command
type Options struct {
	// Config is the resolved configuration
	Config *config.Config
	// FS is the filesystem inspected
	FS types.FS
	// Client is the comfy CLI client
	Client *comfy.Client
	// ProjectRoot is the directory searched for settings files
	ProjectRoot string
}

// Report is the observed state of the workspace configuration
type Report struct {
	// CLIInstalled reports whether the comfy executable responds
	CLIInstalled bool
	// ActiveWorkspace is comfy's configured default workspace, if any
	ActiveWorkspace string
	// Workspace is the workspace the configuration resolves to
	Workspace string
	// Links is the per-link state
	Links []symlink.VerifyResult
	// ManagerConfigured reports whether a config.ini is in place
	ManagerConfigured bool
	// Snapshots are the snapshot files present in the workspace
	Snapshots []string
}

// Run inspects the workspace and returns a report
func Run(ctx context.Context, opts Options) (*Report, error) {
	logger := logging.GetLogger("commands.status")
	logger.Debug().Str("command", "status").Msg("Executing command")

	layout, err := internal.ResolveLayout(opts.Config)
	if err != nil {
		return nil, err
	}

	report := &Report{Workspace: layout.Workspace()}

	report.CLIInstalled = opts.Client.Installed(ctx)
	if report.CLIInstalled {
		active, err := opts.Client.Which(ctx)
		if err != nil {
			return nil, err
		}
		report.ActiveWorkspace = active
	}

	specs, err := link.BuildSpecs(opts.FS, opts.Config, opts.ProjectRoot, prompts.NewConsole(true))
	if err != nil {
		return nil, err
	}
	actions, err := symlink.Plan(layout, specs)
	if err != nil {
		return nil, err
	}
	report.Links = symlink.Verify(opts.FS, actions)

	if info, err := opts.FS.Stat(layout.ManagerConfigPath()); err == nil && info.Mode().IsRegular() {
		report.ManagerConfigured = true
	}
	report.Snapshots = manager.AvailableSnapshots(opts.FS, layout)

	return report, nil
}
