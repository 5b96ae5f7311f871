// Package setup implements the setup command: the full bootstrap run
// that installs the comfy CLI, resolves or installs the workspace, and
// then applies links, manager config, and snapshot restore.
package setup

import (
	"context"
	"fmt"

	"github.com/drmbt/comfy-config/pkg/comfy"
	"github.com/drmbt/comfy-config/pkg/commands/link"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/manager"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Options defines the options for the setup command
type Options struct {
	// Config is the resolved configuration
	Config *config.Config
	// FS is the filesystem the setup mutates
	FS types.FS
	// Client is the comfy CLI client
	Client *comfy.Client
	// ProjectRoot is the directory searched for settings files
	ProjectRoot string
	// Prompter asks for consent and missing values
	Prompter *prompts.Prompter
	// DryRun reports what would happen without making changes
	DryRun bool
}

func (o Options) prompter() *prompts.Prompter {
	if o.Prompter != nil {
		return o.Prompter
	}
	return prompts.NewConsole(o.Config.SkipPrompt)
}

// Result is the outcome of a setup run
type Result struct {
	// Workspace is the resolved workspace path
	Workspace string
	// Links are the per-link results
	Links []types.LinkResult
	// Warnings are non-fatal step failures, in run order
	Warnings []string
}

// Run performs the full setup. A workspace that cannot be resolved
// aborts the run; failures in the later steps are recorded as warnings
// and the remaining steps still execute.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.setup")
	done := logging.LogOperationStart(logger, "setup")
	defer done()

	p := opts.prompter()

	if err := ensureCLI(ctx, opts, p); err != nil {
		return nil, err
	}

	workspace, err := resolveWorkspace(ctx, opts, p)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("workspace", workspace).Msg("Workspace resolved")

	// The remaining steps run against the resolved workspace even when
	// the configuration named a different one.
	cfg := *opts.Config
	cfg.Workspace = workspace

	result := &Result{Workspace: workspace}

	links, err := link.Run(link.Options{
		Config:      &cfg,
		FS:          opts.FS,
		ProjectRoot: opts.ProjectRoot,
		Prompter:    p,
		DryRun:      opts.DryRun,
	})
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("links: %v", err))
	}
	result.Links = links

	layout, err := paths.NewLayout(workspace)
	if err != nil {
		return nil, err
	}

	mgrOpts := manager.Options{Prompter: p, DryRun: opts.DryRun}
	if err := manager.SetupConfig(opts.FS, layout, cfg.Manager.Config, mgrOpts); err != nil {
		logger.Error().Err(err).Msg("Manager config step failed")
		result.Warnings = append(result.Warnings, fmt.Sprintf("manager config: %v", err))
	}

	if err := manager.RestoreSnapshot(ctx, opts.Client, opts.FS, layout, cfg.Manager.Snapshot, mgrOpts); err != nil {
		logger.Error().Err(err).Msg("Snapshot restore step failed")
		result.Warnings = append(result.Warnings, fmt.Sprintf("snapshot restore: %v", err))
	}

	return result, nil
}

// ensureCLI checks for comfy-cli and installs it through pip after the
// user consents. A declined install aborts the setup.
func ensureCLI(ctx context.Context, opts Options, p *prompts.Prompter) error {
	logger := logging.GetLogger("commands.setup")

	if opts.Client.Installed(ctx) {
		logger.Debug().Msg("comfy-cli already installed")
		return nil
	}

	ok, err := p.Confirm("comfy-cli is not installed. Install it now?", true)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrCommandNotFound, "comfy-cli is required, aborting")
	}

	if opts.DryRun {
		logger.Info().Msg("dry run - would install comfy-cli")
		return nil
	}
	if err := opts.Client.InstallCLI(ctx); err != nil {
		return err
	}
	if !opts.Client.Installed(ctx) {
		return errors.New(errors.ErrCommandNotFound, "comfy-cli still not available after install")
	}
	return nil
}

// resolveWorkspace returns the workspace the setup will configure. An
// active comfy workspace wins; otherwise the configured (or default)
// path is adopted when it exists, or installed after consent.
func resolveWorkspace(ctx context.Context, opts Options, p *prompts.Prompter) (string, error) {
	logger := logging.GetLogger("commands.setup")

	active, err := opts.Client.Which(ctx)
	if err != nil {
		return "", err
	}
	if active != "" {
		logger.Debug().Str("workspace", active).Msg("comfy reports an active workspace")
		return active, nil
	}

	candidate := opts.Config.Workspace
	if candidate == "" {
		candidate, err = paths.DefaultWorkspace()
		if err != nil {
			return "", err
		}
	}

	info, statErr := opts.FS.Stat(candidate)
	exists := statErr == nil && info.IsDir()

	if exists {
		ok, err := p.Confirm(fmt.Sprintf("Use existing ComfyUI at %s?", candidate), true)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errors.New(errors.ErrWorkspaceNotFound, "no workspace selected")
		}
		if !opts.DryRun {
			if err := opts.Client.SetDefault(ctx, candidate); err != nil {
				return "", err
			}
		}
		return candidate, nil
	}

	ok, err := p.Confirm(fmt.Sprintf("Install ComfyUI at %s?", candidate), true)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New(errors.ErrWorkspaceNotFound, "no workspace selected")
	}

	if opts.DryRun {
		logger.Info().Str("workspace", candidate).Msg("dry run - would install ComfyUI")
		return candidate, nil
	}

	if err := opts.Client.InstallWorkspace(ctx, candidate, opts.Config.GPU); err != nil {
		return "", err
	}
	if err := opts.Client.SetDefault(ctx, candidate); err != nil {
		return "", err
	}

	// Verify the install actually registered
	active, err = opts.Client.Which(ctx)
	if err != nil {
		return "", err
	}
	if active == "" {
		if _, statErr := opts.FS.Stat(candidate); statErr != nil {
			return "", errors.Newf(errors.ErrWorkspaceInstall, "workspace %s not present after install", candidate)
		}
		active = candidate
	}
	return active, nil
}
