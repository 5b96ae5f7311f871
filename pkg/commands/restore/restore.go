// Package restore implements the restore command: it restores a
// ComfyUI-Manager extension snapshot through the comfy CLI.
package restore

import (
	"context"

	"github.com/drmbt/comfy-config/pkg/comfy"
	"github.com/drmbt/comfy-config/pkg/commands/internal"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/manager"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Options defines the options for the restore command
type Options struct {
	// Config is the resolved configuration
	Config *config.Config
	// FS is the filesystem the snapshots live on
	FS types.FS
	// Client is the comfy CLI client
	Client *comfy.Client
	// Source overrides the configured snapshot path
	Source string
	// Prompter resolves a missing source interactively
	Prompter *prompts.Prompter
	// DryRun reports what would happen without restoring
	DryRun bool
}

// Run restores the selected snapshot
func Run(ctx context.Context, opts Options) error {
	logger := logging.GetLogger("commands.restore")
	logger.Debug().Str("command", "restore").Msg("Executing command")

	layout, err := internal.ResolveLayout(opts.Config)
	if err != nil {
		return err
	}

	source := opts.Source
	if source == "" {
		source = opts.Config.Manager.Snapshot
	}

	return manager.RestoreSnapshot(ctx, opts.Client, opts.FS, layout, source, manager.Options{
		Prompter: opts.Prompter,
		DryRun:   opts.DryRun,
	})
}
