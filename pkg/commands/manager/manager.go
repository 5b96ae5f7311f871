// Package manager implements the manager command: it copies a
// ComfyUI-Manager config.ini into the workspace.
package manager

import (
	"github.com/drmbt/comfy-config/pkg/commands/internal"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/logging"
	mgr "github.com/drmbt/comfy-config/pkg/manager"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Options defines the options for the manager command
type Options struct {
	// Config is the resolved configuration
	Config *config.Config
	// FS is the filesystem the config is copied on
	FS types.FS
	// Source overrides the configured config.ini path
	Source string
	// Prompter resolves a missing source interactively
	Prompter *prompts.Prompter
	// DryRun reports what would happen without making changes
	DryRun bool
}

// Run copies the ComfyUI-Manager config.ini into the workspace
func Run(opts Options) error {
	logger := logging.GetLogger("commands.manager")
	logger.Debug().Str("command", "manager").Msg("Executing command")

	layout, err := internal.ResolveLayout(opts.Config)
	if err != nil {
		return err
	}

	source := opts.Source
	if source == "" {
		source = opts.Config.Manager.Config
	}

	return mgr.SetupConfig(opts.FS, layout, source, mgr.Options{
		Prompter: opts.Prompter,
		DryRun:   opts.DryRun,
	})
}
