// Package unlink implements the unlink command: it removes the symlinks
// the link command created, leaving everything else in place.
package unlink

import (
	"github.com/drmbt/comfy-config/pkg/commands/internal"
	"github.com/drmbt/comfy-config/pkg/commands/link"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/symlink"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Options defines the options for the unlink command
type Options struct {
	// Config is the resolved configuration
	Config *config.Config
	// FS is the filesystem the links are removed from
	FS types.FS
	// ProjectRoot is the directory searched for settings files
	ProjectRoot string
}

// Run removes the configured links. Only symlinks pointing at the
// configured sources are touched; unlink never prompts.
func Run(opts Options) ([]types.LinkResult, error) {
	logger := logging.GetLogger("commands.unlink")
	logger.Debug().Str("command", "unlink").Msg("Executing command")

	layout, err := internal.ResolveLayout(opts.Config)
	if err != nil {
		return nil, err
	}

	specs, err := link.BuildSpecs(opts.FS, opts.Config, opts.ProjectRoot, prompts.NewConsole(true))
	if err != nil {
		return nil, err
	}

	actions, err := symlink.Plan(layout, specs)
	if err != nil {
		return nil, err
	}

	results := symlink.Unlink(opts.FS, actions)
	logger.Info().Int("links", len(results)).Msg("Command finished")
	return results, nil
}
