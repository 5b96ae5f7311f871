// Package internal holds helpers shared by the command packages.
package internal

import (
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/paths"
)

// ResolveLayout builds the workspace layout from the configuration,
// falling back to the default workspace when none is configured.
func ResolveLayout(cfg *config.Config) (paths.Layout, error) {
	workspace := cfg.Workspace
	if workspace == "" {
		def, err := paths.DefaultWorkspace()
		if err != nil {
			return paths.Layout{}, err
		}
		workspace = def
	}
	return paths.NewLayout(workspace)
}
