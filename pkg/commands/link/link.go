// Package link implements the link command: it replaces workspace
// folders with symlinks into the project directories.
package link

import (
	"fmt"
	"path/filepath"

	"github.com/drmbt/comfy-config/pkg/commands/internal"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/symlink"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Options defines the options for the link command
type Options struct {
	// Config is the resolved configuration
	Config *config.Config
	// FS is the filesystem the links are created on
	FS types.FS
	// ProjectRoot is the directory searched for settings files
	ProjectRoot string
	// Prompter resolves unconfigured folder sources interactively
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

// Run plans and executes the configured links
func Run(opts Options) ([]types.LinkResult, error) {
	logger := logging.GetLogger("commands.link")
	logger.Debug().Str("command", "link").Msg("Executing command")

	layout, err := internal.ResolveLayout(opts.Config)
	if err != nil {
		return nil, err
	}

	specs, err := BuildSpecs(opts.FS, opts.Config, opts.ProjectRoot, opts.prompter())
	if err != nil {
		return nil, err
	}

	actions, err := symlink.Plan(layout, specs)
	if err != nil {
		return nil, err
	}

	results := symlink.Execute(opts.FS, actions, symlink.Options{DryRun: opts.DryRun})
	logger.Info().Int("links", len(results)).Msg("Command finished")
	return results, nil
}

// folders are the linkable workspace directories, in prompt order
var folders = []struct {
	name   string
	source func(l config.Links) string
}{
	{"models", func(l config.Links) string { return l.Models }},
	{"input", func(l config.Links) string { return l.Input }},
	{"output", func(l config.Links) string { return l.Output }},
	{"workflows", func(l config.Links) string { return l.Workflows }},
	{"snapshots", func(l config.Links) string { return l.Snapshots }},
}

// BuildSpecs turns the configuration into link specs. Interactive
// prompters get asked per folder, with the configured source as the
// default; empty answers skip the folder. Settings files found in the
// project root are linked as files.
func BuildSpecs(fsys types.FS, cfg *config.Config, projectRoot string, p *prompts.Prompter) ([]types.LinkSpec, error) {
	specs := make([]types.LinkSpec, 0, len(folders)+len(paths.SettingsFiles))

	for _, folder := range folders {
		source := folder.source(cfg.Links)
		if p.Interactive {
			answer, err := p.Input(fmt.Sprintf("Path to link for %s", folder.name), source)
			if err != nil {
				return nil, err
			}
			source = answer
		}
		specs = append(specs, types.LinkSpec{
			Name:   folder.name,
			Source: source,
			Kind:   types.LinkDir,
		})
	}

	for _, name := range paths.SettingsFiles {
		source := filepath.Join(projectRoot, name)
		if _, err := fsys.Stat(source); err != nil {
			continue
		}
		specs = append(specs, types.LinkSpec{
			Name:   name,
			Source: source,
			Kind:   types.LinkFile,
		})
	}

	return specs, nil
}
