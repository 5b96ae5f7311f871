// Package cmdutil holds the shared state the comfy-config subcommands
// build their command logic options from.
package cmdutil

import (
	"github.com/drmbt/comfy-config/pkg/comfy"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/filesystem"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Flags are the persistent root flags, shared by every subcommand
type Flags struct {
	Verbosity   int
	DryRun      bool
	SkipPrompt  bool
	Workspace   string
	ProjectRoot string
	EnvFile     string
}

// Root returns the project root the command runs against
func (f *Flags) Root() string {
	if f.ProjectRoot == "" {
		return "."
	}
	return f.ProjectRoot
}

// LoadConfig loads the configuration and applies the flag overrides
func (f *Flags) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ProjectRoot: f.ProjectRoot,
		EnvFile:     f.EnvFile,
	})
	if err != nil {
		return nil, err
	}

	if f.Workspace != "" {
		workspace, err := paths.ExpandHome(f.Workspace)
		if err != nil {
			return nil, err
		}
		cfg.Workspace = workspace
	}
	if f.SkipPrompt {
		cfg.SkipPrompt = true
	}
	return cfg, nil
}

// Prompter builds the console prompter honoring skip-prompt
func (f *Flags) Prompter(cfg *config.Config) *prompts.Prompter {
	return prompts.NewConsole(cfg.SkipPrompt)
}

// FS returns the filesystem commands operate on
func (f *Flags) FS() types.FS {
	return filesystem.NewOS()
}

// Client builds the comfy CLI client with the configured interpreter
func (f *Flags) Client(cfg *config.Config) *comfy.Client {
	client := comfy.NewClient(comfy.NewRunner())
	if cfg.Python != "" {
		client.Python = cfg.Python
	}
	return client
}
