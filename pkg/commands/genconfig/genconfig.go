// Package genconfig implements the genconfig command: it emits a starter
// comfy-config.toml and .env for a project.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
)

// Options defines the options for the genconfig command
type Options struct {
	// ProjectRoot is where the files are written. Empty means the
	// current directory.
	ProjectRoot string
	// Write writes the files instead of returning their content
	Write bool
	// EnvExample also emits a .env with the legacy variable names
	EnvExample bool
}

// Result holds the generated content and any files written
type Result struct {
	ConfigContent string
	EnvContent    string
	FilesWritten  []string
}

const configHeader = `# comfy-config project configuration.
# Values here are overridden by .env and by COMFY_* environment variables.

`

const envExample = `# Legacy environment overrides, also read from the process environment.
#COMFY_PATH=~/ComfyUI
#MODELS_PATH=./models
#INPUT_PATH=./input
#OUTPUT_PATH=./output
#WORKFLOWS_PATH=./workflows
#SNAPSHOTS_PATH=./snapshots
#MANAGER_CONFIG=./config.ini
#SNAPSHOT_PATH=./snapshots/snapshot.json
`

// Run generates the starter configuration
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	defaults, err := config.Default()
	if err != nil {
		return nil, err
	}
	data, err := toml.Marshal(defaults)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}

	result := &Result{
		ConfigContent: configHeader + string(data),
		EnvContent:    envExample,
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	root := opts.ProjectRoot
	if root == "" {
		root = "."
	}

	targets := map[string]string{
		filepath.Join(root, config.ConfigFileNames[0]): result.ConfigContent,
	}
	if opts.EnvExample {
		targets[filepath.Join(root, config.EnvFileName)] = result.EnvContent
	}

	for path, content := range targets {
		// Never clobber an existing project file
		if _, err := os.Stat(path); err == nil {
			logger.Warn().Str("path", path).Msg("File already exists, skipping")
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
		}
		logger.Info().Str("path", path).Msg("Written config file")
		result.FilesWritten = append(result.FilesWritten, path)
	}

	return result, nil
}
