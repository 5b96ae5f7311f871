// Package manager handles ComfyUI-Manager concerns: copying a
// config.ini into the workspace and restoring extension snapshots
// through the comfy CLI.
package manager

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/drmbt/comfy-config/pkg/comfy"
	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

// Options controls the manager flows
type Options struct {
	// Prompter resolves missing sources interactively. A non-interactive
	// prompter makes every unset source mean "skip".
	Prompter *prompts.Prompter
	// DryRun reports what would happen without mutating or restoring
	DryRun bool
}

func (o Options) prompter() *prompts.Prompter {
	if o.Prompter != nil {
		return o.Prompter
	}
	return prompts.NewConsole(true)
}

// SetupConfig copies a ComfyUI-Manager config.ini into the workspace.
// An unset or missing source skips the step with a log line rather than
// failing: the config is optional.
func SetupConfig(fsys types.FS, layout paths.Layout, source string, opts Options) error {
	logger := logging.GetLogger("manager.config")
	p := opts.prompter()

	resolved, err := resolveConfigSource(fsys, source, p)
	if err != nil {
		return err
	}
	if resolved == "" {
		logger.Info().Msg("No ComfyUI-Manager config.ini specified, skipping configuration")
		return nil
	}
	if !isFile(fsys, resolved) {
		logger.Warn().Str("path", resolved).Msg("config.ini not found, skipping configuration")
		return nil
	}

	target := layout.ManagerConfigPath()
	if opts.DryRun {
		logger.Info().Str("source", resolved).Str("target", target).Msg("dry run - would copy config.ini")
		return nil
	}

	if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(target))
	}
	if _, err := fsys.Lstat(target); err == nil {
		logger.Info().Str("target", target).Msg("Removing existing config.ini")
		if err := fsys.Remove(target); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove existing %s", target)
		}
	}

	if err := copyFile(fsys, resolved, target); err != nil {
		return err
	}
	logger.Info().Str("target", target).Msg("Copied ComfyUI-Manager config.ini")
	return nil
}

// resolveConfigSource picks the config.ini to copy. The configured
// default is used when it points at a real file; interactive mode falls
// back to prompting for a path.
func resolveConfigSource(fsys types.FS, source string, p *prompts.Prompter) (string, error) {
	if source != "" {
		expanded, err := paths.ExpandHome(source)
		if err != nil {
			return "", err
		}
		if isFile(fsys, expanded) || !p.Interactive {
			return expanded, nil
		}
	}

	if !p.Interactive {
		return "", nil
	}

	response, err := p.Input("Enter path to ComfyUI-Manager config.ini", "")
	if err != nil {
		return "", err
	}
	if response == "" {
		return "", nil
	}
	return paths.ExpandHome(response)
}

func copyFile(fsys types.FS, source, target string) error {
	info, err := fsys.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", source)
	}
	data, err := fsys.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot read %s", source)
	}
	if err := fsys.WriteFile(target, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot write %s", target)
	}
	return nil
}

// AvailableSnapshots lists the *.json snapshot files in the workspace
// snapshots directory, sorted by name. A missing directory yields nil.
func AvailableSnapshots(fsys types.FS, layout paths.Layout) []string {
	entries, err := fsys.ReadDir(layout.SnapshotsPath())
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// RestoreSnapshot resolves a snapshot file and restores it through the
// comfy CLI. Unset or missing snapshots skip the step.
func RestoreSnapshot(ctx context.Context, client *comfy.Client, fsys types.FS, layout paths.Layout, source string, opts Options) error {
	logger := logging.GetLogger("manager.snapshot")
	p := opts.prompter()

	resolved, err := resolveSnapshotSource(fsys, layout, source, p)
	if err != nil {
		return err
	}
	if resolved == "" {
		logger.Info().Msg("No snapshot specified, skipping restore")
		return nil
	}

	if !isFile(fsys, resolved) {
		logger.Warn().Str("path", resolved).Msg("Snapshot file not found, skipping restore")
		return nil
	}

	if opts.DryRun {
		logger.Info().Str("snapshot", resolved).Msg("dry run - would restore snapshot")
		return nil
	}

	logger.Info().Str("snapshot", resolved).Msg("Restoring snapshot")
	return client.RestoreSnapshot(ctx, resolved)
}

// resolveSnapshotSource picks the snapshot to restore. Interactive mode
// offers the workspace's snapshots with the configured one as default,
// and falls back to a free-form path prompt when none exist.
func resolveSnapshotSource(fsys types.FS, layout paths.Layout, source string, p *prompts.Prompter) (string, error) {
	if !p.Interactive {
		if source == "" {
			return "", nil
		}
		return paths.ExpandHome(source)
	}

	available := AvailableSnapshots(fsys, layout)

	def := source
	if source != "" && len(available) > 0 {
		def = filepath.Base(source)
	}

	var response string
	var err error
	if len(available) > 0 {
		response, err = p.Select("Select snapshot to restore", available, def)
	} else {
		response, err = p.Input("Enter path to snapshot file", def)
	}
	if err != nil {
		return "", err
	}
	if response == "" {
		return "", nil
	}

	// A bare file name refers to the workspace snapshots directory
	if !filepath.IsAbs(response) && !strings.ContainsRune(response, os.PathSeparator) && !strings.HasPrefix(response, "~") {
		return filepath.Join(layout.SnapshotsPath(), response), nil
	}
	return paths.ExpandHome(response)
}

func isFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
