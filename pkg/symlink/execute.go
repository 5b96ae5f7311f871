package symlink

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/types"
)

// Options controls link execution
type Options struct {
	// DryRun reports what would happen without mutating anything
	DryRun bool
}

// Execute applies a plan. Each action runs independently: a failure is
// recorded in its result and the remaining links are still attempted.
func Execute(fsys types.FS, actions []types.LinkAction, opts Options) []types.LinkResult {
	logger := logging.GetLogger("symlink.execute")
	done := logging.LogOperationStart(logger, "execute links")
	defer done()

	results := make([]types.LinkResult, 0, len(actions))
	for _, action := range actions {
		results = append(results, executeOne(fsys, action, opts))
	}
	return results
}

func executeOne(fsys types.FS, action types.LinkAction, opts Options) types.LinkResult {
	logger := logging.GetLogger("symlink.execute").With().
		Str("source", action.Source).
		Str("target", action.Target).
		Logger()

	// Missing directory sources are created; missing file sources mean
	// there is nothing to link, so skip without mutating the workspace.
	if _, err := fsys.Lstat(action.Source); err != nil {
		if !os.IsNotExist(err) {
			return errResult(action, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat source %s", action.Source))
		}
		if action.Kind == types.LinkFile {
			logger.Warn().Msg("source file does not exist, skipping")
			return types.LinkResult{Action: action, Status: types.StatusSkipped}
		}
		if opts.DryRun {
			logger.Info().Msg("dry run - would create source directory")
		} else {
			logger.Info().Msg("creating source directory")
			if err := fsys.MkdirAll(action.Source, 0755); err != nil {
				return errResult(action, errors.Wrapf(err, errors.ErrDirCreate, "cannot create source directory %s", action.Source))
			}
		}
	}

	if opts.DryRun {
		logger.Info().Msg("dry run - would link")
		return types.LinkResult{Action: action, Status: types.StatusWouldCreate}
	}

	if err := fsys.MkdirAll(filepath.Dir(action.Target), 0755); err != nil {
		return errResult(action, errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", action.Target))
	}

	replaced, err := removeExisting(fsys, action.Target)
	if err != nil {
		return errResult(action, err)
	}

	if err := fsys.Symlink(action.Source, action.Target); err != nil {
		return errResult(action, errors.Wrapf(err, errors.ErrLinkCreate, "cannot create symlink %s", action.Target))
	}

	status := types.StatusCreated
	if replaced {
		status = types.StatusReplaced
	}
	logger.Info().Str("status", string(status)).Msg("linked")
	return types.LinkResult{Action: action, Status: status}
}

// removeExisting clears whatever occupies target. Real directories are
// removed recursively; files and symlinks (live or dangling) with Remove.
func removeExisting(fsys types.FS, target string) (bool, error) {
	info, err := fsys.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat target %s", target)
	}

	logger := logging.GetLogger("symlink.execute")
	logger.Info().Str("target", target).Msg("removing existing target")

	if info.IsDir() && info.Mode()&fs.ModeSymlink == 0 {
		if err := fsys.RemoveAll(target); err != nil {
			return false, errors.Wrapf(err, errors.ErrLinkRemove, "cannot remove directory %s", target)
		}
		return true, nil
	}

	if err := fsys.Remove(target); err != nil {
		return false, errors.Wrapf(err, errors.ErrLinkRemove, "cannot remove %s", target)
	}
	return true, nil
}

// Unlink removes the plan's targets, but only when they are symlinks
// pointing at the planned source. Anything else is left alone.
func Unlink(fsys types.FS, actions []types.LinkAction) []types.LinkResult {
	logger := logging.GetLogger("symlink.unlink")

	results := make([]types.LinkResult, 0, len(actions))
	for _, action := range actions {
		info, err := fsys.Lstat(action.Target)
		if err != nil {
			if os.IsNotExist(err) {
				results = append(results, types.LinkResult{Action: action, Status: types.StatusSkipped})
				continue
			}
			results = append(results, errResult(action, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat target %s", action.Target)))
			continue
		}

		if info.Mode()&fs.ModeSymlink == 0 {
			logger.Warn().Str("target", action.Target).Msg("target is not a symlink, leaving it alone")
			results = append(results, types.LinkResult{Action: action, Status: types.StatusSkipped})
			continue
		}

		dest, err := fsys.Readlink(action.Target)
		if err != nil {
			results = append(results, errResult(action, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", action.Target)))
			continue
		}
		if dest != action.Source {
			logger.Warn().
				Str("target", action.Target).
				Str("dest", dest).
				Msg("symlink points elsewhere, leaving it alone")
			results = append(results, types.LinkResult{Action: action, Status: types.StatusSkipped})
			continue
		}

		if err := fsys.Remove(action.Target); err != nil {
			results = append(results, errResult(action, errors.Wrapf(err, errors.ErrLinkRemove, "cannot remove symlink %s", action.Target)))
			continue
		}
		logger.Info().Str("target", action.Target).Msg("removed symlink")
		results = append(results, types.LinkResult{Action: action, Status: types.StatusRemoved})
	}
	return results
}

func errResult(action types.LinkAction, err error) types.LinkResult {
	logger := logging.GetLogger("symlink")
	logger.Error().Err(err).Str("target", action.Target).Msg("link operation failed")
	return types.LinkResult{Action: action, Status: types.StatusError, Err: err}
}
