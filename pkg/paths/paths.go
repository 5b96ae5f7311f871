// Package paths provides centralized path handling for comfy-config.
// It knows the directory layout of a ComfyUI workspace and maps project
// folder names to their workspace targets.
package paths

import (
	"os"
	"path/filepath"

	"github.com/drmbt/comfy-config/pkg/errors"
)

// Environment variable names
const (
	// EnvWorkspace is the primary environment variable for the workspace location
	EnvWorkspace = "COMFY_PATH"

	// EnvManagerConfig points at a ComfyUI-Manager config.ini to copy in
	EnvManagerConfig = "MANAGER_CONFIG"

	// EnvSnapshotPath points at a snapshot file to restore
	EnvSnapshotPath = "SNAPSHOT_PATH"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Workspace layout names.
// IMPORTANT: These constants mirror the directory structure ComfyUI and
// ComfyUI-Manager create inside a workspace. They are not configurable;
// changing them breaks the mapping between project and workspace.
const (
	// DefaultWorkspaceDir is the default workspace directory name under $HOME
	DefaultWorkspaceDir = "ComfyUI"

	// UserDir is the per-user settings tree inside the workspace
	UserDir = "user"

	// DefaultProfile is the profile directory under UserDir
	DefaultProfile = "default"

	// ManagerDir is ComfyUI-Manager's directory under the profile
	ManagerDir = "ComfyUI-Manager"

	// ManagerConfigFile is ComfyUI-Manager's configuration file name
	ManagerConfigFile = "config.ini"

	// WorkflowsDir is the workflows directory name
	WorkflowsDir = "workflows"

	// SnapshotsDir is the snapshots directory name
	SnapshotsDir = "snapshots"
)

// SettingsFiles are the per-profile settings files that are linked
// individually rather than as directories.
var SettingsFiles = []string{"comfy.settings.json", "jnodes.settings.json"}

// Layout maps project folder names to absolute paths inside a workspace
type Layout struct {
	workspace string
}

// NewLayout creates a Layout for the given workspace root. The path is
// home-expanded and made absolute.
func NewLayout(workspace string) (Layout, error) {
	if workspace == "" {
		return Layout{}, errors.New(errors.ErrInvalidInput, "workspace path not provided")
	}
	expanded, err := ExpandHome(workspace)
	if err != nil {
		return Layout{}, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return Layout{}, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve workspace path %s", workspace)
	}
	return Layout{workspace: abs}, nil
}

// Workspace returns the absolute workspace root
func (l Layout) Workspace() string {
	return l.workspace
}

// ProfileDir returns the default user profile directory (<ws>/user/default)
func (l Layout) ProfileDir() string {
	return filepath.Join(l.workspace, UserDir, DefaultProfile)
}

// ManagerConfigPath returns the target path for ComfyUI-Manager's config.ini
func (l Layout) ManagerConfigPath() string {
	return filepath.Join(l.ProfileDir(), ManagerDir, ManagerConfigFile)
}

// SnapshotsPath returns the workspace snapshots directory
func (l Layout) SnapshotsPath() string {
	return filepath.Join(l.ProfileDir(), ManagerDir, SnapshotsDir)
}

// WorkflowsPath returns the workspace workflows directory
func (l Layout) WorkflowsPath() string {
	return filepath.Join(l.ProfileDir(), WorkflowsDir)
}

// SettingsPath returns the target path for a per-profile settings file
func (l Layout) SettingsPath(name string) string {
	return filepath.Join(l.ProfileDir(), name)
}

// Target maps a project folder name to its workspace path. Workflows and
// snapshots live under the user profile; everything else is top-level.
func (l Layout) Target(name string) string {
	switch name {
	case WorkflowsDir:
		return l.WorkflowsPath()
	case SnapshotsDir:
		return l.SnapshotsPath()
	default:
		return filepath.Join(l.workspace, name)
	}
}

// DefaultWorkspace returns ~/ComfyUI, the location the comfy CLI installs
// to when none is configured.
func DefaultWorkspace() (string, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultWorkspaceDir), nil
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable. If both fail, it returns an error rather than using dangerous
// defaults.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands the ~ character to the user's home directory and
// expands environment variable references.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot expand ~")
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return os.ExpandEnv(path), nil
}
