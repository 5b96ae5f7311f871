package paths

import (
	"path/filepath"
	"testing"

	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	t.Run("empty workspace is an error", func(t *testing.T) {
		_, err := NewLayout("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("tilde is expanded", func(t *testing.T) {
		t.Setenv("HOME", "/home/testuser")
		layout, err := NewLayout("~/ComfyUI")
		require.NoError(t, err)
		assert.Equal(t, "/home/testuser/ComfyUI", layout.Workspace())
	})
}

func TestLayoutTarget(t *testing.T) {
	layout, err := NewLayout("/ws")
	require.NoError(t, err)

	tests := []struct {
		name     string
		folder   string
		expected string
	}{
		{
			name:     "workflows live under the user profile",
			folder:   "workflows",
			expected: "/ws/user/default/workflows",
		},
		{
			name:     "snapshots live under ComfyUI-Manager",
			folder:   "snapshots",
			expected: "/ws/user/default/ComfyUI-Manager/snapshots",
		},
		{
			name:     "models are top-level",
			folder:   "models",
			expected: "/ws/models",
		},
		{
			name:     "input is top-level",
			folder:   "input",
			expected: "/ws/input",
		},
		{
			name:     "output is top-level",
			folder:   "output",
			expected: "/ws/output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, layout.Target(tt.folder))
		})
	}
}

func TestLayoutManagerPaths(t *testing.T) {
	layout, err := NewLayout("/ws")
	require.NoError(t, err)

	assert.Equal(t, "/ws/user/default/ComfyUI-Manager/config.ini", layout.ManagerConfigPath())
	assert.Equal(t, "/ws/user/default/ComfyUI-Manager/snapshots", layout.SnapshotsPath())
	assert.Equal(t, "/ws/user/default/comfy.settings.json", layout.SettingsPath("comfy.settings.json"))
}

func TestDefaultWorkspace(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")
	ws, err := DefaultWorkspace()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/testuser", "ComfyUI"), ws)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bare tilde", input: "~", expected: "/home/testuser"},
		{name: "tilde with path", input: "~/models", expected: "/home/testuser/models"},
		{name: "absolute path unchanged", input: "/data/models", expected: "/data/models"},
		{name: "env var expanded", input: "$HOME/models", expected: "/home/testuser/models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandHome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
