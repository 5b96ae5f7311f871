package symlink

import (
	"testing"

	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLayout(t *testing.T, ws string) paths.Layout {
	t.Helper()
	layout, err := paths.NewLayout(ws)
	require.NoError(t, err)
	return layout
}

func TestPlan(t *testing.T) {
	layout := mustLayout(t, "/ws")

	tests := []struct {
		name          string
		specs         []types.LinkSpec
		expectedCount int
		expectedErr   errors.ErrorCode
		check         func(t *testing.T, actions []types.LinkAction)
	}{
		{
			name: "top level folder",
			specs: []types.LinkSpec{
				{Name: "models", Source: "/project/models"},
			},
			expectedCount: 1,
			check: func(t *testing.T, actions []types.LinkAction) {
				assert.Equal(t, "/project/models", actions[0].Source)
				assert.Equal(t, "/ws/models", actions[0].Target)
			},
		},
		{
			name: "workflows map into the user profile",
			specs: []types.LinkSpec{
				{Name: "workflows", Source: "/project/workflows"},
			},
			expectedCount: 1,
			check: func(t *testing.T, actions []types.LinkAction) {
				assert.Equal(t, "/ws/user/default/workflows", actions[0].Target)
			},
		},
		{
			name: "snapshots map under ComfyUI-Manager",
			specs: []types.LinkSpec{
				{Name: "snapshots", Source: "/project/snapshots"},
			},
			expectedCount: 1,
			check: func(t *testing.T, actions []types.LinkAction) {
				assert.Equal(t, "/ws/user/default/ComfyUI-Manager/snapshots", actions[0].Target)
			},
		},
		{
			name: "settings files go to the profile dir",
			specs: []types.LinkSpec{
				{Name: "comfy.settings.json", Source: "/project/user/default/comfy.settings.json", Kind: types.LinkFile},
			},
			expectedCount: 1,
			check: func(t *testing.T, actions []types.LinkAction) {
				assert.Equal(t, "/ws/user/default/comfy.settings.json", actions[0].Target)
			},
		},
		{
			name: "empty sources are dropped",
			specs: []types.LinkSpec{
				{Name: "models", Source: ""},
				{Name: "input", Source: "/project/input"},
			},
			expectedCount: 1,
			check: func(t *testing.T, actions []types.LinkAction) {
				assert.Equal(t, "input", actions[0].Name)
			},
		},
		{
			name: "duplicate targets are a conflict",
			specs: []types.LinkSpec{
				{Name: "models", Source: "/a/models"},
				{Name: "models", Source: "/b/models"},
			},
			expectedErr: errors.ErrLinkConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, err := Plan(layout, tt.specs)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.expectedErr))
				return
			}
			require.NoError(t, err)
			require.Len(t, actions, tt.expectedCount)
			if tt.check != nil {
				tt.check(t, actions)
			}
		})
	}
}

func TestPlanExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")
	layout := mustLayout(t, "/ws")

	actions, err := Plan(layout, []types.LinkSpec{
		{Name: "models", Source: "~/models"},
	})
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "/home/testuser/models", actions[0].Source)
}
