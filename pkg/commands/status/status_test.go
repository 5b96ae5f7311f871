package status_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmbt/comfy-config/pkg/comfy"
	"github.com/drmbt/comfy-config/pkg/commands/status"
	"github.com/drmbt/comfy-config/pkg/config"
	"github.com/drmbt/comfy-config/pkg/filesystem"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/symlink"
	"github.com/drmbt/comfy-config/pkg/testutil"
)

func TestRunReportsLinkedWorkspace(t *testing.T) {
	ws := t.TempDir()
	project := t.TempDir()

	models := filepath.Join(project, "models")
	require.NoError(t, os.MkdirAll(models, 0755))
	require.NoError(t, os.Symlink(models, filepath.Join(ws, "models")))

	layout, err := paths.NewLayout(ws)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(layout.ManagerConfigPath()), 0755))
	require.NoError(t, os.WriteFile(layout.ManagerConfigPath(), []byte("[default]"), 0644))
	require.NoError(t, os.MkdirAll(layout.SnapshotsPath(), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(layout.SnapshotsPath(), "base.json"), []byte("{}"), 0644))

	runner := testutil.NewFakeRunner()
	runner.RespondStdout("comfy which", ws+"\n")

	cfg := &config.Config{
		Workspace: ws,
		Links:     config.Links{Models: models},
	}

	report, err := status.Run(context.Background(), status.Options{
		Config:      cfg,
		FS:          filesystem.NewOS(),
		Client:      comfy.NewClient(runner),
		ProjectRoot: project,
	})
	require.NoError(t, err)

	assert.True(t, report.CLIInstalled)
	assert.Equal(t, ws, report.ActiveWorkspace)
	assert.Equal(t, ws, report.Workspace)
	assert.True(t, report.ManagerConfigured)
	assert.Equal(t, []string{"base.json"}, report.Snapshots)

	require.Len(t, report.Links, 1)
	assert.Equal(t, symlink.StateLinked, report.Links[0].State)
}

func TestRunReportsMissingPieces(t *testing.T) {
	ws := t.TempDir()
	project := t.TempDir()

	runner := testutil.NewFakeRunner()
	runner.NotFound("comfy")

	cfg := &config.Config{
		Workspace: ws,
		Links:     config.Links{Output: filepath.Join(project, "output")},
	}

	report, err := status.Run(context.Background(), status.Options{
		Config:      cfg,
		FS:          filesystem.NewOS(),
		Client:      comfy.NewClient(runner),
		ProjectRoot: project,
	})
	require.NoError(t, err)

	assert.False(t, report.CLIInstalled)
	assert.Empty(t, report.ActiveWorkspace)
	assert.False(t, report.ManagerConfigured)
	assert.Empty(t, report.Snapshots)

	require.Len(t, report.Links, 1)
	assert.Equal(t, symlink.StateMissing, report.Links[0].State)
}

func TestRunReportsBlockedLink(t *testing.T) {
	ws := t.TempDir()
	project := t.TempDir()

	// A real directory occupies the planned target
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "input"), 0755))

	cfg := &config.Config{
		Workspace: ws,
		Links:     config.Links{Input: filepath.Join(project, "input")},
	}

	report, err := status.Run(context.Background(), status.Options{
		Config:      cfg,
		FS:          filesystem.NewOS(),
		Client:      comfy.NewClient(testutil.NewFakeRunner()),
		ProjectRoot: project,
	})
	require.NoError(t, err)

	require.Len(t, report.Links, 1)
	assert.Equal(t, symlink.StateBlocked, report.Links[0].State)
}
