package manager

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmbt/comfy-config/pkg/comfy"
	"github.com/drmbt/comfy-config/pkg/filesystem"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/testutil"
	"github.com/drmbt/comfy-config/pkg/ui/prompts"
)

func testLayout(t *testing.T) (paths.Layout, string) {
	t.Helper()
	ws := t.TempDir()
	layout, err := paths.NewLayout(ws)
	require.NoError(t, err)
	return layout, ws
}

func interactivePrompter(input string) *prompts.Prompter {
	return prompts.New(strings.NewReader(input), io.Discard, true)
}

func TestSetupConfigSkipsWhenUnset(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, _ := testLayout(t)

	err := SetupConfig(fsys, layout, "", Options{})
	require.NoError(t, err)

	_, statErr := os.Stat(layout.ManagerConfigPath())
	assert.True(t, os.IsNotExist(statErr), "should not create a config.ini")
}

func TestSetupConfigSkipsMissingSource(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)

	err := SetupConfig(fsys, layout, filepath.Join(ws, "nope.ini"), Options{})
	require.NoError(t, err)

	_, statErr := os.Stat(layout.ManagerConfigPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestSetupConfigCopiesFile(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)

	source := filepath.Join(ws, "config.ini")
	require.NoError(t, os.WriteFile(source, []byte("[default]\nsecurity_level = normal\n"), 0600))

	err := SetupConfig(fsys, layout, source, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(layout.ManagerConfigPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "security_level")

	info, err := os.Stat(layout.ManagerConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSetupConfigReplacesExisting(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)

	target := layout.ManagerConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

	source := filepath.Join(ws, "config.ini")
	require.NoError(t, os.WriteFile(source, []byte("new"), 0644))

	err := SetupConfig(fsys, layout, source, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestSetupConfigDryRun(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)

	source := filepath.Join(ws, "config.ini")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0644))

	err := SetupConfig(fsys, layout, source, Options{DryRun: true})
	require.NoError(t, err)

	_, statErr := os.Stat(layout.ManagerConfigPath())
	assert.True(t, os.IsNotExist(statErr), "dry run must not write")
}

func TestSetupConfigPromptsForPath(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)

	source := filepath.Join(ws, "elsewhere.ini")
	require.NoError(t, os.WriteFile(source, []byte("prompted"), 0644))

	opts := Options{Prompter: interactivePrompter(source + "\n")}
	err := SetupConfig(fsys, layout, "", opts)
	require.NoError(t, err)

	data, err := os.ReadFile(layout.ManagerConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "prompted", string(data))
}

func TestSetupConfigPromptEmptySkips(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, _ := testLayout(t)

	opts := Options{Prompter: interactivePrompter("\n")}
	err := SetupConfig(fsys, layout, "", opts)
	require.NoError(t, err)

	_, statErr := os.Stat(layout.ManagerConfigPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestAvailableSnapshots(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, _ := testLayout(t)

	dir := layout.SnapshotsPath()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.json"), 0755))

	names := AvailableSnapshots(fsys, layout)
	assert.Equal(t, []string{"a.json", "b.json"}, names)
}

func TestAvailableSnapshotsMissingDir(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, _ := testLayout(t)

	assert.Nil(t, AvailableSnapshots(fsys, layout))
}

func TestRestoreSnapshotSkipsWhenUnset(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, _ := testLayout(t)
	runner := testutil.NewFakeRunner()
	client := comfy.NewClient(runner)

	err := RestoreSnapshot(context.Background(), client, fsys, layout, "", Options{})
	require.NoError(t, err)
	assert.Empty(t, runner.Calls)
}

func TestRestoreSnapshotSkipsMissingFile(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)
	runner := testutil.NewFakeRunner()
	client := comfy.NewClient(runner)

	err := RestoreSnapshot(context.Background(), client, fsys, layout, filepath.Join(ws, "gone.json"), Options{})
	require.NoError(t, err)
	assert.Empty(t, runner.Calls)
}

func TestRestoreSnapshotRunsComfy(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)

	snapshot := filepath.Join(ws, "snapshot.json")
	require.NoError(t, os.WriteFile(snapshot, []byte("{}"), 0644))

	runner := testutil.NewFakeRunner()
	client := comfy.NewClient(runner)

	err := RestoreSnapshot(context.Background(), client, fsys, layout, snapshot, Options{})
	require.NoError(t, err)

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, "comfy node restore-snapshot "+snapshot, runner.Calls[0].String())
}

func TestRestoreSnapshotDryRun(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, ws := testLayout(t)

	snapshot := filepath.Join(ws, "snapshot.json")
	require.NoError(t, os.WriteFile(snapshot, []byte("{}"), 0644))

	runner := testutil.NewFakeRunner()
	client := comfy.NewClient(runner)

	err := RestoreSnapshot(context.Background(), client, fsys, layout, snapshot, Options{DryRun: true})
	require.NoError(t, err)
	assert.Empty(t, runner.Calls)
}

func TestRestoreSnapshotSelectsFromWorkspace(t *testing.T) {
	fsys := filesystem.NewOS()
	layout, _ := testLayout(t)

	dir := layout.SnapshotsPath()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snap.json"), []byte("{}"), 0644))

	runner := testutil.NewFakeRunner()
	client := comfy.NewClient(runner)

	// Answering with the option number selects snap.json from the list
	opts := Options{Prompter: interactivePrompter("1\n")}
	err := RestoreSnapshot(context.Background(), client, fsys, layout, "", opts)
	require.NoError(t, err)

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, "comfy node restore-snapshot "+filepath.Join(dir, "snap.json"), runner.Calls[0].String())
}
