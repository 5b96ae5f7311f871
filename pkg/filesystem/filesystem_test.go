package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmbt/comfy-config/pkg/types"
)

// exercises the shared FS contract against both implementations
func withEachFS(t *testing.T, test func(t *testing.T, fsys types.FS, root string)) {
	t.Run("os", func(t *testing.T) {
		test(t, NewOS(), t.TempDir())
	})
	t.Run("afero", func(t *testing.T) {
		test(t, NewAferoFS(afero.NewMemMapFs()), "/work")
	})
}

func TestReadWriteFile(t *testing.T) {
	withEachFS(t, func(t *testing.T, fsys types.FS, root string) {
		require.NoError(t, fsys.MkdirAll(root, 0755))
		path := filepath.Join(root, "config.ini")

		require.NoError(t, fsys.WriteFile(path, []byte("[default]"), 0644))

		data, err := fsys.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[default]", string(data))

		info, err := fsys.Stat(path)
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})
}

func TestReadDirAndRemove(t *testing.T) {
	withEachFS(t, func(t *testing.T, fsys types.FS, root string) {
		dir := filepath.Join(root, "snapshots")
		require.NoError(t, fsys.MkdirAll(dir, 0755))
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0644))
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0644))

		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		require.NoError(t, fsys.Remove(filepath.Join(dir, "a.json")))
		entries, err = fsys.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		require.NoError(t, fsys.RemoveAll(dir))
		_, err = fsys.Stat(dir)
		assert.Error(t, err)
	})
}

func TestOSSymlinkRoundTrip(t *testing.T) {
	fsys := NewOS()
	root := t.TempDir()

	source := filepath.Join(root, "models")
	require.NoError(t, os.MkdirAll(source, 0755))
	link := filepath.Join(root, "link")

	require.NoError(t, fsys.Symlink(source, link))

	dest, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, dest)

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestAferoSymlinkSimulation(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/project/models", 0755))
	require.NoError(t, fsys.Symlink("/project/models", "/ws/models"))

	dest, err := fsys.Readlink("/ws/models")
	require.NoError(t, err)
	assert.Equal(t, "/project/models", dest)
}
