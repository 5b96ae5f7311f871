package genconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmbt/comfy-config/pkg/commands/genconfig"
)

func TestRunReturnsContent(t *testing.T) {
	result, err := genconfig.Run(genconfig.Options{})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "gpu = 'nvidia'")
	assert.Contains(t, result.ConfigContent, "[links]")
	assert.Contains(t, result.ConfigContent, "[manager]")
	assert.Contains(t, result.EnvContent, "COMFY_PATH")
	assert.Empty(t, result.FilesWritten)
}

func TestRunWritesFiles(t *testing.T) {
	root := t.TempDir()

	result, err := genconfig.Run(genconfig.Options{
		ProjectRoot: root,
		Write:       true,
		EnvExample:  true,
	})
	require.NoError(t, err)
	assert.Len(t, result.FilesWritten, 2)

	data, err := os.ReadFile(filepath.Join(root, "comfy-config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "workspace")

	_, err = os.Stat(filepath.Join(root, ".env"))
	assert.NoError(t, err)
}

func TestRunDoesNotClobber(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "comfy-config.toml")
	require.NoError(t, os.WriteFile(existing, []byte("mine"), 0644))

	result, err := genconfig.Run(genconfig.Options{ProjectRoot: root, Write: true})
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}
