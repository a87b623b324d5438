package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellscan/internal/configloader"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.True(t, result.Config.UseGitignore())
	assert.Empty(t, result.Config.Ignore)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".spellscan.yml")
	require.NoError(t, os.WriteFile(path, []byte("ignore: ['*.log']\njobs: 3\n"), 0644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.LoadedFrom)
	assert.Equal(t, []string{"*.log"}, result.Config.Ignore)
	assert.Equal(t, 3, result.Config.Jobs)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gitignore: false\n"), 0644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: path,
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.LoadedFrom)
	assert.False(t, result.Config.UseGitignore())
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "absent.yml"),
	})
	assert.Error(t, err, "an explicitly requested config file must exist")
}

func TestLoad_MalformedConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".spellscan.yml")
	require.NoError(t, os.WriteFile(path, []byte("ignore: [unclosed\n"), 0644))

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	assert.Error(t, err)
}
