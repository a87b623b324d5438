package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellscan/internal/cli"
	"github.com/yaklabco/spellscan/pkg/reporter"
)

// chdir changes the working directory for the duration of the test,
// restoring the original directory on cleanup (testing.T.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestScanCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"),
		[]byte("Visit https://example.com today\n"), 0644))
	chdir(t, dir)

	out, err := execute(t, "scan", "--format", "json")
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	require.Len(t, output.Files, 1)
	assert.Equal(t, "note.txt", output.Files[0].Path)
	require.Len(t, output.Files[0].Tokens, 2)
	assert.Equal(t, "Visit", output.Files[0].Tokens[0].Word)
	assert.Equal(t, "today", output.Files[0].Tokens[1].Word)
}

func TestScanCommand_IgnoreFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("hello\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.log"), []byte("hello\n"), 0644))
	chdir(t, dir)

	out, err := execute(t, "scan", "--format", "json", "--ignore", "*.log")
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	require.Len(t, output.Files, 1)
	assert.Equal(t, "keep.txt", output.Files[0].Path)
}

func TestScanCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".spellscan.yml"),
		[]byte("extensions: ['.md']\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.md"), []byte("words here\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("words here\n"), 0644))
	chdir(t, dir)

	out, err := execute(t, "scan", "--format", "json")
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	require.Len(t, output.Files, 1)
	assert.Equal(t, "doc.md", output.Files[0].Path)
}

func TestScanCommand_InvalidFormat(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "scan", "--format", "xml")
	assert.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := execute(t, "init")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".spellscan.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "gitignore:")

	// A second run without --force refuses to overwrite.
	_, err = execute(t, "init")
	assert.Error(t, err)

	_, err = execute(t, "init", "--force")
	assert.NoError(t, err)
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeForError(nil))
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(cli.ErrScanFailures))
	assert.Equal(t, cli.ExitInternalError, cli.ExitCodeForError(assert.AnError))
}
