package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellscan/pkg/reporter"
	"github.com/yaklabco/spellscan/pkg/runner"
	"github.com/yaklabco/spellscan/pkg/tokenizer"
)

// sampleResult builds a small two-file result with one unreadable file.
func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/docs/readme.txt",
				Tokens: []tokenizer.Token{
					{Word: "Visit", Position: tokenizer.Position{Start: 0, End: 4, Line: 1}},
					{Word: "today", Position: tokenizer.Position{Start: 26, End: 30, Line: 1}},
				},
			},
			{Path: "/work/empty.txt"},
			{Path: "/work/broken.txt", Error: errors.New("permission denied")},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  2,
			FilesErrored:    1,
			FilesWithTokens: 1,
			TokensTotal:     2,
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    reporter.Format
		wantErr bool
	}{
		{"text", reporter.FormatText, false},
		{"", reporter.FormatText, false},
		{"json", reporter.FormatJSON, false},
		{"summary", reporter.FormatSummary, false},
		{"sarif", "", true},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := reporter.ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "format %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatText,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/work",
	})
	require.NoError(t, err)

	total, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	out := buf.String()
	assert.Contains(t, out, "docs/readme.txt")
	assert.Contains(t, out, "1:0-4")
	assert.Contains(t, out, "Visit")
	assert.Contains(t, out, "1:26-30")
	assert.Contains(t, out, "broken.txt")
	assert.Contains(t, out, "permission denied")
	assert.NotContains(t, out, "empty.txt", "files without tokens are omitted")
	assert.Contains(t, out, "2 tokens across 1 of 3 files")
	assert.Contains(t, out, "(1 unreadable)")
}

func TestTextReporter_EmptyResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	total, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)

	assert.Zero(t, total)
	assert.Contains(t, buf.String(), "No files to scan.")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatJSON,
		WorkingDir: "/work",
	})
	require.NoError(t, err)

	total, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 3)
	assert.Equal(t, "docs/readme.txt", output.Files[0].Path)
	require.Len(t, output.Files[0].Tokens, 2)
	assert.Equal(t, reporter.JSONToken{Word: "Visit", Line: 1, Start: 0, End: 4}, output.Files[0].Tokens[0])
	assert.Equal(t, "permission denied", output.Files[2].Error)

	assert.Equal(t, 3, output.Summary.FilesScanned)
	assert.Equal(t, 1, output.Summary.FilesWithTokens)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, 2, output.Summary.TotalTokens)
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	total, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	out := buf.String()
	assert.Contains(t, out, "Scan summary")
	assert.Contains(t, out, "files scanned:     3")
	assert.Contains(t, out, "total tokens:      2")
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{
		Writer: &bytes.Buffer{},
		Format: reporter.Format("sarif"),
	})
	assert.Error(t, err)
}
