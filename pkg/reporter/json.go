package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/yaklabco/spellscan/pkg/runner"
	"github.com/yaklabco/spellscan/pkg/tokenizer"
)

// JSONOutput is the top-level JSON structure consumed by downstream
// spell-checking tools.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's tokens.
type JSONFileResult struct {
	Path   string      `json:"path"`
	Tokens []JSONToken `json:"tokens"`
	Error  string      `json:"error,omitempty"`
}

// JSONToken represents a single candidate token with its position.
type JSONToken struct {
	Word  string `json:"word"`
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesScanned    int `json:"filesScanned"`
	FilesWithTokens int `json:"filesWithTokens"`
	FilesErrored    int `json:"filesErrored"`
	TotalTokens     int `json:"totalTokens"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalTokens, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Files = lo.Map(result.Files, func(file runner.FileOutcome, _ int) JSONFileResult {
		fileResult := JSONFileResult{
			Path: displayPath(file.Path, r.opts.WorkingDir),
			Tokens: lo.Map(file.Tokens, func(tk tokenizer.Token, _ int) JSONToken {
				return JSONToken{
					Word:  tk.Word,
					Line:  tk.Position.Line,
					Start: tk.Position.Start,
					End:   tk.Position.End,
				}
			}),
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}
		return fileResult
	})

	output.Summary = JSONSummary{
		FilesScanned:    result.Stats.FilesDiscovered,
		FilesWithTokens: result.Stats.FilesWithTokens,
		FilesErrored:    result.Stats.FilesErrored,
		TotalTokens:     result.Stats.TokensTotal,
	}

	return output
}
