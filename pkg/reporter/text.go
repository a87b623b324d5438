package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/spellscan/internal/ui/pretty"
	"github.com/yaklabco/spellscan/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to scan."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if len(file.Tokens) == 0 {
			continue
		}

		fmt.Fprintf(r.bw, "%s %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Dim.Render(fmt.Sprintf("(%d tokens)", len(file.Tokens))),
		)

		for _, tk := range file.Tokens {
			fmt.Fprintf(r.bw, "  %s  %s\n",
				r.styles.Location.Render(tk.Position.String()),
				r.styles.Word.Render(tk.Word),
			)
			total++
		}

		// Blank line between files.
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, formatSummaryLine(r.styles, result.Stats))
	}

	return total, nil
}

// formatSummaryLine renders the one-line run summary shared by the text and
// summary reporters.
func formatSummaryLine(styles *pretty.Styles, stats runner.Stats) string {
	line := fmt.Sprintf("%s tokens across %s of %s files",
		styles.SummaryValue.Render(fmt.Sprintf("%d", stats.TokensTotal)),
		styles.SummaryValue.Render(fmt.Sprintf("%d", stats.FilesWithTokens)),
		styles.SummaryValue.Render(fmt.Sprintf("%d", stats.FilesDiscovered)),
	)
	if stats.FilesErrored > 0 {
		line += " " + styles.Error.Render(fmt.Sprintf("(%d unreadable)", stats.FilesErrored))
	}
	return line
}
