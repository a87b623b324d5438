package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/spellscan/internal/ui/pretty"
	"github.com/yaklabco/spellscan/pkg/runner"
)

// SummaryReporter prints aggregate statistics only.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to scan."))
		return 0, nil
	}

	stats := result.Stats

	fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render("Scan summary"))
	fmt.Fprintf(r.bw, "  files scanned:     %d\n", stats.FilesDiscovered)
	fmt.Fprintf(r.bw, "  files with tokens: %d\n", stats.FilesWithTokens)
	fmt.Fprintf(r.bw, "  files errored:     %d\n", stats.FilesErrored)
	fmt.Fprintf(r.bw, "  total tokens:      %d\n", stats.TokensTotal)

	return stats.TokensTotal, nil
}
