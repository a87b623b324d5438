package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/spellscan/pkg/runner"
)

// Reporter renders a runner.Result to the configured writer. Report returns
// the total number of tokens written.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the requested format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts = withDefaults(opts)
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

func withDefaults(opts Options) Options {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.Format == "" {
		opts.Format = defaults.Format
	}
	if opts.Color == "" {
		opts.Color = defaults.Color
	}
	return opts
}

// displayPath makes path relative to the working directory when possible,
// keeping output stable and short.
func displayPath(path, workingDir string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil {
		return path
	}
	return rel
}
