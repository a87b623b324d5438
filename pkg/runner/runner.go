package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/spellscan/pkg/tokenizer"
)

// Runner orchestrates multi-file tokenization. The pattern set is compiled
// once and shared read-only by every worker; each worker owns its own
// Tokenizer so no output state is shared.
type Runner struct {
	patterns *tokenizer.PatternSet
}

// New creates a Runner with a freshly compiled pattern set.
func New() *Runner {
	return &Runner{patterns: tokenizer.NewPatternSet()}
}

// Run discovers files under opts.Paths and tokenizes them concurrently.
// Outcomes are returned in deterministic (path) order regardless of worker
// scheduling. A per-file read failure is recorded in its outcome; tokens from
// other files remain valid.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect into a map first since workers complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build the result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker tokenizes files from workCh and sends outcomes to outCh. It reuses
// one Tokenizer across files, clearing between them to keep the allocated
// capacity.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	tok := tokenizer.NewWithPatterns(r.patterns)

	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		tok.Clear()

		outcome := FileOutcome{Path: path}
		if err := tok.Tokenize(path); err != nil {
			outcome.Error = err
		} else {
			// Clear reuses the backing array, so the outcome needs its own copy.
			outcome.Tokens = append([]tokenizer.Token(nil), tok.Tokens()...)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
