package runner

import "github.com/yaklabco/spellscan/pkg/tokenizer"

// FileOutcome holds the tokens extracted from a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Tokens are the candidate spell-check tokens found in the file,
	// in the order they were encountered.
	Tokens []tokenizer.Token

	// Error is set if the file could not be read or decoded.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully tokenized.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithTokens is the number of files that produced at least one token.
	FilesWithTokens int

	// TokensTotal is the total number of tokens across all files.
	TokensTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file,
	// ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.TokensTotal += len(outcome.Tokens)
	if len(outcome.Tokens) > 0 {
		r.Stats.FilesWithTokens++
	}
}
