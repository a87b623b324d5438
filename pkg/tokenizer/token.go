// Package tokenizer extracts candidate spell-check tokens from text sources.
// It streams a source line by line, strips noise, filters out non-word content
// (URLs, file paths, emails, regex fragments, bare numbers), splits compound
// identifiers, and records each token with byte offsets and a line number so a
// downstream spell checker can report locations to the user.
package tokenizer

import "fmt"

// Position locates a token in its source file.
type Position struct {
	// Start is the byte offset where the token begins, relative to the
	// running chunk offset within its line (inclusive).
	Start int

	// End is the byte offset of the token's last byte (inclusive).
	End int

	// Line is the 1-based line number in the source.
	Line int
}

// Len returns the length of the position's byte range.
func (p Position) Len() int {
	return p.End - p.Start + 1
}

// String renders the position as "line:start-end".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d-%d", p.Line, p.Start, p.End)
}

// Token is a word parsed from a source file, candidate for spell checking.
// Tokens are immutable once emitted; case is preserved exactly as read.
type Token struct {
	// Word is the exact substring matched or split out of the source.
	Word string

	// Position records where the word was found.
	Position Position
}
