package tokenizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLineBytes caps the scanner's line buffer. The tokenizer itself imposes
// no semantic line-length limit; this only bounds memory per line.
const maxLineBytes = 1024 * 1024

// ErrInvalidEncoding is returned when a line is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

// Tokenizer parses words to be spell checked out of text sources, keeping
// them in an ordered sequence together with their positions.
//
// A Tokenizer is additive: each Tokenize call appends to the sequence, so one
// instance can accumulate tokens across several files. It is not safe for
// concurrent use; share the PatternSet instead and give each goroutine its
// own Tokenizer.
type Tokenizer struct {
	tokens   []Token
	patterns *PatternSet
}

// New creates an empty Tokenizer with its own PatternSet.
func New() *Tokenizer {
	return NewWithPatterns(NewPatternSet())
}

// NewWithPatterns creates an empty Tokenizer using a shared PatternSet.
func NewWithPatterns(patterns *PatternSet) *Tokenizer {
	return &Tokenizer{patterns: patterns}
}

// Tokens returns the parsed tokens in the order they were encountered.
// The slice is owned by the Tokenizer and is only valid until the next
// Clear call; copy it if it must outlive the Tokenizer's reuse.
func (t *Tokenizer) Tokens() []Token {
	return t.tokens
}

// Clear empties the token sequence while retaining its capacity, so a
// Tokenizer can be reused across files without reallocating.
func (t *Tokenizer) Clear() {
	t.tokens = t.tokens[:0]
}

// Tokenize reads the file at path line by line and appends the tokens it
// finds. Any I/O or decoding error aborts the call; tokens appended before
// the failure remain in the sequence and stay valid.
func (t *Tokenizer) Tokenize(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := t.TokenizeReader(f); err != nil {
		return fmt.Errorf("tokenize %s: %w", path, err)
	}
	return nil
}

// TokenizeReader runs the tokenization pipeline over an arbitrary stream.
// Tokenize wraps it with file handling; tests and in-memory callers can use
// it directly.
func (t *Tokenizer) TokenizeReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return fmt.Errorf("line %d: %w", lineNo, ErrInvalidEncoding)
		}
		t.tokenizeLine(line, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return nil
}

// tokenizeLine splits a line into whitespace-delimited chunks and feeds each
// to the chunk pipeline, maintaining the running byte offset.
func (t *Tokenizer) tokenizeLine(line string, lineNo int) {
	offset := 0
	for _, chunk := range strings.Fields(line) {
		t.tokenizeChunk(chunk, offset, lineNo)

		// The offset always advances by the untrimmed chunk length plus one
		// separating space, whether or not the chunk produced tokens.
		offset += len(chunk) + 1
	}
}

// tokenizeChunk runs one chunk through edge trimming, the ignore check,
// separator splitting, candidate extraction, and case splitting, emitting
// tokens anchored at offset.
func (t *Tokenizer) tokenizeChunk(chunk string, offset, lineNo int) {
	// Strip symbols and brackets from both edges; apostrophes stay so
	// contractions like "don't" survive intact.
	trimmed := strings.TrimFunc(chunk, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	if trimmed == "" {
		return
	}

	// One ignore-pattern match disqualifies the whole chunk.
	if t.patterns.Ignored(trimmed) {
		return
	}

	// Break compound identifiers (snake_case, Get-Item, run—but) apart and
	// extract word candidates from each piece.
	for _, sub := range t.patterns.splitSeparators(trimmed) {
		if sub == "" {
			continue
		}

		for _, m := range t.patterns.wordMatches(sub) {
			word := sub[m[0]:m[1]]

			// Single letters are never worth spell checking.
			if len(word) == 1 {
				continue
			}

			// Every sub-word of a case split shares the byte range of the
			// original candidate match; the range is not recomputed per
			// piece. Offsets after a separator split likewise stay anchored
			// to where the chunk began, not the sub-chunk. Downstream
			// consumers rely on this accounting, so keep it as is.
			pos := Position{
				Start: offset + m[0],
				End:   offset + m[1] - 1,
				Line:  lineNo,
			}
			for _, part := range SplitWordCases(word) {
				t.tokens = append(t.tokens, Token{Word: part, Position: pos})
			}
		}
	}
}
