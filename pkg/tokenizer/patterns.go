package tokenizer

import "regexp"

// PatternSet holds the fixed set of matching rules used during tokenization:
// ignore patterns that disqualify whole chunks, the word-candidate pattern,
// and the separator pattern used to break compound identifiers apart.
//
// A PatternSet is read-only after construction and safe for concurrent use,
// so a single set may be shared by tokenizers running in parallel.
type PatternSet struct {
	ignore []*regexp.Regexp
	word   *regexp.Regexp
	split  *regexp.Regexp
}

// NewPatternSet compiles the fixed pattern set. The patterns are compile-time
// constants, so construction never fails.
func NewPatternSet() *PatternSet {
	return &PatternSet{
		ignore: []*regexp.Regexp{
			regexp.MustCompile(`https?://\S+`),           // URLs
			regexp.MustCompile(`[\w\-\.]+(/[\w\-\.]+)+`), // file paths
			regexp.MustCompile(`\b\d+\b`),                // bare numbers
			regexp.MustCompile(`\\[a-zA-Z]+[{[^()]+}]*`), // regex literals
			regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), // email shapes
		},
		word:  regexp.MustCompile(`[a-zA-Z]+[0-9]*[a-zA-Z]*`),
		split: regexp.MustCompile(`[ _\-—]`),
	}
}

// Ignored reports whether any ignore pattern matches the chunk. A match
// anywhere in the chunk disqualifies the whole chunk from tokenization.
func (p *PatternSet) Ignored(chunk string) bool {
	for _, re := range p.ignore {
		if re.MatchString(chunk) {
			return true
		}
	}
	return false
}

// wordMatches returns the byte ranges of all non-overlapping word-candidate
// matches in s, left to right.
func (p *PatternSet) wordMatches(s string) [][]int {
	return p.word.FindAllStringIndex(s, -1)
}

// splitSeparators breaks a chunk on space, underscore, hyphen, and em-dash.
// Callers must skip the empty segments a leading or doubled separator leaves.
func (p *PatternSet) splitSeparators(chunk string) []string {
	return p.split.Split(chunk, -1)
}
