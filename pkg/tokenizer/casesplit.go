package tokenizer

import "unicode"

// SplitWordCases splits a word into smaller words at its case transitions,
// deconstructing camelCase and PascalCase identifiers.
//
//	"camelCaseExample" -> ["camel", "Case", "Example"]
//	"TITLECase"        -> ["TITLE", "Case"]
//	"simple"           -> ["simple"]
//
// A run of consecutive uppercase letters stays grouped rather than exploding
// into single letters; a new segment starts at an uppercase letter that
// either follows a lowercase letter or begins a new lowercase run. The
// function never drops characters: concatenating the segments in order
// reproduces the input exactly.
func SplitWordCases(word string) []string {
	runes := []rune(word)
	result := make([]string, 0, 1)

	start := 0
	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}

		afterLower := unicode.IsLower(runes[i-1])
		beforeLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

		if afterLower || (beforeLower && i > start) {
			result = append(result, string(runes[start:i]))
			start = i
		}
	}

	// The trailing segment is always appended, even when empty.
	result = append(result, string(runes[start:]))

	return result
}
