// Package detect classifies files that are not worth spell checking.
// It uses go-enry to recognize binary content, vendored trees, and
// generated files during discovery.
package detect

import (
	"os"

	"github.com/go-enry/go-enry/v2"
)

// SniffLen is how many leading bytes are inspected to classify file content.
const SniffLen = 8192

// IsVendored reports whether the slash-separated relative path points into a
// vendored tree (vendor/, node_modules/, minified assets, and so on).
func IsVendored(rel string) bool {
	return enry.IsVendor(rel)
}

// IsSkippableContent sniffs the first bytes of a file and reports whether the
// content is binary or generated. Unreadable files are not skippable here so
// the scan surfaces a proper read error later.
func IsSkippableContent(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, SniffLen)
	n, err := f.Read(buf)
	if n <= 0 || err != nil {
		return false
	}

	head := buf[:n]
	if enry.IsBinary(head) {
		return true
	}
	return enry.IsGenerated(path, head)
}
