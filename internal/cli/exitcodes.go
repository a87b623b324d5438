package cli

import "errors"

// Exit codes for spellscan.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInternalError indicates an internal error.
	ExitInternalError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps a command error to a process exit code. Tokens are
// output, not diagnostics, so a clean scan always exits 0; only read
// failures and internal errors are non-zero.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrScanFailures) {
		return ExitIOError
	}
	return ExitInternalError
}
