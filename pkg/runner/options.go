// Package runner provides multi-file scan orchestration: file discovery and
// a worker pool that tokenizes each discovered file.
package runner

// Options controls multi-file scanning behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions restricts discovery to files with these extensions
	// (lowercase, with leading dot). Empty means every non-binary file.
	Extensions []string

	// IncludeGlobs are glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that passes the other filters".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// UseGitignore controls whether a .gitignore at WorkingDir is honored.
	UseGitignore bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
