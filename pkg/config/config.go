// Package config defines core configuration types for spellscan.
// These types are pure data structures; file discovery and loading live in
// internal/configloader.
package config

// OutputFormat specifies the output format for scan results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// Config is the root configuration structure for spellscan.
type Config struct {
	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Include contains glob patterns to restrict scanning to; empty means
	// every file that passes the other filters.
	Include []string `yaml:"include"`

	// Extensions restricts scanning to these file extensions (with leading
	// dot). Empty means every non-binary text file.
	Extensions []string `yaml:"extensions"`

	// Gitignore controls whether the working directory's .gitignore is
	// honored during discovery. Defaults to true when unset.
	Gitignore *bool `yaml:"gitignore"`

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// Jobs is the number of parallel workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Format: FormatText,
	}
}

// UseGitignore resolves the Gitignore toggle, defaulting to true.
func (c *Config) UseGitignore() bool {
	if c == nil || c.Gitignore == nil {
		return true
	}
	return *c.Gitignore
}
