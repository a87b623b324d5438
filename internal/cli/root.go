// Package cli provides the Cobra command structure for spellscan.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/spellscan/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root spellscan command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "spellscan",
		Short: "Extract spell-check tokens from text files",
		Long: `spellscan scans text files and extracts candidate spell-check tokens,
tracking each token's byte offsets and line number.

It splits compound identifiers (camelCase, snake_case, hyphenated forms),
skips content that is not worth checking (URLs, file paths, emails, bare
numbers, regex fragments), and emits the remaining words with positions a
spell checker can use to report misspellings.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
