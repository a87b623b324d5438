package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/spellscan/internal/configloader"
	"github.com/yaklabco/spellscan/internal/logging"
	"github.com/yaklabco/spellscan/pkg/reporter"
	"github.com/yaklabco/spellscan/pkg/runner"
)

// ErrScanFailures is returned when one or more files could not be read.
var ErrScanFailures = errors.New("some files could not be scanned")

type scanFlags struct {
	format         string
	ignore         []string
	include        []string
	extensions     []string
	noGitignore    bool
	followSymlinks bool
	jobs           int
	noSummary      bool
	compact        bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan files and print candidate spell-check tokens",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns to include")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "restrict to file extensions (e.g. .md,.txt)")
	cmd.Flags().BoolVar(&flags.noGitignore, "no-gitignore", false, "do not honor .gitignore")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse directory symlinks")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the run summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")

	return cmd
}

const scanLongDescription = `Scan files and print candidate spell-check tokens with their positions.

By default, scans every non-binary file in the current directory and its
subdirectories, honoring .gitignore. Specify paths to scan specific files
or directories.

Examples:
  spellscan scan                     # Scan current directory
  spellscan scan docs/               # Scan docs directory
  spellscan scan README.md           # Scan single file
  spellscan scan --ext .md,.txt      # Restrict to extensions
  spellscan scan --format json       # Machine-readable output for a checker
  spellscan scan --ignore 'build/**' # Skip generated files`

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	cfg := loadResult.Config

	// CLI flags win over config file values.
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	if cmd.Flags().Changed("include") {
		cfg.Include = flags.include
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extensions = flags.extensions
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	useGitignore := cfg.UseGitignore() && !flags.noGitignore
	followSymlinks := cfg.FollowSymlinks || flags.followSymlinks

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     cfg.Extensions,
		IncludeGlobs:   cfg.Include,
		ExcludeGlobs:   cfg.Ignore,
		UseGitignore:   useGitignore,
		FollowSymlinks: followSymlinks,
		Jobs:           cfg.Jobs,
	}

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("scan failed"), err)
	}

	logger.Debug("scan finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldTokensTotal, result.Stats.TokensTotal,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return ErrScanFailures
	}

	return nil
}
