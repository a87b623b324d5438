// Package configloader resolves the effective spellscan configuration from
// an explicit --config path or a project-level config file, merged over
// defaults.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/spellscan/internal/logging"
	"github.com/yaklabco/spellscan/pkg/config"
)

// projectConfigFiles are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".spellscan.yml",
	".spellscan.yaml",
}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory searched for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and a missing file
	// is an error rather than a fallback to defaults.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, if any.
	LoadedFrom string
}

// Load resolves the configuration. Precedence (highest to lowest):
//  1. Explicit config file (opts.ExplicitPath)
//  2. Project config (.spellscan.yml in WorkingDir)
//  3. Defaults
//
// CLI flags are applied on top by the caller after loading.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)
	result := &LoadResult{Config: config.Default()}

	path, required := opts.ExplicitPath, opts.ExplicitPath != ""
	if !required {
		path = discoverProjectConfig(opts.WorkingDir)
	}

	if path == "" {
		logger.Debug("no config file found, using defaults")
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return result, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	loaded, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	merge(result.Config, loaded)
	result.LoadedFrom = path

	logger.Debug("loaded configuration", logging.FieldPath, path)

	return result, nil
}

// discoverProjectConfig returns the first project config file that exists
// under workDir, or "" when none does.
func discoverProjectConfig(workDir string) string {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		workDir = wd
	}

	for _, name := range projectConfigFiles {
		candidate := filepath.Join(workDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// merge copies the file-backed fields of src over dst, leaving dst's
// CLI-only fields untouched.
func merge(dst, src *config.Config) {
	if len(src.Ignore) > 0 {
		dst.Ignore = src.Ignore
	}
	if len(src.Include) > 0 {
		dst.Include = src.Include
	}
	if len(src.Extensions) > 0 {
		dst.Extensions = src.Extensions
	}
	if src.Gitignore != nil {
		dst.Gitignore = src.Gitignore
	}
	if src.FollowSymlinks {
		dst.FollowSymlinks = true
	}
	if src.Jobs != 0 {
		dst.Jobs = src.Jobs
	}
}
