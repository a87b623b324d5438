package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yaklabco/spellscan/pkg/detect"
)

// Discover finds scannable files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	matcher, err := newPathMatcher(workDir, opts)
	if err != nil {
		return nil, err
	}

	// Use a map for deduplication across overlapping input paths.
	seen := make(map[string]struct{})
	var files []string

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, matcher, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
		} else if matcher.matchFile(absPath) {
			if _, ok := seen[absPath]; !ok {
				seen[absPath] = struct{}{}
				files = append(files, absPath)
			}
		}
	}

	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// pathMatcher bundles every per-path filter applied during discovery:
// extension allow-list, include/exclude globs, .gitignore rules, and the
// vendored/binary content checks.
type pathMatcher struct {
	workDir    string
	extensions []string
	include    []glob.Glob
	exclude    []glob.Glob
	gitignore  *ignore.GitIgnore
}

func newPathMatcher(workDir string, opts Options) (*pathMatcher, error) {
	m := &pathMatcher{
		workDir:    workDir,
		extensions: opts.Extensions,
	}

	var err error
	if m.include, err = compileGlobs(opts.IncludeGlobs); err != nil {
		return nil, err
	}
	if m.exclude, err = compileGlobs(opts.ExcludeGlobs); err != nil {
		return nil, err
	}

	if opts.UseGitignore {
		gitignorePath := filepath.Join(workDir, ".gitignore")
		if _, statErr := os.Stat(gitignorePath); statErr == nil {
			m.gitignore, err = ignore.CompileIgnoreFile(gitignorePath)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", gitignorePath, err)
			}
		}
	}

	return m, nil
}

// compileGlobs compiles glob patterns with '/' as the separator, failing fast
// on the first malformed pattern.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// relPath returns path relative to the working directory with forward
// slashes, falling back to path itself when it cannot be relativized.
func (m *pathMatcher) relPath(path string) string {
	rel, err := filepath.Rel(m.workDir, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

// matchesAny reports whether rel or its base name matches any glob. Matching
// the base name keeps simple patterns like "*.log" effective in subdirectories.
func matchesAny(globs []glob.Glob, rel string) bool {
	base := rel
	if idx := strings.LastIndexByte(rel, '/'); idx >= 0 {
		base = rel[idx+1:]
	}
	for _, g := range globs {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// skipDir reports whether a directory should be pruned from the walk.
func (m *pathMatcher) skipDir(path string) bool {
	rel := m.relPath(path)

	if matchesAny(m.exclude, rel) {
		return true
	}
	if m.gitignore != nil && m.gitignore.MatchesPath(rel) {
		return true
	}
	return false
}

// matchFile reports whether a regular file passes every discovery filter.
func (m *pathMatcher) matchFile(path string) bool {
	rel := m.relPath(path)

	if !m.hasMatchingExtension(path) {
		return false
	}
	if matchesAny(m.exclude, rel) {
		return false
	}
	if m.gitignore != nil && m.gitignore.MatchesPath(rel) {
		return false
	}
	if len(m.include) > 0 && !matchesAny(m.include, rel) {
		return false
	}
	// Vendored trees, binary content, and generated files are never worth
	// spell checking.
	if detect.IsVendored(rel) {
		return false
	}
	if detect.IsSkippableContent(path) {
		return false
	}
	return true
}

// hasMatchingExtension checks the extension allow-list; an empty list admits
// every file.
func (m *pathMatcher) hasMatchingExtension(path string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range m.extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// walkDirectory recursively walks a directory and returns matching files.
func walkDirectory(
	ctx context.Context,
	root string,
	matcher *pathMatcher,
	opts Options,
) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			// Handle permission errors gracefully.
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			// Skip hidden directories (except root); this covers .git.
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && matcher.skipDir(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			// Resolve the symlink to decide whether it points at a directory.
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				// Broken symlink, skip silently.
				return nil
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the symlink target; WalkDir itself uses Lstat on the
				// root, so this avoids infinite recursion.
				subFiles, err := walkDirectory(ctx, realPath, matcher, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
			// File symlink: fall through to the regular file checks.
		}

		// Skip hidden files.
		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matcher.matchFile(path) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}
