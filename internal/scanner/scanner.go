// Package scanner collects the files of a codebase into memory, applying
// ignore rules, an extension allowlist, and a size cap, so the dependency
// graph can be built over already-read text.
package scanner

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/gobwas/glob"
)

// MaxFileSize is the default cap on collected file size in bytes. Larger
// files are usually generated artifacts or binaries pretending to be text.
const MaxFileSize = 100000

// DefaultExtensions are the file types collected by default. Non-source
// entries (.xml, .md, .properties) are kept for later unordered emission;
// only source files enter the dependency graph.
var DefaultExtensions = []string{".java", ".xml", ".md", ".properties"}

// DefaultIgnore are glob patterns for paths that are never collected.
var DefaultIgnore = []string{
	".git/**",
	".gradle/**",
	"gradle/**",
	"build/**",
	"target/**",
	".idea/**",
	".vscode/**",
	".venv/**",
	"node_modules/**",
	"__pycache__/**",
	"**/.DS_Store",
	".DS_Store",
}

// Scanner walks a root directory and returns its collectable files.
type Scanner struct {
	root    string
	exts    []string
	ignore  []glob.Glob
	maxSize int64
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtensions overrides the collection extension allowlist.
func WithExtensions(exts []string) Option {
	return func(s *Scanner) {
		s.exts = exts
	}
}

// WithMaxFileSize overrides the collected file size cap.
func WithMaxFileSize(size int64) Option {
	return func(s *Scanner) {
		s.maxSize = size
	}
}

// New creates a scanner rooted at root. The ignore patterns are globs
// matched against slash-separated paths relative to root; nil means
// DefaultIgnore.
func New(root string, ignorePatterns []string, opts ...Option) (*Scanner, error) {
	if ignorePatterns == nil {
		ignorePatterns = DefaultIgnore
	}

	s := &Scanner{
		root:    root,
		exts:    DefaultExtensions,
		maxSize: MaxFileSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		s.ignore = append(s.ignore, g)
	}

	return s, nil
}

// Files walks the tree under the scanner's root and returns the collected
// files keyed by slash-separated relative path. Unreadable files are
// skipped with a diagnostic; missing roots are the only error.
func (s *Scanner) Files() (map[string]string, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, fmt.Errorf("repository path %q: %w", s.root, err)
	}

	files := make(map[string]string)

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && s.ignored(rel+"/**") {
				return filepath.SkipDir
			}
			return nil
		}

		if s.ignored(rel) || !s.collectable(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > s.maxSize {
			return nil
		}

		content, err := os.ReadFile(p)
		if err != nil {
			log.Printf("skipping %s: %v", p, err)
			return nil
		}

		files[rel] = string(content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", s.root, err)
	}

	return files, nil
}

// ignored reports whether rel matches any ignore pattern.
func (s *Scanner) ignored(rel string) bool {
	for _, g := range s.ignore {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// collectable reports whether rel carries an allowlisted extension.
// Dockerfiles are collected by exact name regardless of extension.
func (s *Scanner) collectable(rel string) bool {
	if filepath.Base(rel) == "Dockerfile" {
		return true
	}
	ext := filepath.Ext(rel)
	return slices.Contains(s.exts, ext)
}

// Merge returns every path of files exactly once: the ordered paths first,
// then the remaining collected paths (non-source files and anything else
// the linearizer did not cover) in ascending path order.
func Merge(files map[string]string, ordered []string) []string {
	merged := make([]string, 0, len(files))
	seen := make(map[string]bool, len(files))

	for _, p := range ordered {
		if _, ok := files[p]; ok && !seen[p] {
			merged = append(merged, p)
			seen[p] = true
		}
	}

	rest := make([]string, 0, len(files)-len(merged))
	for p := range files {
		if !seen[p] {
			rest = append(rest, p)
		}
	}
	slices.Sort(rest)

	return append(merged, rest...)
}
