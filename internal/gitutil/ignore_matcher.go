// Package gitutil filters workspace paths through the root .gitignore.
package gitutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// fileSystem defines the minimal filesystem interface needed for gitignore loading.
type fileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// IgnoreMatcher matches root-relative file paths against .gitignore rules
// using go-git's matcher. Only the root .gitignore is read; nested ones and
// the global excludes file are not consulted.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher reads root/.gitignore. A missing file yields a matcher that
// ignores nothing; any other read failure is a *GitignoreReadError.
func NewIgnoreMatcher(root string, fs fileSystem) (*IgnoreMatcher, error) {
	if fs == nil {
		panic("fs is required")
	}
	path := filepath.Join(root, ".gitignore")

	data, err := fs.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &IgnoreMatcher{}, nil
	case err != nil:
		return nil, &GitignoreReadError{Path: path, Cause: err}
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(parsePatterns(data))}, nil
}

// parsePatterns turns .gitignore content into patterns in file order, so
// later negations override earlier matches.
func parsePatterns(data []byte) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

// ShouldIgnore reports whether a root-relative file path is ignored.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string) bool {
	if m.matcher == nil {
		return false
	}

	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, false)
}

// splitPath splits a path on either separator, dropping empty and "." parts.
func splitPath(path string) []string {
	parts := strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })

	segments := parts[:0]
	for _, part := range parts {
		if part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// NoOpMatcher never ignores any files.
type NoOpMatcher struct{}

// ShouldIgnore always returns false for NoOpMatcher.
func (m *NoOpMatcher) ShouldIgnore(relativePath string) bool {
	return false
}
