// Package pattern expands glob patterns rooted at a base directory into
// slash-separated filesystem paths.
package pattern

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrEmptyPattern is reported for a blank pattern, which would otherwise
// match the base directory itself.
var ErrEmptyPattern = errors.New("empty pattern")

// PatternError describes a pattern that could not be evaluated.
type PatternError struct {
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("skipping pattern %q: %v", e.Pattern, e.Cause)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}

// warner receives non-fatal resolution failures.
type warner interface {
	Warnf(format string, args ...any)
}

type globFunc func(pattern string, opts ...doublestar.GlobOption) ([]string, error)

// Resolver expands patterns with doublestar, so `*`, `**`, `?`, bracket
// classes and `{a,b}` alternatives are supported.
type Resolver struct {
	glob globFunc
	warn warner
}

// NewResolver creates a Resolver backed by the real filesystem.
func NewResolver(w warner) *Resolver {
	if w == nil {
		panic("warner is required")
	}
	return &Resolver{glob: doublestar.FilepathGlob, warn: w}
}

// Resolve returns every path (files and directories) matching pattern
// under baseDir. A pattern that matches nothing yields an empty slice; one
// that cannot be evaluated is reported and also yields an empty slice.
func (r *Resolver) Resolve(baseDir, pattern string) []string {
	return r.resolve(baseDir, pattern)
}

// ResolveFiles is Resolve restricted to non-directory matches.
func (r *Resolver) ResolveFiles(baseDir, pattern string) []string {
	return r.resolve(baseDir, pattern, doublestar.WithFilesOnly())
}

func (r *Resolver) resolve(baseDir, pattern string, opts ...doublestar.GlobOption) []string {
	if pattern == "" {
		r.warn.Warnf("%v", &PatternError{Pattern: pattern, Cause: ErrEmptyPattern})
		return []string{}
	}

	joined := Join(baseDir, pattern)
	matches, err := r.glob(joined, opts...)
	if err != nil {
		r.warn.Warnf("%v", &PatternError{Pattern: joined, Cause: err})
		return []string{}
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.ToSlash(m))
	}
	return out
}

// Join joins baseDir and pattern with a single separator and cleans the result.
func Join(baseDir, pattern string) string {
	return filepath.Join(baseDir, pattern)
}
