// Package sourceset computes the ordered, deduplicated, exclusion-filtered
// list of source files for one folder.
package sourceset

import (
	"path/filepath"

	"github.com/Cyclone1070/compdb/internal/config"
	"github.com/Cyclone1070/compdb/internal/pattern"
)

// patternResolver expands patterns under a base directory.
type patternResolver interface {
	Resolve(baseDir, pattern string) []string
	ResolveFiles(baseDir, pattern string) []string
}

// ignoreMatcher drops root-relative paths, e.g. from .gitignore.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string) bool
}

// Collector resolves a folder's source patterns against its exclude patterns.
type Collector struct {
	resolver patternResolver
	ignore   ignoreMatcher
}

// NewCollector creates a Collector. ignore may be nil.
func NewCollector(resolver patternResolver, ignore ignoreMatcher) *Collector {
	if resolver == nil {
		panic("resolver is required")
	}
	return &Collector{resolver: resolver, ignore: ignore}
}

// FolderBase returns the directory a folder's patterns are rooted at.
func FolderBase(ws config.WorkspaceSettings, folder config.FolderSettings) string {
	return pattern.Join(ws.RootFolder, folder.FolderPath)
}

// Collect returns the folder's source files.
//
// Every exclude pattern (workspace first, then folder) is resolved before
// any source pattern. Source patterns are then resolved in the same
// workspace-then-folder order and each match is kept only if it is not
// excluded and not already present, so the first pattern to find a file
// fixes its position.
func (c *Collector) Collect(ws config.WorkspaceSettings, folder config.FolderSettings) []string {
	base := FolderBase(ws, folder)

	excluded := make(map[string]struct{})
	for _, p := range ws.EffectiveExcludePatterns(folder) {
		for _, path := range c.resolver.Resolve(base, p) {
			excluded[path] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	sources := []string{}
	for _, p := range ws.EffectiveSrcPatterns(folder) {
		for _, path := range c.resolver.ResolveFiles(base, p) {
			if _, ok := excluded[path]; ok {
				continue
			}
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			sources = append(sources, path)
		}
	}

	if c.ignore == nil {
		return sources
	}
	return c.dropIgnored(ws.RootFolder, sources)
}

func (c *Collector) dropIgnored(root string, sources []string) []string {
	kept := make([]string, 0, len(sources))
	for _, path := range sources {
		rel, err := filepath.Rel(filepath.Clean(root), filepath.FromSlash(path))
		if err != nil {
			rel = path
		}
		if c.ignore.ShouldIgnore(rel) {
			continue
		}
		kept = append(kept, path)
	}
	return kept
}
