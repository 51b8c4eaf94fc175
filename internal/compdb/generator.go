package compdb

import (
	"unicode/utf8"

	"github.com/Cyclone1070/compdb/internal/config"
	"github.com/Cyclone1070/compdb/internal/sourceset"
)

// sourceCollector yields a folder's ordered source files.
type sourceCollector interface {
	Collect(ws config.WorkspaceSettings, folder config.FolderSettings) []string
}

// reporter receives skipped-file warnings and verbose progress lines.
type reporter interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// Generator builds the full entry list for a configuration.
type Generator struct {
	collector sourceCollector
	log       reporter
}

// NewGenerator creates a Generator with injected dependencies.
func NewGenerator(collector sourceCollector, log reporter) *Generator {
	if collector == nil {
		panic("collector is required")
	}
	if log == nil {
		panic("log is required")
	}
	return &Generator{collector: collector, log: log}
}

// Generate returns one entry per retained source file, folders in
// declaration order. Files whose names are not valid UTF-8 are skipped with a
// warning. The result is never nil.
func (g *Generator) Generate(cfg *config.Config) []Entry {
	selector := NewCompilerSelector(cfg.Workspace)
	entries := []Entry{}

	for _, folder := range cfg.Folders {
		folderEntries := g.folderEntries(cfg.Workspace, folder, selector)
		g.log.Debugf("folder %q (%s): %d source files",
			folder.FolderPath, sourceset.FolderBase(cfg.Workspace, folder), len(folderEntries))
		entries = append(entries, folderEntries...)
	}

	return entries
}

func (g *Generator) folderEntries(ws config.WorkspaceSettings, folder config.FolderSettings, selector CompilerSelector) []Entry {
	sources := g.collector.Collect(ws, folder)
	flags := BuildFlags(ws, folder)

	out := make([]Entry, 0, len(sources))
	for _, src := range sources {
		// The database must be valid UTF-8 JSON.
		if !utf8.ValidString(src) {
			g.log.Warnf("skipping %q: file name is not valid UTF-8", src)
			continue
		}
		out = append(out, NewEntry(ws.RootFolder, src, selector.Select(src), flags))
	}
	return out
}
