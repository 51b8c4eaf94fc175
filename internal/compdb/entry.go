package compdb

import (
	"path"

	"github.com/Cyclone1070/compdb/internal/config"
)

// Entry is one compile_commands.json record. Field order is the key order
// of the emitted JSON.
type Entry struct {
	Directory string   `json:"directory"`
	Arguments []string `json:"arguments"`
	File      string   `json:"file"`
}

// NewEntry builds an entry whose arguments are compiler followed by flags.
// The argument slice is freshly allocated; flags is never modified.
func NewEntry(directory, file, compiler string, flags []string) Entry {
	args := make([]string, 0, len(flags)+1)
	args = append(args, compiler)
	args = append(args, flags...)
	return Entry{
		Directory: directory,
		Arguments: args,
		File:      file,
	}
}

// CompilerSelector picks the C or C++ compiler for a source path.
type CompilerSelector struct {
	cCompiler   string
	cppCompiler string
	cppExts     map[string]struct{}
}

// NewCompilerSelector builds a selector from the workspace compilers and
// C++ extensions.
func NewCompilerSelector(ws config.WorkspaceSettings) CompilerSelector {
	exts := ws.EffectiveCppExtensions()
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		set[e] = struct{}{}
	}
	return CompilerSelector{
		cCompiler:   ws.CCompilerPath,
		cppCompiler: ws.CppCompilerPath,
		cppExts:     set,
	}
}

// IsCpp reports whether the file extension of p (case-sensitive) is a C++ one.
// Only the final extension counts: "foo.cpparser.c" is a C file.
func (s CompilerSelector) IsCpp(p string) bool {
	_, ok := s.cppExts[path.Ext(p)]
	return ok
}

// Select returns the compiler path for p.
func (s CompilerSelector) Select(p string) string {
	if s.IsCpp(p) {
		return s.cppCompiler
	}
	return s.cCompiler
}
