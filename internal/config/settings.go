package config

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Config is the decoded input file: workspace-wide settings plus the
// declared folders in declaration order.
type Config struct {
	Workspace WorkspaceSettings
	Folders   []FolderSettings

	// UnknownKeys lists keys present in the input that no setting consumes.
	// They are reported, never fatal.
	UnknownKeys []string
}

// WorkspaceSettings apply to every folder in the workspace.
// Every field is optional and defaults to its zero value.
type WorkspaceSettings struct {
	CCompilerPath   string   `mapstructure:"c_compiler_path"`
	CppCompilerPath string   `mapstructure:"cpp_compiler_path"`
	RootFolder      string   `mapstructure:"workspace_root_folder"`
	SrcPatterns     []string `mapstructure:"workspace_src_pattern"`
	ExcludePatterns []string `mapstructure:"workspace_exclude_pattern"`
	IncludeFolders  []string `mapstructure:"workspace_include_folders"`
	CompileFlags    []string `mapstructure:"workspace_compile_flags"`

	CppExtensions    []string `mapstructure:"cpp_extensions"`    // Default: DefaultCppExtensions
	RespectGitignore bool     `mapstructure:"respect_gitignore"` // Default: false
}

// FolderSettings are scoped to one source folder. Its lists are appended
// after the workspace lists when merged.
type FolderSettings struct {
	FolderPath      string   `mapstructure:"folder"`
	SrcPatterns     []string `mapstructure:"src_pattern"`
	ExcludePatterns []string `mapstructure:"exclude_pattern"`
	IncludeFolders  []string `mapstructure:"include_folders"`
	CompileFlags    []string `mapstructure:"compile_flags"`
}

// MergeLists returns a new slice holding ws followed by folder.
// Neither input is modified.
func MergeLists(ws, folder []string) []string {
	out := make([]string, 0, len(ws)+len(folder))
	out = append(out, ws...)
	out = append(out, folder...)
	return out
}

// EffectiveSrcPatterns returns workspace then folder source patterns.
func (w WorkspaceSettings) EffectiveSrcPatterns(f FolderSettings) []string {
	return MergeLists(w.SrcPatterns, f.SrcPatterns)
}

// EffectiveExcludePatterns returns workspace then folder exclude patterns.
func (w WorkspaceSettings) EffectiveExcludePatterns(f FolderSettings) []string {
	return MergeLists(w.ExcludePatterns, f.ExcludePatterns)
}

// String renders the workspace settings as indented key/value lines.
func (w WorkspaceSettings) String() string {
	var sb strings.Builder
	sb.WriteString("workspace:\n")
	writeField(&sb, "c_compiler_path", w.CCompilerPath)
	writeField(&sb, "cpp_compiler_path", w.CppCompilerPath)
	writeField(&sb, "workspace_root_folder", w.RootFolder)
	writeList(&sb, "workspace_src_pattern", w.SrcPatterns)
	writeList(&sb, "workspace_exclude_pattern", w.ExcludePatterns)
	writeList(&sb, "workspace_include_folders", w.IncludeFolders)
	writeList(&sb, "workspace_compile_flags", w.CompileFlags)
	writeList(&sb, "cpp_extensions", w.EffectiveCppExtensions())
	writeField(&sb, "respect_gitignore", fmt.Sprint(w.RespectGitignore))
	return sb.String()
}

// String renders the folder settings as indented key/value lines.
func (f FolderSettings) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "folder %q:\n", f.FolderPath)
	writeList(&sb, "src_pattern", f.SrcPatterns)
	writeList(&sb, "exclude_pattern", f.ExcludePatterns)
	writeList(&sb, "include_folders", f.IncludeFolders)
	writeList(&sb, "compile_flags", f.CompileFlags)
	return sb.String()
}

func writeField(sb *strings.Builder, key, value string) {
	fmt.Fprintf(sb, "  %s: %q\n", key, value)
}

func writeList(sb *strings.Builder, key string, values []string) {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(sb, "  %s: [%s]\n", key, strings.Join(quoted, ", "))
}

// Markdown summarizes the configuration for display. Flag lists are shown
// as shell-quoted command lines so they can be pasted into a terminal.
func (c *Config) Markdown() string {
	var sb strings.Builder
	ws := c.Workspace

	sb.WriteString("# Workspace\n\n")
	fmt.Fprintf(&sb, "- **Root:** `%s`\n", orNone(ws.RootFolder))
	fmt.Fprintf(&sb, "- **C compiler:** `%s`\n", orNone(ws.CCompilerPath))
	fmt.Fprintf(&sb, "- **C++ compiler:** `%s`\n", orNone(ws.CppCompilerPath))
	fmt.Fprintf(&sb, "- **C++ extensions:** %s\n", strings.Join(ws.EffectiveCppExtensions(), " "))
	fmt.Fprintf(&sb, "- **Respect .gitignore:** %t\n", ws.RespectGitignore)
	writeMarkdownList(&sb, "Sources", ws.SrcPatterns)
	writeMarkdownList(&sb, "Excludes", ws.ExcludePatterns)
	writeMarkdownCommand(&sb, "Includes", ws.IncludeFolders)
	writeMarkdownCommand(&sb, "Flags", ws.CompileFlags)

	for _, f := range c.Folders {
		fmt.Fprintf(&sb, "\n## Folder `%s`\n\n", orNone(f.FolderPath))
		writeMarkdownList(&sb, "Sources", f.SrcPatterns)
		writeMarkdownList(&sb, "Excludes", f.ExcludePatterns)
		writeMarkdownCommand(&sb, "Includes", f.IncludeFolders)
		writeMarkdownCommand(&sb, "Flags", f.CompileFlags)
	}
	return sb.String()
}

func writeMarkdownList(sb *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(sb, "- **%s:** none\n", label)
		return
	}
	fmt.Fprintf(sb, "- **%s:**\n", label)
	for _, v := range values {
		fmt.Fprintf(sb, "  - `%s`\n", v)
	}
}

func writeMarkdownCommand(sb *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(sb, "- **%s:** none\n", label)
		return
	}
	fmt.Fprintf(sb, "- **%s:** `%s`\n", label, shellquote.Join(values...))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
