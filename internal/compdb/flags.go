package compdb

import "github.com/Cyclone1070/compdb/internal/config"

// IncludePrefix is glued to each include folder to form one argument token.
const IncludePrefix = "-include"

// BuildFlags assembles a folder's flag vector: workspace includes, folder
// includes, workspace flags, folder flags, each in declared order.
func BuildFlags(ws config.WorkspaceSettings, folder config.FolderSettings) []string {
	includes := config.MergeLists(ws.IncludeFolders, folder.IncludeFolders)
	flags := config.MergeLists(ws.CompileFlags, folder.CompileFlags)

	out := make([]string, 0, len(includes)+len(flags))
	for _, dir := range includes {
		out = append(out, IncludePrefix+dir)
	}
	return append(out, flags...)
}
