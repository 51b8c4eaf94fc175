package config

// DefaultCppExtensions are the file extensions compiled with the C++ compiler
// when the configuration does not set cpp_extensions.
var DefaultCppExtensions = []string{".cpp", ".cxx", ".cc"}

// OutputFile is the name of the database written into the working directory.
const OutputFile = "compile_commands.json"

// EffectiveCppExtensions returns the configured C++ extensions, or the
// defaults when none are configured. The result is always a fresh slice.
func (w WorkspaceSettings) EffectiveCppExtensions() []string {
	if len(w.CppExtensions) == 0 {
		return MergeLists(DefaultCppExtensions, nil)
	}
	return MergeLists(w.CppExtensions, nil)
}
