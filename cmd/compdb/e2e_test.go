//go:build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type e2eEntry struct {
	Directory string   `json:"directory"`
	Arguments []string `json:"arguments"`
	File      string   `json:"file"`
}

func TestGenerate_MultiFolderWorkspace(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	dir := workspace(t, map[string]string{
		"cfg.json": `{
  "c_compiler_path": "clang",
  "cpp_compiler_path": "clang++",
  "workspace_root_folder": "ws",
  "workspace_src_pattern": ["**/*.c", "**/*.cpp"],
  "workspace_exclude_pattern": ["**/test_*"],
  "workspace_include_folders": ["ws/include"],
  "workspace_compile_flags": ["-Wall"],
  "folders": [
    {"folder": "core", "src_pattern": ["*.c"], "compile_flags": ["-DCORE"]},
    {"folder": "app", "include_folders": ["ws/app/inc"], "exclude_pattern": ["legacy/**"]}
  ]
}`,
		"ws/core/b.c":           "",
		"ws/core/a.cpp":         "",
		"ws/core/test_core.c":   "",
		"ws/app/main.cpp":       "",
		"ws/app/legacy/old.c":   "",
		"ws/app/util/helper.c":  "",
		"ws/app/util/parser.cc": "",
	})

	r := runWith(t, Dependencies{}, "cfg.json")
	require.Equal(t, exitOK, r.code, r.stderr)

	data, err := os.ReadFile(filepath.Join(dir, "compile_commands.json"))
	require.NoError(t, err)

	var entries []e2eEntry
	require.NoError(t, jsoniter.Unmarshal(data, &entries))

	byFile := make(map[string]e2eEntry, len(entries))
	var files []string
	for _, e := range entries {
		assert.Equal(t, "ws", e.Directory)
		byFile[e.File] = e
		files = append(files, e.File)
	}

	// core: workspace patterns first (b.c, a.cpp), then the folder's *.c adds nothing new.
	assert.Equal(t, []string{
		"ws/core/b.c",
		"ws/core/a.cpp",
		"ws/app/util/helper.c",
		"ws/app/main.cpp",
	}, files)

	assert.Equal(t, []string{"clang", "-includews/include", "-Wall", "-DCORE"}, byFile["ws/core/b.c"].Arguments)
	assert.Equal(t, []string{"clang++", "-includews/include", "-Wall", "-DCORE"}, byFile["ws/core/a.cpp"].Arguments)
	assert.Equal(t, []string{"clang++", "-includews/include", "-includews/app/inc", "-Wall"}, byFile["ws/app/main.cpp"].Arguments)
	assert.NotContains(t, byFile, "ws/core/test_core.c")
	assert.NotContains(t, byFile, "ws/app/legacy/old.c")
	assert.NotContains(t, byFile, "ws/app/util/parser.cc")
}
