package compdb

import (
	"testing"

	"github.com/Cyclone1070/compdb/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestBuildFlags_Layout(t *testing.T) {
	ws := config.WorkspaceSettings{
		IncludeFolders: []string{"ws1", "ws2"},
		CompileFlags:   []string{"-Wall", "-O2"},
	}
	folder := config.FolderSettings{
		IncludeFolders: []string{"f1"},
		CompileFlags:   []string{"-DFOLDER"},
	}

	got := BuildFlags(ws, folder)

	assert.Equal(t, []string{"-includews1", "-includews2", "-includef1", "-Wall", "-O2", "-DFOLDER"}, got)
}

func TestBuildFlags_Empty(t *testing.T) {
	got := BuildFlags(config.WorkspaceSettings{}, config.FolderSettings{})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildFlags_DoesNotAliasSettings(t *testing.T) {
	ws := config.WorkspaceSettings{CompileFlags: make([]string, 1, 8)}
	ws.CompileFlags[0] = "-Wall"

	got := BuildFlags(ws, config.FolderSettings{})
	got[0] = "-changed"

	assert.Equal(t, "-Wall", ws.CompileFlags[0])
}
