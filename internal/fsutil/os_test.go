package fsutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStagingFile implements stagingFile in memory and records calls.
type mockStagingFile struct {
	buffer   bytes.Buffer
	name     string
	writeErr error
	syncErr  error
	closeErr error
	calls    []string
}

func (m *mockStagingFile) Write(p []byte) (int, error) {
	m.calls = append(m.calls, "write")
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	return m.buffer.Write(p)
}

func (m *mockStagingFile) Sync() error {
	m.calls = append(m.calls, "sync")
	return m.syncErr
}

func (m *mockStagingFile) Close() error {
	m.calls = append(m.calls, "close")
	return m.closeErr
}

func (m *mockStagingFile) Name() string {
	return m.name
}

// stubbedFS wires an OSFileSystem to a mock staging file and records every
// syscall in calls, including those made on the file.
type stubbedFS struct {
	*OSFileSystem
	file    *mockStagingFile
	removed []string
}

func newStubbedFS(file *mockStagingFile) *stubbedFS {
	s := &stubbedFS{OSFileSystem: NewOSFileSystem(), file: file}
	s.createTemp = func(dir, pattern string) (stagingFile, error) {
		return file, nil
	}
	s.chmod = func(name string, mode os.FileMode) error {
		file.calls = append(file.calls, "chmod")
		return nil
	}
	s.rename = func(oldpath, newpath string) error {
		file.calls = append(file.calls, "rename")
		return nil
	}
	s.remove = func(name string) error {
		s.removed = append(s.removed, name)
		return nil
	}
	return s
}

const target = "/work/compile_commands.json"

func TestWriteFileAtomic_StepFailures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		setup     func(s *stubbedFS)
		wantStep  Step
		wantCalls []string
	}{
		{
			name:      "write",
			setup:     func(s *stubbedFS) { s.file.writeErr = boom },
			wantStep:  StepWrite,
			wantCalls: []string{"write", "close"},
		},
		{
			name:      "sync",
			setup:     func(s *stubbedFS) { s.file.syncErr = boom },
			wantStep:  StepSync,
			wantCalls: []string{"write", "sync", "close"},
		},
		{
			name:      "close",
			setup:     func(s *stubbedFS) { s.file.closeErr = boom },
			wantStep:  StepClose,
			wantCalls: []string{"write", "sync", "close"},
		},
		{
			name: "chmod",
			setup: func(s *stubbedFS) {
				s.chmod = func(string, os.FileMode) error { return boom }
			},
			wantStep:  StepChmod,
			wantCalls: []string{"write", "sync", "close"},
		},
		{
			name: "rename",
			setup: func(s *stubbedFS) {
				s.rename = func(string, string) error { return boom }
			},
			wantStep:  StepRename,
			wantCalls: []string{"write", "sync", "close", "chmod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStubbedFS(&mockStagingFile{name: "/work/.compile_commands.json.1.tmp"})
			tt.setup(s)

			err := s.WriteFileAtomic(target, []byte("[]\n"), 0o644)

			var awe *AtomicWriteError
			require.True(t, errors.As(err, &awe), "got %v", err)
			assert.Equal(t, tt.wantStep, awe.Step)
			assert.Equal(t, target, awe.Target)
			assert.Equal(t, s.file.name, awe.Temp)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, tt.wantCalls, s.file.calls)
			assert.Equal(t, []string{s.file.name}, s.removed)
		})
	}
}

func TestWriteFileAtomic_CreateFailure(t *testing.T) {
	fs := NewOSFileSystem()
	var gotDir, gotPattern string
	fs.createTemp = func(dir, pattern string) (stagingFile, error) {
		gotDir, gotPattern = dir, pattern
		return nil, os.ErrPermission
	}
	fs.remove = func(string) error {
		t.Fatal("nothing to remove when the temp file was never created")
		return nil
	}

	err := fs.WriteFileAtomic(target, []byte("[]"), 0o644)

	var awe *AtomicWriteError
	require.True(t, errors.As(err, &awe))
	assert.Equal(t, StepCreate, awe.Step)
	assert.Empty(t, awe.Temp)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, "/work", gotDir)
	assert.Equal(t, ".compile_commands.json.*.tmp", gotPattern)
}

func TestWriteFileAtomic_Success(t *testing.T) {
	s := newStubbedFS(&mockStagingFile{name: "/work/.compile_commands.json.ok.tmp"})
	var chmodName string
	var chmodMode os.FileMode
	var renamed [2]string
	s.chmod = func(name string, mode os.FileMode) error {
		s.file.calls = append(s.file.calls, "chmod")
		chmodName, chmodMode = name, mode
		return nil
	}
	s.rename = func(oldpath, newpath string) error {
		s.file.calls = append(s.file.calls, "rename")
		renamed = [2]string{oldpath, newpath}
		return nil
	}

	require.NoError(t, s.WriteFileAtomic(target, []byte("[]\n"), 0o644))

	assert.Equal(t, []string{"write", "sync", "close", "chmod", "rename"}, s.file.calls)
	assert.Equal(t, s.file.name, chmodName)
	assert.Equal(t, os.FileMode(0o644), chmodMode)
	assert.Equal(t, [2]string{s.file.name, target}, renamed)
	assert.Empty(t, s.removed)
	assert.Equal(t, "[]\n", s.file.buffer.String())
}

func TestAtomicWriteError_Messages(t *testing.T) {
	cause := errors.New("denied")

	create := &AtomicWriteError{Step: StepCreate, Target: target, Cause: cause}
	chmod := &AtomicWriteError{Step: StepChmod, Target: target, Temp: "/work/.t", Mode: 0o644, Cause: cause}
	rename := &AtomicWriteError{Step: StepRename, Target: target, Temp: "/work/.t", Cause: cause}

	assert.Equal(t, target+": create temp file: denied", create.Error())
	assert.Equal(t, target+": set permissions 644 on /work/.t: denied", chmod.Error())
	assert.Equal(t, target+": replace target /work/.t: denied", rename.Error())
}

func TestWriteFileAtomic_RealFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compile_commands.json")
	fs := NewOSFileSystem()
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, fs.WriteFileAtomic(path, []byte("new"), 0o644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.HasSuffix(entries[0].Name(), ".tmp"))
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "compile_commands.json")

	err := NewOSFileSystem().WriteFileAtomic(path, []byte("[]"), 0o644)

	var awe *AtomicWriteError
	require.True(t, errors.As(err, &awe))
	assert.Equal(t, StepCreate, awe.Step)
	assert.NoFileExists(t, path)
}
