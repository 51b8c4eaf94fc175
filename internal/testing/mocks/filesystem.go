// Package mocks provides in-memory collaborators shared by package tests.
package mocks

import (
	"fmt"
	"os"
	"sync"
)

// MockFileSystem is an in-memory stand-in for the read and atomic-write
// operations a generation run performs.
type MockFileSystem struct {
	Mu       sync.RWMutex
	Files    map[string][]byte      // path -> content
	Perms    map[string]os.FileMode // path -> mode of the last write
	Errors   map[string]error       // path -> error to return
	OpErrors map[string]error       // operation -> error to return
	Writes   int
}

// NewMockFileSystem creates an empty mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:    make(map[string][]byte),
		Perms:    make(map[string]os.FileMode),
		Errors:   make(map[string]error),
		OpErrors: make(map[string]error),
	}
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Errors[path] = err
}

// SetOperationError sets an error to return for a specific operation
// ("ReadFile" or "WriteFileAtomic").
func (f *MockFileSystem) SetOperationError(operation string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.OpErrors[operation] = err
}

// CreateFile creates a file with content
func (f *MockFileSystem) CreateFile(path string, content []byte, perm os.FileMode) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Files[path] = content
	f.Perms[path] = perm
}

// ReadFile returns the stored content, os.ErrNotExist for unknown paths.
func (f *MockFileSystem) ReadFile(path string) ([]byte, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.OpErrors["ReadFile"]; ok {
		return nil, err
	}

	if err, ok := f.Errors[path]; ok {
		return nil, err
	}

	content, ok := f.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return content, nil
}

// WriteFileAtomic replaces path's content in one step.
func (f *MockFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err, ok := f.OpErrors["WriteFileAtomic"]; ok {
		return err
	}

	if err, ok := f.Errors[path]; ok {
		return fmt.Errorf("write %s: %w", path, err)
	}

	f.Files[path] = append([]byte(nil), content...)
	f.Perms[path] = perm
	f.Writes++
	return nil
}
