// Package fsutil reads input files and replaces output files atomically.
package fsutil

import (
	"io"
	"os"
	"path/filepath"
)

// stagingFile is the slice of *os.File used while staging a write.
type stagingFile interface {
	io.Writer
	Sync() error
	Close() error
	Name() string
}

// OSFileSystem reads and writes through the local filesystem. The syscalls
// used for writing are fields so tests can fail each one in turn.
type OSFileSystem struct {
	createTemp func(dir, pattern string) (stagingFile, error)
	rename     func(oldpath, newpath string) error
	chmod      func(name string, mode os.FileMode) error
	remove     func(name string) error
}

// NewOSFileSystem creates an OSFileSystem bound to the real OS.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		createTemp: func(dir, pattern string) (stagingFile, error) {
			return os.CreateTemp(dir, pattern)
		},
		rename: os.Rename,
		chmod:  os.Chmod,
		remove: os.Remove,
	}
}

// ReadFile reads the whole file at path.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic replaces path with content and mode perm. The content is
// staged in a hidden sibling file which is renamed over path only once it is
// fully written, synced and has its final mode; readers see either the old
// file or the new one. On failure the staging file is removed and an
// *AtomicWriteError names the failed step.
func (r *OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	f, err := r.createTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &AtomicWriteError{Step: StepCreate, Target: path, Cause: err}
	}

	temp := f.Name()
	fail := func(step Step, err error) error {
		_ = r.remove(temp)
		return &AtomicWriteError{Step: step, Target: path, Temp: temp, Mode: perm, Cause: err}
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fail(StepWrite, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fail(StepSync, err)
	}
	if err := f.Close(); err != nil {
		return fail(StepClose, err)
	}
	if err := r.chmod(temp, perm); err != nil {
		return fail(StepChmod, err)
	}
	if err := r.rename(temp, path); err != nil {
		return fail(StepRename, err)
	}
	return nil
}
