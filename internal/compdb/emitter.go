package compdb

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/compdb/internal/config"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OutputPerm is the mode of the written database.
const OutputPerm os.FileMode = 0o644

// atomicWriter commits content to path without exposing partial writes.
type atomicWriter interface {
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// WriteError is returned when the database cannot be encoded or written.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Encode renders entries as an indented JSON array with a trailing newline.
// A nil or empty list encodes as "[]".
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes entries into dir/compile_commands.json and returns the path.
func Write(w atomicWriter, dir string, entries []Entry) (string, error) {
	path := filepath.Join(dir, config.OutputFile)

	data, err := Encode(entries)
	if err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}

	if err := w.WriteFileAtomic(path, data, OutputPerm); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}
	return path, nil
}
