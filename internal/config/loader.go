package config

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const foldersKey = "folders"

// FileSystem abstracts file operations for testability
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoaderWithFS creates a Loader reading through fs.
func NewLoaderWithFS(fs FileSystem) *Loader {
	if fs == nil {
		panic("fs is required")
	}
	return &Loader{fs: fs}
}

// Load reads the configuration file at path, parses it as JSON and decodes
// it into a Config.
//
// Errors:
//   - *NotFoundError when the file cannot be read
//   - *NotJSONError when the contents are not JSON
//   - ErrMissingFolders (wrapped with the path) when there is no folders array
//   - *DecodeError or *ValidationError (wrapped with the path) for bad values
func (l *Loader) Load(path string) (*Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Cause: err}
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, &NotJSONError{Path: path, Cause: err}
	}

	cfg, err := Decode(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode builds a Config from a parsed JSON tree.
// Missing keys and nulls leave zero values. The folders array is the only
// required key: its absence, or a non-array value, yields ErrMissingFolders.
func Decode(tree any) (*Config, error) {
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, ErrMissingFolders
	}
	rawFolders, ok := lookupFolders(root)
	if !ok {
		return nil, ErrMissingFolders
	}

	cfg := &Config{}

	unused, err := decodeInto(root, &cfg.Workspace, "")
	if err != nil {
		return nil, err
	}
	for _, key := range unused {
		if key != foldersKey {
			cfg.UnknownKeys = append(cfg.UnknownKeys, key)
		}
	}

	cfg.Folders = make([]FolderSettings, 0, len(rawFolders))
	for i, raw := range rawFolders {
		scope := fmt.Sprintf("%s[%d]", foldersKey, i)

		var folder FolderSettings
		unused, err := decodeInto(raw, &folder, scope)
		if err != nil {
			return nil, err
		}
		for _, key := range unused {
			cfg.UnknownKeys = append(cfg.UnknownKeys, scope+"."+key)
		}
		cfg.Folders = append(cfg.Folders, folder)
	}

	sort.Strings(cfg.UnknownKeys)
	return cfg, nil
}

func lookupFolders(root map[string]any) ([]any, bool) {
	raw, ok := root[foldersKey]
	if !ok {
		return nil, false
	}
	folders, ok := raw.([]any)
	return folders, ok
}

// matchKeyExactly makes keys case-sensitive; "C_Compiler_Path" is unknown,
// not an alias of c_compiler_path.
func matchKeyExactly(mapKey, fieldName string) bool {
	return mapKey == fieldName
}

// decodeInto decodes input into out and returns the keys nothing consumed.
func decodeInto(input any, out any, scope string) ([]string, error) {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:  &md,
		Result:    out,
		MatchName: matchKeyExactly,
	})
	if err != nil {
		return nil, err
	}

	if err := dec.Decode(input); err != nil {
		return nil, &DecodeError{Scope: scope, Cause: err}
	}
	return md.Unused, nil
}
