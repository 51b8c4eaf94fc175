package config

import (
	"fmt"
	"strings"
)

// Validate checks values that would make generation meaningless.
// Paths and flags are passed through untouched and are never checked.
func (c *Config) Validate() error {
	var errs []string

	for i, ext := range c.Workspace.CppExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, fmt.Sprintf("cpp_extensions[%d] %q must start with '.' and name an extension", i, ext))
		}
		if strings.ContainsAny(ext, `/\`) {
			errs = append(errs, fmt.Sprintf("cpp_extensions[%d] %q must not contain a path separator", i, ext))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}

	return nil
}
