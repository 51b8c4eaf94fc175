package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrMissingFolders is returned when the configuration has no folders array.
// Every other key is optional; this one has no sensible default.
var ErrMissingFolders = errors.New("configuration has no \"folders\" array")

// NotFoundError is returned when the configuration file is missing or unreadable.
type NotFoundError struct {
	Path  string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot read configuration file %s: %v", e.Path, e.Cause)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// NotJSONError is returned when the configuration file does not parse as JSON.
type NotJSONError struct {
	Path  string
	Cause error
}

func (e *NotJSONError) Error() string {
	return fmt.Sprintf("configuration file %s is not valid JSON: %v", e.Path, e.Cause)
}

func (e *NotJSONError) Unwrap() error {
	return e.Cause
}

// DecodeError is returned when a present value has the wrong JSON type.
// Scope names the enclosing object, e.g. "folders[2]"; empty means top level.
type DecodeError struct {
	Scope string
	Cause error
}

func (e *DecodeError) Error() string {
	msg := e.Cause.Error()
	var me *mapstructure.Error
	if errors.As(e.Cause, &me) {
		msg = strings.Join(me.Errors, "; ")
	}
	if e.Scope == "" {
		return fmt.Sprintf("invalid configuration value: %s", msg)
	}
	return fmt.Sprintf("invalid configuration value in %s: %s", e.Scope, msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ValidationError collects every problem found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %v", e.Problems)
}
