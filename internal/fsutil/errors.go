package fsutil

import (
	"fmt"
	"os"
)

// Step names the stage of an atomic write that failed.
type Step string

const (
	StepCreate Step = "create temp file"
	StepWrite  Step = "write temp file"
	StepSync   Step = "sync temp file"
	StepClose  Step = "close temp file"
	StepChmod  Step = "set permissions"
	StepRename Step = "replace target"
)

// AtomicWriteError reports which step of WriteFileAtomic failed. Target is the
// file being replaced; Temp is the staging file, empty if it was never created.
type AtomicWriteError struct {
	Step   Step
	Target string
	Temp   string
	Mode   os.FileMode
	Cause  error
}

func (e *AtomicWriteError) Error() string {
	if e.Step == StepChmod {
		return fmt.Sprintf("%s: %s %o on %s: %v", e.Target, e.Step, e.Mode, e.Temp, e.Cause)
	}
	if e.Temp == "" {
		return fmt.Sprintf("%s: %s: %v", e.Target, e.Step, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Target, e.Step, e.Temp, e.Cause)
}

func (e *AtomicWriteError) Unwrap() error {
	return e.Cause
}
