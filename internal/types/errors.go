package types

import (
	"fmt"
	"time"
)

// ValidationError reports a missing or malformed configuration field.
// A pass that fails validation performs no OS mutation.
type ValidationError struct {
	Section string // wired, wifi, cellular; empty for document-level errors
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Section != "" && e.Field != "":
		return fmt.Sprintf("validation failed: %s.%s: %s", e.Section, e.Field, e.Message)
	case e.Section != "":
		return fmt.Sprintf("validation failed: %s: %s", e.Section, e.Message)
	default:
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
}

// OperationError reports a failed OS actuation step. Steps applied earlier in
// the same pass are left in place.
type OperationError struct {
	Op     string
	Device string
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed on %s: %v", e.Op, e.Device, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// TimeoutError reports that no DHCP lease was acquired within the wait window.
type TimeoutError struct {
	Device  string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("could not acquire DHCP lease for %s within %s", e.Device, e.Timeout)
}
