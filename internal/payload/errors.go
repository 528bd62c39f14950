package payload

import "fmt"

// UnformattableLicenseError reports a license that could not be coerced
// into a service's license shape. It is never fatal: the license is
// skipped and the rest of the payload is built.
type UnformattableLicenseError struct {
	Index int    // Position in Record.Licenses
	Name  string // License name, if any
	Err   error
}

func (e *UnformattableLicenseError) Error() string {
	return fmt.Sprintf("license %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *UnformattableLicenseError) Unwrap() error {
	return e.Err
}

// UnformattableCitationError reports a citation that could not be turned
// into a service's reference shape. Like licenses, it is skipped.
type UnformattableCitationError struct {
	Index int
	Err   error
}

func (e *UnformattableCitationError) Error() string {
	return fmt.Sprintf("citation %d: %v", e.Index, e.Err)
}

func (e *UnformattableCitationError) Unwrap() error {
	return e.Err
}
