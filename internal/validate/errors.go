package validate

import (
	"errors"
	"fmt"
	"strings"
)

// MissingFieldError reports every required field that was absent, as dotted
// paths (e.g. "source.name").
type MissingFieldError struct {
	Paths []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Paths, ", "))
}

// MalformedSubstructureError reports a field that must be a mapping but
// holds something else.
type MalformedSubstructureError struct {
	Path string
	Got  string // Go type of the offending value
}

func (e *MalformedSubstructureError) Error() string {
	return fmt.Sprintf("field %q must be a mapping, got %s", e.Path, e.Got)
}

// IsMissing reports whether err carries a MissingFieldError.
func IsMissing(err error) bool {
	var missing *MissingFieldError
	return errors.As(err, &missing)
}

// MissingPaths returns the missing dotted paths carried by err, or nil.
func MissingPaths(err error) []string {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Paths
	}
	return nil
}
