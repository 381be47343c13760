package manifest

import (
	"fmt"
)

// NotFoundError means the reference did not resolve to any content.
type NotFoundError struct {
	Ref string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("failed to find content of %s: %s", e.Ref, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ReadError means the reference resolved but its content could not be read.
type ReadError struct {
	Ref string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to load JSON from %s: %s", e.Ref, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
