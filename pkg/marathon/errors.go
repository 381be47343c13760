package marathon

import (
	"fmt"
)

// DeploymentRejectedError is returned when Marathon does not answer a deploy
// with 201 Created, or cannot be reached at all.
type DeploymentRejectedError struct {
	Endpoint string
	// Status is -1 when no response was received.
	Status int
	Body   string
	Err    error
}

func (e *DeploymentRejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not deploy app on Marathon at %s => %s", e.Endpoint, e.Err)
	}

	return fmt.Sprintf("Marathon at %s did not accept the app (status %d): %s", e.Endpoint, e.Status, e.Body)
}

func (e *DeploymentRejectedError) Unwrap() error {
	return e.Err
}
