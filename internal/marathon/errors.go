package marathon

import (
	"fmt"
)

type InstallStep string

const (
	StepWait   InstallStep = "wait"
	StepLoad   InstallStep = "load"
	StepDeploy InstallStep = "deploy"
)

// InstallError reports the step of InstallApps that failed. Err is one of
// *readiness.NotReadyError, *manifest.NotFoundError, *manifest.ReadError or
// *marathon.DeploymentRejectedError.
type InstallError struct {
	Step     InstallStep
	Endpoint string
	// Ref is empty for StepWait.
	Ref string
	Err error
}

func (e *InstallError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("installing apps on Marathon at %s: %s failed: %s", e.Endpoint, e.Step, e.Err)
	}

	return fmt.Sprintf("installing apps on Marathon at %s: %s of %s failed: %s", e.Endpoint, e.Step, e.Ref,
		e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}
