package marathon

type (
	// DeployAppRequestBody is kept generic since manifests are passed through
	// untouched and may carry any field Marathon understands.
	DeployAppRequestBody = map[string]interface{}
)
