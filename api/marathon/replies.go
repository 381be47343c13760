package marathon

type (
	GetAppsResponseBody struct {
		Apps []*AppDTO `json:"apps"`
	}
	DeployAppResponseBody = map[string]interface{}
	DeleteAppResponseBody struct {
		Version      string `json:"version"`
		DeploymentID string `json:"deploymentId"`
	}
	ErrorResponseBody = ErrorDTO
)
