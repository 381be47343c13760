package marathon

import "fmt"

// Paths
const (
	PrefixPath = "/v2"

	AppsPath = "/apps"
	AppPath  = "/apps%s"
)

func GetAppsPath() string {
	return PrefixPath + AppsPath
}

// GetAppPath appends appID verbatim to the apps collection. Marathon returns
// ids with their own leading slash ("/group/app"), so callers must pass them
// in the form the listing endpoint returned them.
func GetAppPath(appID string) string {
	return fmt.Sprintf(PrefixPath+AppPath, appID)
}
