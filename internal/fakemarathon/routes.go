package fakemarathon

import (
	"fmt"
	"net/http"

	api "github.com/bruno-anjos/cluster-harness/api/marathon"
	"github.com/bruno-anjos/cluster-harness/internal/utils"
)

// Route names
const (
	getAppsName   = "GET_APPS"
	deployAppName = "DEPLOY_APP"
	deleteAppName = "DELETE_APP"
)

const (
	appIDPathVar = "appId"
)

var (
	_appIDPathVarFormatted = fmt.Sprintf(utils.PathRestVarFormat, appIDPathVar)

	appsRoute = api.AppsPath
	appRoute  = api.AppsPath + "/" + _appIDPathVarFormatted
)

func (s *Server) Routes() []utils.Route {
	return []utils.Route{
		{
			Name:        getAppsName,
			Method:      http.MethodGet,
			Pattern:     appsRoute,
			HandlerFunc: s.getAppsHandler,
		},

		{
			Name:        deployAppName,
			Method:      http.MethodPost,
			Pattern:     appsRoute,
			HandlerFunc: s.deployAppHandler,
		},

		{
			Name:        deleteAppName,
			Method:      http.MethodDelete,
			Pattern:     appRoute,
			HandlerFunc: s.deleteAppHandler,
		},
	}
}
