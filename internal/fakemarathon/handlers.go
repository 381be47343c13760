package fakemarathon

import (
	"fmt"
	"net/http"

	api "github.com/bruno-anjos/cluster-harness/api/marathon"
	"github.com/bruno-anjos/cluster-harness/internal/utils"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (s *Server) getAppsHandler(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	s.lock.RLock()
	apps := make([]api.DeployAppRequestBody, 0, len(s.order))
	for _, id := range s.order {
		apps = append(apps, s.apps[id])
	}
	s.lock.RUnlock()

	utils.SendJSONReplyOK(w, map[string]interface{}{"apps": apps})
}

func (s *Server) deployAppHandler(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	log.Debug("handling deploy app")

	var app api.DeployAppRequestBody
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		utils.SendJSONReplyStatus(w, http.StatusBadRequest, api.ErrorResponseBody{
			Message: "Invalid JSON: " + err.Error(),
		})

		return
	}

	appID, ok := app["id"].(string)
	if !ok || appID == "" {
		utils.SendJSONReplyStatus(w, http.StatusUnprocessableEntity, api.ErrorResponseBody{
			Message: "Object is not valid: id must be a non-empty string",
		})

		return
	}

	appID = normalizeID(appID)
	app["id"] = appID

	s.lock.Lock()
	defer s.lock.Unlock()

	if rej, rejected := s.rejections[appID]; rejected {
		utils.SendJSONReplyStatus(w, rej.status, api.ErrorResponseBody{Message: rej.message})

		return
	}

	if _, exists := s.apps[appID]; exists {
		utils.SendJSONReplyStatus(w, http.StatusConflict, api.ErrorResponseBody{
			Message: fmt.Sprintf("An app with id [%s] already exists.", appID),
		})

		return
	}

	app["version"] = newVersion()
	s.store(appID, app)

	log.Debugf("deployed app %s", appID)
	utils.SendJSONReplyStatus(w, http.StatusCreated, api.DeployAppResponseBody(app))
}

func (s *Server) deleteAppHandler(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	appID, ok := utils.ExtractPathVar(r, appIDPathVar)
	if !ok || appID == "" {
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	appID = normalizeID(appID)

	s.lock.Lock()
	removed := s.remove(appID)
	s.lock.Unlock()

	if !removed {
		utils.SendJSONReplyStatus(w, http.StatusNotFound, api.ErrorResponseBody{
			Message: fmt.Sprintf("App '%s' does not exist", appID),
		})

		return
	}

	log.Debugf("deleted app %s", appID)
	utils.SendJSONReplyOK(w, api.DeleteAppResponseBody{
		Version:      newVersion(),
		DeploymentID: uuid.New().String(),
	})
}
