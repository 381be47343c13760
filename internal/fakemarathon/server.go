package fakemarathon

import (
	"net/http"
	"sync"
	"time"

	api "github.com/bruno-anjos/cluster-harness/api/marathon"
	"github.com/bruno-anjos/cluster-harness/internal/utils"
	"github.com/gorilla/mux"
)

type rejection struct {
	status  int
	message string
}

// Server is an in-memory stand-in for the Marathon apps API. It keeps apps in
// insertion order and can be told to reject specific app ids.
type Server struct {
	lock       sync.RWMutex
	apps       map[string]api.DeployAppRequestBody
	order      []string
	rejections map[string]rejection
	requests   []string
}

func NewServer() *Server {
	return &Server{
		apps:       map[string]api.DeployAppRequestBody{},
		rejections: map[string]rejection{},
	}
}

func (s *Server) Handler() *mux.Router {
	return utils.NewRouter(api.PrefixPath, s.Routes())
}

// Reject makes every deploy of appID fail with status and message.
func (s *Server) Reject(appID string, status int, message string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.rejections[normalizeID(appID)] = rejection{status: status, message: message}
}

// AddApp registers an app as if it had been deployed.
func (s *Server) AddApp(appID string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.store(normalizeID(appID), api.DeployAppRequestBody{"id": normalizeID(appID)})
}

// AppIDs returns the ids of the running apps in deployment order.
func (s *Server) AppIDs() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := make([]string, len(s.order))
	copy(ids, s.order)

	return ids
}

// Requests returns "METHOD path" for every request handled so far.
func (s *Server) Requests() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	reqs := make([]string, len(s.requests))
	copy(reqs, s.requests)

	return reqs
}

func (s *Server) record(r *http.Request) {
	s.lock.Lock()
	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
	s.lock.Unlock()
}

// store must be called with the lock held.
func (s *Server) store(appID string, app api.DeployAppRequestBody) {
	if _, ok := s.apps[appID]; !ok {
		s.order = append(s.order, appID)
	}

	s.apps[appID] = app
}

// remove must be called with the lock held.
func (s *Server) remove(appID string) bool {
	if _, ok := s.apps[appID]; !ok {
		return false
	}

	delete(s.apps, appID)

	for i, id := range s.order {
		if id == appID {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return true
}

func normalizeID(appID string) string {
	if appID == "" || appID[0] == '/' {
		return appID
	}

	return "/" + appID
}

func newVersion() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
