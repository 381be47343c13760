package utils

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PathRestVarFormat captures the remainder of the path, slashes included.
const PathRestVarFormat = "{%s:.+}"

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

func NewRouter(prefixPath string, routes []Route) *mux.Router {
	router := mux.NewRouter().StrictSlash(false)
	sub := router.PathPrefix(prefixPath).Subrouter()

	for _, route := range routes {
		sub.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(route.HandlerFunc)
	}

	return router
}
