package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndDoRequest(t *testing.T) {
	var gotReqID, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get(ReqIDHeaderField)
		gotPath = r.URL.Path

		SendJSONReplyStatus(w, http.StatusAccepted, map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	req, err := BuildRequest(context.Background(), http.MethodPut, strings.TrimPrefix(srv.URL, "http://"),
		"/v2/apps/group/app", []byte(`{}`))
	require.NoError(t, err)

	status, body, err := DoRequest(srv.Client(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.JSONEq(t, `{"ok":"yes"}`, string(body))
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "/v2/apps/group/app", gotPath)
}

func TestDoRequestNilClient(t *testing.T) {
	req, err := BuildRequest(context.Background(), http.MethodGet, "localhost:1", "/", nil)
	require.NoError(t, err)

	status, _, err := DoRequest(nil, req)
	assert.Equal(t, -1, status)
	assert.ErrorIs(t, err, ErrNilHTTPClient)
}

func TestDoRequestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	req, err := BuildRequest(context.Background(), http.MethodGet, addr, "/v2/apps", nil)
	require.NoError(t, err)

	status, _, err := DoRequest(http.DefaultClient, req)
	assert.Equal(t, -1, status)
	assert.Error(t, err)
	assert.False(t, IsTimeout(err))
}

func TestNewRouterPrefixAndRestVar(t *testing.T) {
	var got string

	router := NewRouter("/v2", []Route{{
		Name:    "DELETE_APP",
		Method:  http.MethodDelete,
		Pattern: "/apps/{appId:.+}",
		HandlerFunc: func(w http.ResponseWriter, r *http.Request) {
			got, _ = ExtractPathVar(r, "appId")
			w.WriteHeader(http.StatusOK)
		},
	}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v2/apps/group/app", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "group/app", got)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/apps/x", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
