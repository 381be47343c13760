package manifest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/bruno-anjos/cluster-harness/internal/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		raw      string
		kind     Kind
		location string
	}{
		{raw: "http://example.com/app.json", kind: KindURL, location: "http://example.com/app.json"},
		{raw: "HTTPS://example.com/app.json", kind: KindURL, location: "HTTPS://example.com/app.json"},
		{raw: "file:///tmp/app.json", kind: KindFile, location: "/tmp/app.json"},
		{raw: "classpath:apps/app.json", kind: KindResource, location: "apps/app.json"},
		{raw: "classpath:/apps/app.json", kind: KindResource, location: "apps/app.json"},
		{raw: "resource:apps/app.json", kind: KindResource, location: "apps/app.json"},
		{raw: "./apps/app.json", kind: KindFile, location: "./apps/app.json"},
		{raw: " /abs/app.json ", kind: KindFile, location: "/abs/app.json"},
	}

	for _, tt := range tests {
		ref := ParseRef(tt.raw)
		assert.Equal(t, tt.kind, ref.Kind, tt.raw)
		assert.Equal(t, tt.location, ref.Location, tt.raw)
		assert.Equal(t, tt.raw, ref.Raw)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.json")
	require.NoError(t, os.WriteFile(path, []byte("\uFEFF{\"id\":\"/app\"}"), 0o600))

	l := NewLoader(nil)

	content, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"/app"}`, content)

	content, err = l.Load(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"/app"}`, content)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, err.Error(), "missing.json")
}

func TestLoadFileReadError(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), t.TempDir())

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
}

func TestLoadResource(t *testing.T) {
	resources := fstest.MapFS{
		"apps/app.json": {Data: []byte(`{"id":"/from-resource"}`)},
	}
	l := NewLoader(resources)

	content, err := l.Load(context.Background(), "classpath:apps/app.json")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"/from-resource"}`, content)

	_, err = l.Load(context.Background(), "classpath:apps/other.json")

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = l.Load(context.Background(), "classpath:../escape.json")
	assert.True(t, errors.As(err, &notFound))
}

func TestLoadBundledResource(t *testing.T) {
	content, err := NewLoader(nil).Load(context.Background(), "classpath:apps/weave-scope.json")
	require.NoError(t, err)
	assert.Contains(t, content, `"/weave-scope"`)
}

func TestLoadURL(t *testing.T) {
	mux := http.NewServeMux()
	reqIDs := make(chan string, 1)
	mux.HandleFunc("/app.json", func(w http.ResponseWriter, r *http.Request) {
		reqIDs <- r.Header.Get(utils.ReqIDHeaderField)
		_, _ = w.Write([]byte(`{"id":"/from-url"}`))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	l := NewLoader(nil)

	content, err := l.Load(context.Background(), srv.URL+"/app.json")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"/from-url"}`, content)
	assert.NotEmpty(t, <-reqIDs)

	_, err = l.Load(context.Background(), srv.URL+"/missing.json")

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = l.Load(context.Background(), srv.URL+"/broken.json")

	var readErr *ReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestLoadURLUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/app.json"
	srv.Close()

	_, err := NewLoader(nil).Load(context.Background(), url)

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
