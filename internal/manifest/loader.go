package manifest

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bruno-anjos/cluster-harness/internal/utils"
	"github.com/bruno-anjos/cluster-harness/pkg/utils/client"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const utf8BOM = "\uFEFF"

// Loader resolves manifest references to their JSON text.
type Loader struct {
	resources  fs.FS
	httpClient *http.Client
}

// NewLoader returns a loader that resolves resource references against
// resources. A nil resources falls back to the bundled manifests.
func NewLoader(resources fs.FS) *Loader {
	return NewLoaderWithHTTPClient(resources, &http.Client{Timeout: client.DefaultTimeout})
}

func NewLoaderWithHTTPClient(resources fs.FS, httpClient *http.Client) *Loader {
	if resources == nil {
		resources = Bundled()
	}

	return &Loader{
		resources:  resources,
		httpClient: httpClient,
	}
}

// Load returns the text of the manifest ref points to. It fails with
// *NotFoundError when nothing is there and with *ReadError when reading
// what is there fails.
func (l *Loader) Load(ctx context.Context, ref string) (string, error) {
	parsed := ParseRef(ref)

	log.Debugf("loading manifest %s as %s", ref, parsed)

	var (
		content []byte
		err     error
	)

	switch parsed.Kind {
	case KindURL:
		content, err = l.loadURL(ctx, parsed)
	case KindResource:
		content, err = l.loadResource(parsed)
	default:
		content, err = l.loadFile(parsed)
	}

	if err != nil {
		return "", err
	}

	return strings.TrimPrefix(string(content), utf8BOM), nil
}

func (l *Loader) loadFile(ref Ref) ([]byte, error) {
	path, err := expandHome(ref.Location)
	if err != nil {
		return nil, &NotFoundError{Ref: ref.Raw, Err: err}
	}

	if path == "" {
		return nil, &NotFoundError{Ref: ref.Raw, Err: errors.New("empty path")}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Ref: ref.Raw, Err: err}
		}

		return nil, &ReadError{Ref: ref.Raw, Err: err}
	}

	defer closeQuietly(f)

	return readAll(ref, f)
}

func (l *Loader) loadResource(ref Ref) ([]byte, error) {
	if !fs.ValidPath(ref.Location) {
		return nil, &NotFoundError{Ref: ref.Raw, Err: errors.Errorf("invalid resource path %q", ref.Location)}
	}

	f, err := l.resources.Open(ref.Location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Ref: ref.Raw, Err: err}
		}

		return nil, &ReadError{Ref: ref.Raw, Err: err}
	}

	defer closeQuietly(f)

	return readAll(ref, f)
}

func (l *Loader) loadURL(ctx context.Context, ref Ref) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.Location, nil)
	if err != nil {
		return nil, &NotFoundError{Ref: ref.Raw, Err: err}
	}

	req.Header.Set("Accept", utils.ContentTypeJSON)

	status, body, err := utils.DoRequest(l.httpClient, req)
	if err != nil {
		return nil, &NotFoundError{Ref: ref.Raw, Err: err}
	}

	switch {
	case status == http.StatusNotFound, status == http.StatusGone:
		return nil, &NotFoundError{Ref: ref.Raw, Err: errors.Errorf("got status %d", status)}
	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		return nil, &ReadError{Ref: ref.Raw, Err: errors.Errorf("got status %d", status)}
	}

	return body, nil
}

func readAll(ref Ref, r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Ref: ref.Raw, Err: err}
	}

	return content, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "expanding ~")
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warn(err)
	}
}
