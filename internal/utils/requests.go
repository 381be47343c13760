package utils

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ReqIDHeaderField = "REQ_ID"

	ContentTypeJSON = "application/json"
)

// BuildRequest builds a plain http request against host (host:port) and path.
// The body is sent as is, an empty body is allowed.
func BuildRequest(ctx context.Context, method, host, path string, body []byte) (*http.Request, error) {
	hostURL := url.URL{
		Scheme: "http",
		Host:   host,
		Path:   path,
	}

	request, err := http.NewRequestWithContext(ctx, method, hostURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, hostURL.String())
	}

	request.Header.Set("Content-Type", ContentTypeJSON)
	request.Header.Set("Accept", ContentTypeJSON)

	return request, nil
}

// DoRequest executes request and returns the status together with the whole
// response body. A non-nil error means no response was obtained, in which case
// status is -1.
func DoRequest(httpClient *http.Client, request *http.Request) (status int, body []byte, err error) {
	log.Debugf("Doing request: %s %s", request.Method, request.URL.String())

	if httpClient == nil {
		return -1, nil, ErrNilHTTPClient
	}

	reqID, err := uuid.NewUUID()
	if err != nil {
		return -1, nil, errors.Wrap(err, "generating request id")
	}

	request.Header.Set(ReqIDHeaderField, reqID.String())

	resp, err := httpClient.Do(request)
	if err != nil {
		log.Debugf("%s %s failed (timed out: %t): %s", request.Method, request.URL.String(), IsTimeout(err), err)

		return -1, nil, err
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn(closeErr)
		}
	}()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return -1, nil, errors.Wrapf(err, "reading response of %s %s", request.Method, request.URL.String())
	}

	log.Debugf("Done: %s %s (%d)", request.Method, request.URL.String(), resp.StatusCode)

	return resp.StatusCode, body, nil
}

func IsTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}

	return os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded)
}

func ExtractPathVar(r *http.Request, varName string) (varValue string, ok bool) {
	vars := mux.Vars(r)
	varValue, ok = vars[varName]

	return
}
