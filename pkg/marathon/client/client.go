package client

import (
	"context"
	"net/http"
	"strings"

	api "github.com/bruno-anjos/cluster-harness/api/marathon"
	internalUtils "github.com/bruno-anjos/cluster-harness/internal/utils"
	"github.com/bruno-anjos/cluster-harness/pkg/marathon"
	"github.com/bruno-anjos/cluster-harness/pkg/utils"
	"github.com/bruno-anjos/cluster-harness/pkg/utils/client"
	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

type Client struct {
	utils.GenericClient
}

func NewMarathonClient(addr string) *Client {
	return &Client{
		GenericClient: client.NewGenericClient(addr),
	}
}

func NewMarathonClientWithHTTPClient(addr string, httpClient *http.Client) *Client {
	return &Client{
		GenericClient: client.NewGenericClientWithHTTPClient(addr, httpClient),
	}
}

var _ marathon.Client = (*Client)(nil)

func (c *Client) Endpoint() string {
	return "http://" + c.GetHostPort()
}

// Ping issues GET /v2/apps and only reports transport failures. Whatever the
// status code, a responding Marathon counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := internalUtils.BuildRequest(ctx, http.MethodGet, c.GetHostPort(), api.GetAppsPath(), nil)
	if err != nil {
		return err
	}

	_, _, err = internalUtils.DoRequest(c.GetHTTPClient(), req)

	return err
}

func (c *Client) DeployApp(ctx context.Context, manifestJSON string) error {
	req, err := internalUtils.BuildRequest(ctx, http.MethodPost, c.GetHostPort(), api.GetAppsPath(),
		[]byte(manifestJSON))
	if err != nil {
		return &marathon.DeploymentRejectedError{Endpoint: c.Endpoint(), Status: -1, Err: err}
	}

	status, body, err := internalUtils.DoRequest(c.GetHTTPClient(), req)
	if err != nil {
		return &marathon.DeploymentRejectedError{Endpoint: c.Endpoint(), Status: status, Err: err}
	}

	if status != http.StatusCreated {
		return &marathon.DeploymentRejectedError{
			Endpoint: c.Endpoint(),
			Status:   status,
			Body:     strings.TrimSpace(string(body)),
		}
	}

	log.Debug(string(body))
	log.Debugf("Installed an app on Marathon %s", c.Endpoint())

	return nil
}

func (c *Client) ListApps(ctx context.Context) []*api.AppDTO {
	req, err := internalUtils.BuildRequest(ctx, http.MethodGet, c.GetHostPort(), api.GetAppsPath(), nil)
	if err != nil {
		log.Error(err)

		return nil
	}

	status, body, err := internalUtils.DoRequest(c.GetHTTPClient(), req)
	if err != nil {
		log.Errorf("Could not retrieve apps from Marathon at %s: %s", c.Endpoint(), err)

		return nil
	}

	if status != http.StatusOK {
		log.Errorf("Could not retrieve apps from Marathon at %s: got status %d: %s", c.Endpoint(), status,
			strings.TrimSpace(string(body)))

		return nil
	}

	var resp api.GetAppsResponseBody
	if err = json.Unmarshal(body, &resp); err != nil {
		log.Errorf("Could not decode apps from Marathon at %s: %s", c.Endpoint(), err)

		return nil
	}

	return resp.Apps
}

func (c *Client) DeleteApp(ctx context.Context, appID string) {
	req, err := internalUtils.BuildRequest(ctx, http.MethodDelete, c.GetHostPort(), api.GetAppPath(appID), nil)
	if err != nil {
		log.Errorf("Could not delete app %s at %s: %s", appID, c.Endpoint(), err)

		return
	}

	status, body, err := internalUtils.DoRequest(c.GetHTTPClient(), req)
	if err != nil {
		log.Errorf("Could not delete app %s at %s: %s", appID, c.Endpoint(), err)

		return
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		log.Warnf("Marathon at %s answered %d deleting app %s: %s", c.Endpoint(), status, appID,
			strings.TrimSpace(string(body)))

		return
	}

	log.Debugf("Deleted app %s at %s", appID, c.Endpoint())
}
