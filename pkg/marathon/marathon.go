package marathon

import (
	"context"

	api "github.com/bruno-anjos/cluster-harness/api/marathon"
	"github.com/bruno-anjos/cluster-harness/pkg/utils"
)

const (
	Port = 8080
)

// Client talks to the Marathon control API of a single instance.
//
// DeployApp is strict: anything but 201 Created is an error. ListApps and
// DeleteApp are best effort, failures are logged and swallowed so that
// teardown keeps going.
type Client interface {
	utils.GenericClient
	Endpoint() string
	Ping(ctx context.Context) error
	DeployApp(ctx context.Context, manifestJSON string) error
	ListApps(ctx context.Context) []*api.AppDTO
	DeleteApp(ctx context.Context, appID string)
}

type ClientFactory interface {
	New(addr string) Client
}
