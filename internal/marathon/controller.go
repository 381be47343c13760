package marathon

import (
	"context"
	"time"

	api "github.com/bruno-anjos/cluster-harness/api/marathon"
	"github.com/bruno-anjos/cluster-harness/internal/readiness"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

type State int

const (
	StateCreated State = iota
	StateWaitingForReady
	StateReady
	StateDeployingApps
	StateInstalled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateWaitingForReady:
		return "waiting-for-ready"
	case StateReady:
		return "ready"
	case StateDeployingApps:
		return "deploying-apps"
	case StateInstalled:
		return "installed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	readinessPollInterval = time.Second
)

// AppsClient is the part of the Marathon API the controller drives.
type AppsClient interface {
	Endpoint() string
	Ping(ctx context.Context) error
	DeployApp(ctx context.Context, manifestJSON string) error
	ListApps(ctx context.Context) []*api.AppDTO
	DeleteApp(ctx context.Context, appID string)
}

type ManifestLoader interface {
	Load(ctx context.Context, ref string) (string, error)
}

type Settings struct {
	// Timeout bounds the wait for Marathon to answer.
	Timeout time.Duration
	// Manifests are deployed in this order.
	Manifests []string
}

// Controller brings the apps of a single Marathon instance up and down. It is
// not meant to be used from several goroutines at once.
type Controller struct {
	client       AppsClient
	loader       ManifestLoader
	settings     Settings
	pollInterval time.Duration
	state        State
}

func NewController(client AppsClient, loader ManifestLoader, settings Settings) *Controller {
	manifests := make([]string, len(settings.Manifests))
	copy(manifests, settings.Manifests)
	settings.Manifests = manifests

	return &Controller{
		client:       client,
		loader:       loader,
		settings:     settings,
		pollInterval: readinessPollInterval,
		state:        StateCreated,
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Endpoint() string {
	return c.client.Endpoint()
}

// WaitFor blocks until Marathon answers on its apps endpoint, whatever the
// status, or the configured timeout elapses.
func (c *Controller) WaitFor(ctx context.Context) error {
	log.Debugf("Waiting for Marathon to be ready at %s", c.Endpoint())

	return readiness.WaitFor(ctx, func(ctx context.Context) bool {
		return c.client.Ping(ctx) == nil
	}, readiness.Options{
		Endpoint:     c.Endpoint(),
		Timeout:      c.settings.Timeout,
		PollInterval: c.pollInterval,
	})
}

// InstallApps waits for Marathon and deploys every configured manifest in
// order. The first failure stops the installation, apps deployed before it
// are left running.
func (c *Controller) InstallApps(ctx context.Context) error {
	c.state = StateWaitingForReady

	if err := c.WaitFor(ctx); err != nil {
		return c.fail(StepWait, "", err)
	}

	c.state = StateReady
	log.Debugf("Marathon at %s is ready, installing %d apps", c.Endpoint(), len(c.settings.Manifests))

	c.state = StateDeployingApps

	for _, ref := range c.settings.Manifests {
		manifestJSON, err := c.loader.Load(ctx, ref)
		if err != nil {
			return c.fail(StepLoad, ref, err)
		}

		appID := gjson.Get(manifestJSON, "id").String()
		log.Debugf("Installing app %q from %s on Marathon %s", appID, ref, c.Endpoint())

		if err = c.client.DeployApp(ctx, manifestJSON); err != nil {
			return c.fail(StepDeploy, ref, err)
		}

		log.Infof("Installed app %q from %s", appID, ref)
	}

	c.state = StateInstalled

	return nil
}

func (c *Controller) fail(step InstallStep, ref string, err error) error {
	c.state = StateFailed

	installErr := &InstallError{
		Step:     step,
		Endpoint: c.Endpoint(),
		Ref:      ref,
		Err:      err,
	}
	log.Error(installErr)

	return installErr
}

// KillAllApps deletes every app Marathon currently runs. It never fails: a
// listing that cannot be fetched deletes nothing and a failed delete does not
// stop the others.
func (c *Controller) KillAllApps(ctx context.Context) {
	apps := c.client.ListApps(ctx)
	if len(apps) == 0 {
		log.Debugf("No apps to kill on Marathon %s", c.Endpoint())

		return
	}

	for _, app := range apps {
		if app == nil || app.ID == "" {
			continue
		}

		log.Debugf("Killing app %s on Marathon %s", app.ID, c.Endpoint())
		c.client.DeleteApp(ctx, app.ID)
	}
}
