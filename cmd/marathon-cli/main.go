package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bruno-anjos/cluster-harness/internal/config"
	internal "github.com/bruno-anjos/cluster-harness/internal/marathon"
	"github.com/bruno-anjos/cluster-harness/internal/manifest"
	"github.com/bruno-anjos/cluster-harness/internal/runtime/docker"
	"github.com/bruno-anjos/cluster-harness/internal/utils"
	"github.com/bruno-anjos/cluster-harness/pkg/marathon"
	"github.com/bruno-anjos/cluster-harness/pkg/marathon/clientfactory"
	pkgUtils "github.com/bruno-anjos/cluster-harness/pkg/utils"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	clusterIDLength = 8

	debugFlag     = "debug"
	configFlag    = "config"
	marathonFlag  = "marathon"
	zkAddrFlag    = "zk-address"
	clusterIDFlag = "cluster-id"
	containerFlag = "container"
	timeoutFlag   = "timeout"
	exposeFlag    = "expose-ports"
	imageTagFlag  = "image-tag"
)

var (
	marathonFactory marathon.ClientFactory = &clientfactory.ClientFactory{}

	marathonEndpointFlag = &cli.StringFlag{
		Name:     marathonFlag,
		Aliases:  []string{"m"},
		Usage:    "host:port of the Marathon API",
		EnvVars:  []string{pkgUtils.MarathonEndpointEnvVarName},
		Required: true,
	}
	zooKeeperAddressFlag = &cli.StringFlag{
		Name:    zkAddrFlag,
		Aliases: []string{"z"},
		Usage:   "ip address of the ZooKeeper container",
		EnvVars: []string{pkgUtils.ZooKeeperAddrEnvVarName},
	}
)

func main() {
	app := &cli.App{
		Name:  "marathon-cli",
		Usage: "run Marathon in a container and manage its apps",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: debugFlag, Aliases: []string{"d"}, Usage: "add debug logs"},
			&cli.StringFlag{Name: configFlag, Aliases: []string{"c"}, Usage: "cluster config file",
				EnvVars: []string{pkgUtils.ConfigFileEnvVarName}},
			&cli.IntFlag{Name: timeoutFlag, Usage: "seconds to wait for Marathon, overrides the config"},
			&cli.BoolFlag{Name: exposeFlag, Usage: "bind Marathon's port on the host, overrides the config"},
			&cli.StringFlag{Name: imageTagFlag, Usage: "Marathon image tag, overrides the config"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag) {
				log.SetLevel(log.DebugLevel)
			}

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "launch-config",
				Aliases: []string{"lc"},
				Usage:   "print the container configuration Marathon would be started with",
				Flags:   []cli.Flag{zooKeeperAddressFlag},
				Action:  printLaunchConfig,
			},
			{
				Name:  "up",
				Usage: "start Marathon and install the configured apps",
				Flags: []cli.Flag{
					zooKeeperAddressFlag,
					&cli.StringFlag{Name: clusterIDFlag, Usage: "id of the cluster the container belongs to",
						EnvVars: []string{pkgUtils.ClusterIDEnvVarName}},
				},
				Action: up,
			},
			{
				Name:    "install",
				Aliases: []string{"i"},
				Usage:   "wait for a running Marathon and install the configured apps",
				Flags:   []cli.Flag{marathonEndpointFlag},
				Action:  installApps,
			},
			{
				Name:    "kill-apps",
				Aliases: []string{"k"},
				Usage:   "delete every app running on Marathon",
				Flags:   []cli.Flag{marathonEndpointFlag},
				Action:  killAllApps,
			},
			{
				Name:  "down",
				Usage: "delete every app, then stop and remove the Marathon container",
				Flags: []cli.Flag{
					marathonEndpointFlag,
					&cli.StringFlag{Name: containerFlag, Usage: "id of the Marathon container", Required: true},
				},
				Action: down,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.ClusterConfig, error) {
	cfg, err := config.Load(c.String(configFlag))
	if err != nil {
		return nil, err
	}

	if c.IsSet(timeoutFlag) {
		cfg.Timeout = c.Int(timeoutFlag)
	}

	if c.IsSet(exposeFlag) {
		cfg.ExposePorts = c.Bool(exposeFlag)
	}

	if c.IsSet(imageTagFlag) {
		cfg.Marathon.ImageTag = c.String(imageTagFlag)
	}

	if c.IsSet(zkAddrFlag) {
		cfg.ZooKeeper.Address = c.String(zkAddrFlag)
	}

	if c.IsSet(clusterIDFlag) {
		cfg.ClusterID = c.String(clusterIDFlag)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func launchConfig(cfg *config.ClusterConfig) (*internal.LaunchConfig, error) {
	if cfg.ZooKeeper.Address == "" {
		return nil, cli.Exit("the ZooKeeper address is required (--"+zkAddrFlag+")", 1)
	}

	return internal.BuildLaunchConfig(internal.LaunchParams{
		ImageName:        cfg.Marathon.ImageName,
		ImageTag:         cfg.Marathon.ImageTag,
		Port:             marathon.Port,
		ZooKeeperAlias:   cfg.ZooKeeper.Alias,
		ZooKeeperAddress: cfg.ZooKeeper.Address,
		ZooKeeperPort:    cfg.ZooKeeper.Port,
		ExposeHostPorts:  cfg.ExposePorts,
	}), nil
}

func newController(cfg *config.ClusterConfig, addr string) *internal.Controller {
	return internal.NewController(marathonFactory.New(addr), manifest.NewLoader(nil), internal.Settings{
		Timeout:   cfg.TimeoutDuration(),
		Manifests: cfg.ManifestRefs(),
	})
}

func signalContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
}

func printLaunchConfig(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	lc, err := launchConfig(cfg)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(lc, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

func up(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	lc, err := launchConfig(cfg)
	if err != nil {
		return err
	}

	if cfg.ClusterID == "" {
		cfg.ClusterID = utils.RandomString(clusterIDLength)
	}

	dockerRuntime, err := docker.NewRuntime()
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := dockerRuntime.Close(); closeErr != nil {
			log.Warn(closeErr)
		}
	}()

	ctx, cancel := signalContext(c)
	defer cancel()

	name := pkgUtils.ContainerName(pkgUtils.MarathonServiceName, cfg.ClusterID)

	cont, err := dockerRuntime.Start(ctx, name, lc)
	if err != nil {
		return err
	}

	endpoint := internal.NewServiceEndpoint(cont.IPAddress, marathon.Port)
	log.Infof("Marathon container %s started, API at %s", cont.ID, endpoint)

	if lc.HostPortBound() {
		log.Infof("Marathon API also bound on the host at port %d", marathon.Port)
	}

	return installOnContainer(ctx, os.Stdout, cont.ID, newController(cfg, endpoint.HostPort()).InstallApps)
}

// installOnContainer prints containerID before installing, so the container
// can be torn down with down --container even when installing fails.
func installOnContainer(ctx context.Context, out io.Writer, containerID string,
	install func(ctx context.Context) error) error {
	if _, err := fmt.Fprintln(out, containerID); err != nil {
		return err
	}

	if err := install(ctx); err != nil {
		return errors.Wrapf(err, "installing apps on container %s (still running)", containerID)
	}

	return nil
}

func installApps(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(c)
	defer cancel()

	return newController(cfg, c.String(marathonFlag)).InstallApps(ctx)
}

func killAllApps(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(c)
	defer cancel()

	newController(cfg, c.String(marathonFlag)).KillAllApps(ctx)

	return nil
}

func down(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(c)
	defer cancel()

	newController(cfg, c.String(marathonFlag)).KillAllApps(ctx)

	dockerRuntime, err := docker.NewRuntime()
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := dockerRuntime.Close(); closeErr != nil {
			log.Warn(closeErr)
		}
	}()

	id := c.String(containerFlag)

	if err = dockerRuntime.Stop(ctx, id); err != nil {
		log.Warn(err)
	}

	return dockerRuntime.Remove(ctx, id)
}
