// Package docker starts and stops the containers of the harness on a docker
// daemon.
package docker

import (
	"context"
	"io"
	"time"

	"github.com/bruno-anjos/cluster-harness/internal/marathon"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	stopContainerTimeout = 10
)

type Container struct {
	ID        string
	Name      string
	IPAddress string
}

type Runtime struct {
	cli *client.Client
}

func NewRuntime() (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, errors.Wrap(err, "unable to create docker client")
	}

	return &Runtime{cli: cli}, nil
}

func (r *Runtime) Close() error {
	return r.cli.Close()
}

// Start pulls the image of lc, creates a container named name out of it and
// starts it. The returned container carries the IP assigned by the daemon.
func (r *Runtime) Start(ctx context.Context, name string, lc *marathon.LaunchConfig) (*Container, error) {
	if err := r.pullImage(ctx, lc.Image); err != nil {
		return nil, err
	}

	containerConfig, hostConfig := containerConfigs(lc)

	log.Debugf("creating container %s from %s with port bindings %+v", name, lc.Image, hostConfig.PortBindings)

	cont, err := r.cli.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, name)
	if err != nil {
		return nil, errors.Wrapf(err, "creating container %s", name)
	}

	for _, warning := range cont.Warnings {
		log.Warnf("container %s: %s", name, warning)
	}

	if err = r.cli.ContainerStart(ctx, cont.ID, container.StartOptions{}); err != nil {
		return nil, errors.Wrapf(err, "starting container %s", name)
	}

	ip, err := r.ipAddress(ctx, cont.ID)
	if err != nil {
		return nil, err
	}

	log.Debugf("container %s (%s) started with ip %s", name, cont.ID, ip)

	return &Container{ID: cont.ID, Name: name, IPAddress: ip}, nil
}

func (r *Runtime) Stop(ctx context.Context, id string) error {
	timeout := stopContainerTimeout

	ctx, cancel := context.WithTimeout(ctx, (stopContainerTimeout+5)*time.Second)
	defer cancel()

	if err := r.cli.ContainerStop(ctx, id, container.StopOptions{Timeout: &timeout}); err != nil {
		return errors.Wrapf(err, "stopping container %s", id)
	}

	log.Debugf("stopped container %s", id)

	return nil
}

func (r *Runtime) Remove(ctx context.Context, id string) error {
	err := r.cli.ContainerRemove(ctx, id, container.RemoveOptions{
		RemoveVolumes: true,
		Force:         true,
	})
	if err != nil {
		return errors.Wrapf(err, "removing container %s", id)
	}

	log.Debugf("removed container %s", id)

	return nil
}

func (r *Runtime) pullImage(ctx context.Context, ref string) error {
	log.Infof("Pulling image %s", ref)

	reader, err := r.cli.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return errors.Wrapf(err, "pulling image %s", ref)
	}

	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.Warn(closeErr)
		}
	}()

	// the pull only completes once its progress stream is drained
	if _, err = io.Copy(io.Discard, reader); err != nil {
		return errors.Wrapf(err, "pulling image %s", ref)
	}

	return nil
}

func (r *Runtime) ipAddress(ctx context.Context, id string) (string, error) {
	info, err := r.cli.ContainerInspect(ctx, id)
	if err != nil {
		return "", errors.Wrapf(err, "inspecting container %s", id)
	}

	if info.NetworkSettings == nil {
		return "", errors.Errorf("container %s has no network settings", id)
	}

	for _, endpoint := range info.NetworkSettings.Networks {
		if endpoint != nil && endpoint.IPAddress != "" {
			return endpoint.IPAddress, nil
		}
	}

	return "", errors.Errorf("container %s has no ip address", id)
}

func containerConfigs(lc *marathon.LaunchConfig) (*container.Config, *container.HostConfig) {
	containerConfig := &container.Config{
		Image:        lc.Image,
		Cmd:          lc.Cmd,
		ExposedPorts: lc.ExposedPorts,
	}

	hostConfig := &container.HostConfig{
		NetworkMode:  "bridge",
		PortBindings: lc.PortBindings,
		ExtraHosts:   lc.ExtraHosts,
	}

	return containerConfig, hostConfig
}
