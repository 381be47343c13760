package marathon

import (
	"fmt"
	"strconv"

	"github.com/bruno-anjos/cluster-harness/internal/utils"
	"github.com/docker/go-connections/nat"
)

type LaunchParams struct {
	ImageName string
	ImageTag  string
	Port      int

	ZooKeeperAlias   string
	ZooKeeperAddress string
	ZooKeeperPort    int

	ExposeHostPorts bool
}

// LaunchConfig is everything the container runtime needs to start Marathon.
type LaunchConfig struct {
	Image        string
	ExposedPort  nat.Port
	ExposedPorts nat.PortSet
	// PortBindings is nil unless host ports are exposed.
	PortBindings nat.PortMap
	ExtraHosts   []string
	Cmd          []string
}

// BuildLaunchConfig points Marathon at ZooKeeper through its network alias,
// which is mapped to the ZooKeeper address with an extra hosts entry.
func BuildLaunchConfig(params LaunchParams) *LaunchConfig {
	port := nat.Port(fmt.Sprintf("%d/%s", params.Port, utils.TCP))

	var bindings nat.PortMap
	if params.ExposeHostPorts {
		bindings = nat.PortMap{
			port: []nat.PortBinding{{HostPort: strconv.Itoa(params.Port)}},
		}
	}

	zkHostPort := params.ZooKeeperAlias + ":" + strconv.Itoa(params.ZooKeeperPort)

	return &LaunchConfig{
		Image:        params.ImageName + ":" + params.ImageTag,
		ExposedPort:  port,
		ExposedPorts: nat.PortSet{port: struct{}{}},
		PortBindings: bindings,
		ExtraHosts:   []string{params.ZooKeeperAlias + ":" + params.ZooKeeperAddress},
		Cmd: []string{
			"--master", "zk://" + zkHostPort + "/mesos",
			"--zk", "zk://" + zkHostPort + "/marathon",
		},
	}
}

func (lc *LaunchConfig) HostPortBound() bool {
	return len(lc.PortBindings[lc.ExposedPort]) > 0
}
