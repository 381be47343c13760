package utils

const (
	MarathonServiceName  = "marathon"
	ZooKeeperServiceName = "zookeeper"

	// ContainerNamePrefix is shared by every container the harness starts.
	ContainerNamePrefix = "minimesos"
)

// ContainerName returns the name given to the container playing role in the
// cluster identified by clusterID.
func ContainerName(role, clusterID string) string {
	return ContainerNamePrefix + "-" + role + "-" + clusterID
}
