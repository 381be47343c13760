package utils

const (
	MarathonEndpointEnvVarName = "MARATHON_ENDPOINT"
	ZooKeeperAddrEnvVarName    = "ZOOKEEPER_ADDR"
	ConfigFileEnvVarName       = "MINIMESOS_CONFIG"
	ClusterIDEnvVarName        = "MINIMESOS_CLUSTER_ID"
)
