// Package config holds the cluster configuration the harness is driven by.
package config

import (
	"os"
	"time"

	"github.com/bruno-anjos/cluster-harness/pkg/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimeout = 60

	DefaultMarathonImageName = "mesosphere/marathon"
	DefaultMarathonImageTag  = "v0.15.3"

	DefaultZooKeeperAlias = utils.ContainerNamePrefix + "-" + utils.ZooKeeperServiceName
	DefaultZooKeeperPort  = 2181
)

type AppConfig struct {
	// MarathonJSON is a file path, a classpath:/resource: name or a URL.
	MarathonJSON string `mapstructure:"marathonJson" yaml:"marathonJson"`
}

type MarathonConfig struct {
	ImageName string      `mapstructure:"imageName" yaml:"imageName"`
	ImageTag  string      `mapstructure:"imageTag" yaml:"imageTag"`
	Apps      []AppConfig `mapstructure:"apps" yaml:"apps"`
}

type ZooKeeperConfig struct {
	Alias   string `mapstructure:"alias" yaml:"alias"`
	Address string `mapstructure:"address" yaml:"address"`
	Port    int    `mapstructure:"port" yaml:"port"`
}

type ClusterConfig struct {
	ClusterID string `mapstructure:"clusterId" yaml:"clusterId"`
	// Timeout is in seconds.
	Timeout     int             `mapstructure:"timeout" yaml:"timeout"`
	ExposePorts bool            `mapstructure:"exposePorts" yaml:"exposePorts"`
	ZooKeeper   ZooKeeperConfig `mapstructure:"zookeeper" yaml:"zookeeper"`
	Marathon    MarathonConfig  `mapstructure:"marathon" yaml:"marathon"`
}

func Default() *ClusterConfig {
	return &ClusterConfig{
		Timeout: DefaultTimeout,
		ZooKeeper: ZooKeeperConfig{
			Alias: DefaultZooKeeperAlias,
			Port:  DefaultZooKeeperPort,
		},
		Marathon: MarathonConfig{
			ImageName: DefaultMarathonImageName,
			ImageTag:  DefaultMarathonImageTag,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// yields the defaults.
func Load(path string) (*ClusterConfig, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML on top of the defaults. Keys absent from data keep their
// default value, unknown keys are an error.
func Parse(data []byte) (*ClusterConfig, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}

	cfg := Default()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating decoder")
	}

	if err = decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *ClusterConfig) Validate() error {
	if c.Timeout <= 0 {
		return errors.Errorf("timeout must be positive, got %d", c.Timeout)
	}

	if c.Marathon.ImageName == "" || c.Marathon.ImageTag == "" {
		return errors.New("marathon image name and tag are required")
	}

	if c.ZooKeeper.Alias == "" || c.ZooKeeper.Port <= 0 {
		return errors.New("zookeeper alias and port are required")
	}

	for i, app := range c.Marathon.Apps {
		if app.MarathonJSON == "" {
			return errors.Errorf("marathon app %d has no marathonJson", i)
		}
	}

	return nil
}

func (c *ClusterConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ManifestRefs lists the app manifests in declaration order.
func (c *ClusterConfig) ManifestRefs() []string {
	refs := make([]string, 0, len(c.Marathon.Apps))
	for _, app := range c.Marathon.Apps {
		refs = append(refs, app.MarathonJSON)
	}

	return refs
}
