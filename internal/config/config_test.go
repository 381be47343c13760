package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
timeout: "90"
exposePorts: true
zookeeper:
  address: 172.17.0.2
marathon:
  imageTag: v1.1.1
  apps:
    - marathonJson: classpath:apps/weave-scope.json
    - marathonJson: ./apps/second.json
    - marathonJson: http://example.com/third.json
`))
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Timeout)
	assert.Equal(t, 90*time.Second, cfg.TimeoutDuration())
	assert.True(t, cfg.ExposePorts)
	assert.Equal(t, "172.17.0.2", cfg.ZooKeeper.Address)
	assert.Equal(t, "minimesos-zookeeper", cfg.ZooKeeper.Alias)
	assert.Equal(t, DefaultZooKeeperPort, cfg.ZooKeeper.Port)
	assert.Equal(t, DefaultMarathonImageName, cfg.Marathon.ImageName)
	assert.Equal(t, "v1.1.1", cfg.Marathon.ImageTag)
	assert.Equal(t, []string{
		"classpath:apps/weave-scope.json",
		"./apps/second.json",
		"http://example.com/third.json",
	}, cfg.ManifestRefs())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.ManifestRefs())
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":   "timeoutt: 10",
		"bad timeout":   "timeout: 0",
		"empty app ref": "marathon:\n  apps:\n    - marathonJson: \"\"",
		"not yaml":      "timeout: [",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "minimesos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 5\n"), 0o600))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Timeout)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
