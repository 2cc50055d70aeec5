// Test Type: Unit Test
// Description: Tests for configuration loading - layering of defaults,
// file and environment sources.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletbeacon/beacon-go/pkg/config"
	"github.com/walletbeacon/beacon-go/pkg/errors"
	"github.com/walletbeacon/beacon-go/pkg/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "beacon-go dApp", cfg.App.Name)
	assert.Equal(t, string(types.NetworkMainnet), cfg.Network.Type)
	assert.False(t, cfg.Events.DisableDefaults)
	assert.Equal(t, 2, cfg.Events.RateLimit.Requests)
	assert.Equal(t, 5*time.Second, cfg.Events.RateLimit.Window)
}

func TestLoadTOMLFile(t *testing.T) {
	path := writeConfig(t, "beacon.toml", `
[app]
name = "My dApp"

[network]
type = "testnet"

[events]
disable_defaults = true

[events.rate_limit]
requests = 10
window = "1s"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "My dApp", cfg.App.Name)
	assert.Equal(t, "testnet", cfg.Network.Type)
	assert.True(t, cfg.Events.DisableDefaults)
	assert.Equal(t, 10, cfg.Events.RateLimit.Requests)
	assert.Equal(t, time.Second, cfg.Events.RateLimit.Window)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeConfig(t, "beacon.yaml", `
app:
  name: YAML dApp
network:
  type: devnet
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "YAML dApp", cfg.App.Name)
	assert.Equal(t, "devnet", cfg.Network.Type)
	// Untouched keys keep their defaults
	assert.Equal(t, 2, cfg.Events.RateLimit.Requests)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "beacon.toml", `
[network]
type = "testnet"
`)
	t.Setenv("BEACON_NETWORK_TYPE", "devnet")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "devnet", cfg.Network.Type)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadInvalidNetwork(t *testing.T) {
	path := writeConfig(t, "beacon.toml", `
[network]
type = "moonnet"
`)

	_, err := config.Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestLoadCustomNetworkNeedsRPC(t *testing.T) {
	t.Run("missing rpc url", func(t *testing.T) {
		path := writeConfig(t, "beacon.toml", `
[network]
type = "custom"
`)
		_, err := config.Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("with rpc url", func(t *testing.T) {
		path := writeConfig(t, "beacon.toml", `
[network]
type = "custom"
rpc_url = "https://node.example.com"
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://node.example.com", cfg.Network.RPCURL)
	})
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	loaded, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), loaded)
}

func TestRender(t *testing.T) {
	out, err := config.Render(config.Default())
	require.NoError(t, err)

	assert.Contains(t, out, "beacon-go dApp")
	assert.Contains(t, out, "[events]")
}

func TestBeaconNetwork(t *testing.T) {
	cfg := config.Default()
	cfg.Network = config.Network{Type: "testnet", Name: "Ghostnet"}

	n := cfg.BeaconNetwork()
	assert.Equal(t, types.NetworkTestnet, n.Type)
	assert.Equal(t, "Ghostnet", n.Name)
}
