package config

import (
	"time"

	"github.com/walletbeacon/beacon-go/pkg/errors"
	"github.com/walletbeacon/beacon-go/pkg/types"
)

// Config is the client configuration, assembled from embedded defaults,
// an optional beacon.toml / beacon.yaml, and BEACON_* environment
// variables, in that order.
type Config struct {
	App     App     `koanf:"app" toml:"app"`
	Network Network `koanf:"network" toml:"network"`
	Events  Events  `koanf:"events" toml:"events"`
	Log     Log     `koanf:"log" toml:"log"`
}

// App identifies the dApp to wallets during pairing
type App struct {
	// Name shown to the user inside the wallet
	Name string `koanf:"name" toml:"name"`

	// URL of the dApp, optional
	URL string `koanf:"url" toml:"url"`

	// Icon URL or data URI, optional
	Icon string `koanf:"icon" toml:"icon"`
}

// Network selects the chain requests are scoped to by default
type Network struct {
	Type   string `koanf:"type" toml:"type"`
	Name   string `koanf:"name" toml:"name"`
	RPCURL string `koanf:"rpc_url" toml:"rpc_url"`
}

// Events configures the event registry
type Events struct {
	// DisableDefaults suppresses every default presentation handler;
	// each kind gets a tracing handler that only logs
	DisableDefaults bool `koanf:"disable_defaults" toml:"disable_defaults"`

	RateLimit RateLimit `koanf:"rate_limit" toml:"rate_limit"`
}

// RateLimit bounds how many requests a client sends per window before
// local-rate-limit-reached fires
type RateLimit struct {
	Requests int           `koanf:"requests" toml:"requests"`
	Window   time.Duration `koanf:"window" toml:"window"`
}

// Log configures SDK logging
type Log struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Default returns the built-in configuration, matching the embedded
// defaults.toml
func Default() *Config {
	return &Config{
		App: App{
			Name: "beacon-go dApp",
		},
		Network: Network{
			Type: string(types.NetworkMainnet),
		},
		Events: Events{
			RateLimit: RateLimit{
				Requests: 2,
				Window:   5 * time.Second,
			},
		},
	}
}

// BeaconNetwork converts the configured network into the domain type
func (c *Config) BeaconNetwork() types.Network {
	return types.Network{
		Type:   types.NetworkType(c.Network.Type),
		Name:   c.Network.Name,
		RPCURL: c.Network.RPCURL,
	}
}

// Validate checks the assembled configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return errors.New(errors.ErrConfigValid, "app.name must not be empty")
	}

	if err := c.BeaconNetwork().Validate(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "network configuration invalid")
	}

	if c.Events.RateLimit.Requests <= 0 {
		return errors.New(errors.ErrConfigValid, "events.rate_limit.requests must be positive")
	}
	if c.Events.RateLimit.Window <= 0 {
		return errors.New(errors.ErrConfigValid, "events.rate_limit.window must be positive")
	}

	return nil
}
