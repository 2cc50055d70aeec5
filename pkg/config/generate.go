package config

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/walletbeacon/beacon-go/pkg/errors"
)

// Render serializes the configuration as TOML, suitable for writing a
// starter beacon.toml or for showing the effective configuration.
func Render(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
