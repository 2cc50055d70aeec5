package types

import "fmt"

// NetworkType identifies which chain a request targets
type NetworkType string

const (
	NetworkMainnet NetworkType = "mainnet"
	NetworkTestnet NetworkType = "testnet"
	NetworkDevnet  NetworkType = "devnet"
	NetworkCustom  NetworkType = "custom"
)

// Network describes the chain a request or response is scoped to.
// RPCURL is only required for custom networks; the well-known types
// resolve to their public nodes.
type Network struct {
	// Type is the network class (mainnet, testnet, ...)
	Type NetworkType

	// Name is an optional human-readable label, shown in notifications
	Name string

	// RPCURL is the node endpoint, required when Type is NetworkCustom
	RPCURL string
}

// DisplayName returns the label to show in user-facing notifications
func (n Network) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return string(n.Type)
}

// Validate checks that the network is usable
func (n Network) Validate() error {
	switch n.Type {
	case NetworkMainnet, NetworkTestnet, NetworkDevnet:
		return nil
	case NetworkCustom:
		if n.RPCURL == "" {
			return fmt.Errorf("custom network requires an rpc url")
		}
		return nil
	default:
		return fmt.Errorf("unknown network type %q", n.Type)
	}
}
