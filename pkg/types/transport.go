package types

// TransportType identifies the channel messages travel over
type TransportType string

const (
	TransportP2P         TransportType = "p2p"
	TransportPostMessage TransportType = "post_message"
	TransportLoopback    TransportType = "loopback"
)

// PeerInfo describes the wallet on the other end of a transport channel
type PeerInfo struct {
	// ID is the peer's public identifier on the channel
	ID string

	// Name is the wallet's self-reported label
	Name string

	// Icon is an optional URL or data URI for the wallet's icon
	Icon string

	// RelayServer is the rendezvous node for p2p peers
	RelayServer string

	// Version of the protocol the peer speaks
	Version string
}

// ConnectionContext records which channel a message arrived on, so
// responses and notifications can reference it.
type ConnectionContext struct {
	Origin Origin
	ID     string
}
