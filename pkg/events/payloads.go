package events

import (
	"github.com/walletbeacon/beacon-go/pkg/types"
)

// Action is a user-facing action descriptor passed alongside a payload.
// The presentation layer decides how to render it (button, prompt, hint).
type Action struct {
	// Text is the label shown to the user
	Text string

	// Run executes the action when the user picks it
	Run func() error
}

// RequestSentInfo accompanies every *-request-sent event. It tells the
// presentation layer which wallet the request went to and gives it a way
// to reset the connection if the wallet never answers.
type RequestSentInfo struct {
	// WalletLabel is the paired wallet's display name
	WalletLabel string

	// WalletIcon is an optional icon URL or data URI
	WalletIcon string

	// Reset tears down the pending request so the user can retry
	Reset func()
}

// PermissionSuccess is the payload of PermissionRequestSuccess
type PermissionSuccess struct {
	// Account is the permission grant the wallet issued
	Account types.AccountInfo

	// Network the grant is scoped to
	Network types.Network

	// Connection is the channel the response arrived on
	Connection types.ConnectionContext
}

// OperationSuccess is the payload of OperationRequestSuccess
type OperationSuccess struct {
	// OperationHash of the injected operation
	OperationHash string

	Network    types.Network
	Connection types.ConnectionContext
}

// SignSuccess is the payload of SignRequestSuccess
type SignSuccess struct {
	// Signature produced by the wallet
	Signature string

	Network    types.Network
	Connection types.ConnectionContext
}

// BroadcastSuccess is the payload of BroadcastRequestSuccess
type BroadcastSuccess struct {
	// TransactionHash of the broadcast transaction
	TransactionHash string

	Network    types.Network
	Connection types.ConnectionContext
}

// RequestError is the payload of every *-request-error event
type RequestError struct {
	// Response is the wallet's error descriptor
	Response types.ErrorResponse
}

// Acknowledge is the payload of AcknowledgeReceived
type Acknowledge struct {
	// RequestID of the request the wallet acknowledged
	RequestID string
}

// PairingRequest is the payload of PairInit. Code is the serialized
// pairing payload the presentation layer shows to the user; how it is
// rendered (QR, copy button, deep link) is the presentation's concern.
type PairingRequest struct {
	// Peer is this client's half of the handshake
	Peer types.PeerInfo

	// Code is the serialized pairing payload
	Code string
}
