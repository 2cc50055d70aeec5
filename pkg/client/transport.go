package client

import (
	"context"

	"github.com/walletbeacon/beacon-go/pkg/types"
)

// RequestKind tags a message sent to a wallet
type RequestKind string

const (
	RequestPermission RequestKind = "permission_request"
	RequestSign       RequestKind = "sign_payload_request"
	RequestOperation  RequestKind = "operation_request"
	RequestBroadcast  RequestKind = "broadcast_request"
)

// Request is a message from the dApp to the wallet
type Request struct {
	// ID is unique per request and echoed back in the response
	ID string

	Kind    RequestKind
	AppName string
	Network types.Network

	// Scopes requested, for permission requests
	Scopes []types.PermissionScope

	// Payload to sign, operation contents, or the signed transaction
	// to broadcast, depending on Kind
	Payload string

	// SourceAddress of the acting account, when one is active
	SourceAddress string
}

// Response is the wallet's answer to a Request. Exactly one of Error or
// the kind-specific result fields is set.
type Response struct {
	RequestID string

	// Error is set when the wallet refused or failed the request
	Error *types.ErrorResponse

	// Account is set for granted permission requests
	Account *types.AccountInfo

	// Signature is set for completed sign requests
	Signature string

	// OperationHash is set for completed operation requests
	OperationHash string

	// TransactionHash is set for completed broadcast requests
	TransactionHash string
}

// Transport moves requests to a wallet and responses back. The core
// dispatch layer never touches it; only the client does.
type Transport interface {
	// Type identifies the channel class for active-transport-set events
	Type() types.TransportType

	// Connect performs the handshake and returns the wallet peer
	Connect(ctx context.Context) (types.PeerInfo, error)

	// Send delivers a request and blocks for the wallet's response
	Send(ctx context.Context, req Request) (Response, error)

	// Close tears the channel down
	Close() error
}
