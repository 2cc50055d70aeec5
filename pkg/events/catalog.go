package events

// Kind identifies one lifecycle event the SDK can raise. The catalog is
// closed: kinds are known at compile time and never extended at runtime.
//
// The payload type each kind carries is part of the contract and is listed
// next to the constant. The dispatcher does not validate payloads at
// emission time; producers are responsible for the pairing.
type Kind string

const (
	// PermissionRequestSent carries *RequestSentInfo
	PermissionRequestSent Kind = "permission-request-sent"
	// PermissionRequestSuccess carries *PermissionSuccess
	PermissionRequestSuccess Kind = "permission-request-success"
	// PermissionRequestError carries *RequestError
	PermissionRequestError Kind = "permission-request-error"

	// OperationRequestSent carries *RequestSentInfo
	OperationRequestSent Kind = "operation-request-sent"
	// OperationRequestSuccess carries *OperationSuccess
	OperationRequestSuccess Kind = "operation-request-success"
	// OperationRequestError carries *RequestError
	OperationRequestError Kind = "operation-request-error"

	// SignRequestSent carries *RequestSentInfo
	SignRequestSent Kind = "sign-request-sent"
	// SignRequestSuccess carries *SignSuccess
	SignRequestSuccess Kind = "sign-request-success"
	// SignRequestError carries *RequestError
	SignRequestError Kind = "sign-request-error"

	// BroadcastRequestSent carries *RequestSentInfo
	BroadcastRequestSent Kind = "broadcast-request-sent"
	// BroadcastRequestSuccess carries *BroadcastSuccess
	BroadcastRequestSuccess Kind = "broadcast-request-success"
	// BroadcastRequestError carries *RequestError
	BroadcastRequestError Kind = "broadcast-request-error"

	// AcknowledgeReceived carries *Acknowledge
	AcknowledgeReceived Kind = "acknowledge-received"

	// LocalRateLimitReached carries no payload
	LocalRateLimitReached Kind = "local-rate-limit-reached"

	// NoPermissions carries no payload
	NoPermissions Kind = "no-permissions"

	// ActiveAccountSet carries types.AccountInfo
	ActiveAccountSet Kind = "active-account-set"
	// ActiveTransportSet carries types.TransportType
	ActiveTransportSet Kind = "active-transport-set"

	// PairInit carries *PairingRequest
	PairInit Kind = "pair-init"
	// PairSuccess carries types.PeerInfo
	PairSuccess Kind = "pair-success"

	// P2PChannelConnectSuccess carries types.PeerInfo
	P2PChannelConnectSuccess Kind = "p2p-channel-connect-success"
	// P2PListenForChannelOpen carries types.PeerInfo
	P2PListenForChannelOpen Kind = "p2p-listen-for-channel-open"

	// ChannelClosed carries the closed channel's id as a string
	ChannelClosed Kind = "channel-closed"

	// InternalError carries a description string
	InternalError Kind = "internal-error"

	// Unknown carries no payload
	Unknown Kind = "unknown"
)

// allKinds lists every member of the catalog in declaration order.
var allKinds = []Kind{
	PermissionRequestSent,
	PermissionRequestSuccess,
	PermissionRequestError,
	OperationRequestSent,
	OperationRequestSuccess,
	OperationRequestError,
	SignRequestSent,
	SignRequestSuccess,
	SignRequestError,
	BroadcastRequestSent,
	BroadcastRequestSuccess,
	BroadcastRequestError,
	AcknowledgeReceived,
	LocalRateLimitReached,
	NoPermissions,
	ActiveAccountSet,
	ActiveTransportSet,
	PairInit,
	PairSuccess,
	P2PChannelConnectSuccess,
	P2PListenForChannelOpen,
	ChannelClosed,
	InternalError,
	Unknown,
}

// AllKinds returns every event kind in the catalog. The returned slice is
// a copy and safe to mutate.
func AllKinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// IsValid reports whether k is a member of the catalog
func (k Kind) IsValid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}
