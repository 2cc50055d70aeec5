package types

import "strings"

// PermissionScope is a capability a wallet can grant to a dApp
type PermissionScope string

const (
	ScopeSign      PermissionScope = "sign"
	ScopeOperation PermissionScope = "operation_request"
	ScopeThreshold PermissionScope = "threshold"
)

// OriginKind tells where a peer relationship was established
type OriginKind string

const (
	OriginExtension OriginKind = "extension"
	OriginP2P       OriginKind = "p2p"
	OriginWebsite   OriginKind = "website"
)

// Origin identifies the counterparty a permission was granted through
type Origin struct {
	Kind OriginKind
	ID   string
}

// AccountInfo is a permission grant: an address the dApp may act on,
// the scopes it was granted, and where the grant came from.
type AccountInfo struct {
	// AccountID uniquely identifies the grant (address + origin)
	AccountID string

	// Address is the on-chain address
	Address string

	// PublicKey of the account, hex encoded
	PublicKey string

	// Network the grant is valid on
	Network Network

	// Scopes the wallet granted
	Scopes []PermissionScope

	// Origin of the grant
	Origin Origin

	// SenderID identifies the wallet that issued the grant
	SenderID string
}

// HasScope reports whether the grant includes the given scope
func (a AccountInfo) HasScope(scope PermissionScope) bool {
	for _, s := range a.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// ScopeString renders the scopes for display, comma separated
func (a AccountInfo) ScopeString() string {
	parts := make([]string, 0, len(a.Scopes))
	for _, s := range a.Scopes {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
