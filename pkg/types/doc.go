// Package types contains the shared domain types of the SDK: networks,
// accounts, permission scopes, transports and peer metadata. It has no
// behavior beyond small accessors and is imported by every other package.
package types
