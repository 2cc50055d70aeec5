// Package client implements the dApp-side SDK client. A Client owns its
// own event registry (pkg/events), a transport to a wallet, the active
// permission grant, and a local rate limiter. Every lifecycle method
// emits the matching events; how those are surfaced is decided by the
// registry's handlers, not here.
package client
