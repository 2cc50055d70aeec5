// Package events implements the typed event dispatch registry that connects
// the SDK's internal lifecycle (pairing, permission requests, signing,
// broadcasting) to whatever surfaces those moments to a user.
//
// The registry owns a mapping from every event Kind to an ordered list of
// handlers. Each client instance owns its own registry; there is no
// process-wide table. At construction every kind is seeded with a default
// handler (normally supplied by the presentation layer, see pkg/ui), after
// which callers can append handlers with Subscribe, replace individual
// defaults with OverrideDefaults, or blanket-replace everything with
// SetAllHandlers.
//
// Emit is fire-and-forget: it snapshots the kind's handler list and returns
// immediately, while a single background goroutine invokes the snapshot in
// registration order. A handler that returns an error or panics is logged
// with the offending kind and does not stop later handlers, reach the
// emitter, or remove itself from future emissions. Callers therefore must
// not assume a handler's side effects are visible when Emit returns.
//
// Handlers for the same kind run in registration order within one Emit call.
// No ordering holds across different kinds or across two Emit calls racing
// on the same kind. A handler may call Emit itself, including for its own
// kind; each emission dispatches on a fresh goroutine from a fresh snapshot,
// so there is no deadlock, but recursive same-kind emission is discouraged
// since nothing bounds it.
package events
