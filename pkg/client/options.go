package client

import (
	"github.com/walletbeacon/beacon-go/pkg/events"
)

type options struct {
	transport   Transport
	defaults    events.HandlerSet
	overrides   events.HandlerSet
	allHandler  events.Handler
	overrideAll bool
}

// Option customizes client construction
type Option func(*options)

// WithTransport sets the transport the client talks to wallets over
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithDefaultHandlers replaces the presentation layer's default handler
// set before any overrides apply. Mostly useful for hosts embedding the
// SDK in a non-terminal surface.
func WithDefaultHandlers(set events.HandlerSet) Option {
	return func(o *options) { o.defaults = set }
}

// WithEventHandlers installs per-kind overrides: each named kind's
// handler list becomes just the given handler. Applied last, so these
// win over WithAllHandlers.
func WithEventHandlers(set events.HandlerSet) Option {
	return func(o *options) { o.overrides = set }
}

// WithAllHandlers replaces every kind's handler with the given one. A
// nil handler silences all default presentation side effects, leaving
// only tracing logs.
func WithAllHandlers(handler events.Handler) Option {
	return func(o *options) {
		o.allHandler = handler
		o.overrideAll = true
	}
}
