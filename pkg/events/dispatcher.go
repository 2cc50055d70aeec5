package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walletbeacon/beacon-go/pkg/logging"
)

// Registry owns the kind to handler-list mapping. Every kind in the
// catalog is always present; construction seeds each with a single
// default handler. All mutation goes through Subscribe, OverrideDefaults
// and SetAllHandlers; Emit only reads.
type Registry struct {
	mu        sync.RWMutex
	listeners map[Kind][]Handler
	logger    zerolog.Logger
}

// NewRegistry creates a registry seeded with the given defaults. Kinds
// missing from defaults (or the whole set, when nil) get a tracing
// handler that only logs the kind and payload. Each client instance must
// hold its own registry.
func NewRegistry(defaults HandlerSet) *Registry {
	r := &Registry{
		listeners: make(map[Kind][]Handler, len(allKinds)),
		logger:    logging.GetLogger("events"),
	}

	for _, kind := range allKinds {
		handler := defaults[kind]
		if handler == nil {
			handler = r.tracingHandler(kind)
		}
		r.listeners[kind] = []Handler{handler}
	}

	return r
}

// Subscribe appends handler to the end of kind's list. Existing handlers
// stay in place; nothing is deduplicated. The new handler is only seen by
// Emit calls made after Subscribe returns.
func (r *Registry) Subscribe(kind Kind, handler Handler) {
	if handler == nil {
		return
	}
	if !kind.IsValid() {
		r.logger.Warn().Str("event", string(kind)).Msg("Subscribe for unknown event kind ignored")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners[kind] = append(r.listeners[kind], handler)
}

// OverrideDefaults replaces the handler list of every kind present in
// overrides with a singleton containing only the given handler. The
// default and anything subscribed earlier for that kind are discarded;
// kinds absent from overrides keep their lists untouched. Last write wins
// when called twice for the same kind.
func (r *Registry) OverrideDefaults(overrides HandlerSet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for kind, handler := range overrides {
		if handler == nil {
			continue
		}
		if !kind.IsValid() {
			r.logger.Warn().Str("event", string(kind)).Msg("Override for unknown event kind ignored")
			continue
		}
		r.listeners[kind] = []Handler{handler}
	}
}

// SetAllHandlers discards every handler across every kind. When handler
// is non-nil each kind's list becomes a singleton containing it; when nil
// each kind gets the tracing handler, suppressing all default
// presentation side effects SDK-wide. At construction this runs before
// OverrideDefaults, so a per-kind override still wins for its kind.
func (r *Registry) SetAllHandlers(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, kind := range allKinds {
		h := handler
		if h == nil {
			h = r.tracingHandler(kind)
		}
		r.listeners[kind] = []Handler{h}
	}
}

// Len returns the number of handlers currently registered for kind
func (r *Registry) Len(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners[kind])
}

// Emit dispatches payload and actions to every handler registered for
// kind and returns without waiting for any of them to finish. The
// handler list is snapshotted at call time, so handlers subscribed while
// the dispatch goroutine runs are not invoked for this emission. Handlers
// run in registration order; a failing handler is logged and the rest
// still run. An empty list is a no-op, not an error.
func (r *Registry) Emit(ctx context.Context, kind Kind, payload interface{}, actions ...Action) {
	r.mu.RLock()
	registered := r.listeners[kind]
	snapshot := make([]Handler, len(registered))
	copy(snapshot, registered)
	r.mu.RUnlock()

	if len(snapshot) == 0 {
		r.logger.Debug().Str("event", string(kind)).Msg("No listeners registered, dropping event")
		return
	}

	go func() {
		for i, handler := range snapshot {
			r.invoke(ctx, kind, i, handler, payload, actions)
		}
	}()
}

// invoke runs a single handler with panic and error isolation
func (r *Registry) invoke(ctx context.Context, kind Kind, index int, handler Handler, payload interface{}, actions []Action) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("event", string(kind)).
				Int("listener", index).
				Interface("panic", rec).
				Msg("Listener panicked")
		}
	}()

	if err := handler(ctx, payload, actions); err != nil {
		r.logger.Error().
			Err(err).
			Str("event", string(kind)).
			Int("listener", index).
			Msg("Listener failed")
	}
}

// tracingHandler returns a handler that only logs the event, used when no
// default is supplied or when SetAllHandlers(nil) silences everything.
func (r *Registry) tracingHandler(kind Kind) Handler {
	return func(ctx context.Context, payload interface{}, actions []Action) error {
		r.logger.Debug().
			Str("event", string(kind)).
			Interface("payload", payload).
			Msg("Event emitted")
		return nil
	}
}
