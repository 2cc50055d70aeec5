package events

import (
	"context"

	"github.com/walletbeacon/beacon-go/pkg/errors"
)

// Handler is the contract every subscriber satisfies. It receives the
// payload for the kind it was registered against plus any action
// descriptors, performs its side effect, and returns an error only to
// have it logged; returned errors never reach the emitter.
type Handler func(ctx context.Context, payload interface{}, actions []Action) error

// HandlerSet is a per-kind handler bundle, used both for the default
// handlers installed at construction and for per-kind overrides.
type HandlerSet map[Kind]Handler

// Typed adapts a handler written against a concrete payload type to the
// Handler contract. The payload binding is checked where the handler is
// defined; a payload of the wrong dynamic type is reported as a listener
// failure rather than invoking fn.
func Typed[T any](fn func(ctx context.Context, payload T, actions []Action) error) Handler {
	return func(ctx context.Context, payload interface{}, actions []Action) error {
		p, ok := payload.(T)
		if !ok {
			return errors.Newf(errors.ErrListenerFailed,
				"handler expects %T, event carried %T", p, payload)
		}
		return fn(ctx, p, actions)
	}
}
