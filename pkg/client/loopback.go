package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/walletbeacon/beacon-go/pkg/errors"
	"github.com/walletbeacon/beacon-go/pkg/types"
)

// Responder scripts a loopback wallet's answer to a request
type Responder func(req Request) Response

// LoopbackTransport is an in-memory transport backed by a scripted
// wallet. It exists for tests and demos; real deployments plug in a
// p2p or postmessage transport.
type LoopbackTransport struct {
	mu        sync.Mutex
	peer      types.PeerInfo
	respond   Responder
	connected bool
}

// NewLoopbackTransport creates a loopback transport answering with the
// given responder. A nil responder approves everything via Approving.
func NewLoopbackTransport(peer types.PeerInfo, respond Responder) *LoopbackTransport {
	if peer.ID == "" {
		peer.ID = uuid.NewString()
	}
	if peer.Name == "" {
		peer.Name = "Loopback Wallet"
	}
	if respond == nil {
		respond = Approving(types.Network{Type: types.NetworkMainnet})
	}
	return &LoopbackTransport{peer: peer, respond: respond}
}

// Approving returns a responder that grants every request on the given
// network, fabricating deterministic-looking results.
func Approving(network types.Network) Responder {
	return func(req Request) Response {
		resp := Response{RequestID: req.ID}
		switch req.Kind {
		case RequestPermission:
			address := "wb1" + uuid.NewString()[:12]
			resp.Account = &types.AccountInfo{
				AccountID: uuid.NewString(),
				Address:   address,
				PublicKey: "pk-" + address,
				Network:   network,
				Scopes:    req.Scopes,
				Origin:    types.Origin{Kind: types.OriginP2P, ID: req.ID},
			}
		case RequestSign:
			resp.Signature = "sig-" + req.ID
		case RequestOperation:
			resp.OperationHash = "op-" + req.ID
		case RequestBroadcast:
			resp.TransactionHash = "tx-" + req.ID
		default:
			resp.Error = &types.ErrorResponse{Type: types.ErrTypeUnknown, RequestID: req.ID}
		}
		return resp
	}
}

// Denying returns a responder that refuses every request with the given
// error type.
func Denying(errType types.ErrorType) Responder {
	return func(req Request) Response {
		return Response{
			RequestID: req.ID,
			Error:     &types.ErrorResponse{Type: errType, RequestID: req.ID},
		}
	}
}

// Type implements Transport
func (t *LoopbackTransport) Type() types.TransportType {
	return types.TransportLoopback
}

// Connect implements Transport
func (t *LoopbackTransport) Connect(ctx context.Context) (types.PeerInfo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connected = true
	return t.peer, nil
}

// Send implements Transport
func (t *LoopbackTransport) Send(ctx context.Context, req Request) (Response, error) {
	t.mu.Lock()
	connected := t.connected
	respond := t.respond
	t.mu.Unlock()

	if !connected {
		return Response{}, errors.New(errors.ErrTransportNotReady, "loopback transport not connected")
	}

	select {
	case <-ctx.Done():
		return Response{}, errors.Wrap(ctx.Err(), errors.ErrRequestTimeout, "request cancelled")
	default:
	}

	return respond(req), nil
}

// Close implements Transport
func (t *LoopbackTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connected = false
	return nil
}

// Connected reports whether Connect has been called without a Close
func (t *LoopbackTransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}
