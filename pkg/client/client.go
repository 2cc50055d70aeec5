package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walletbeacon/beacon-go/pkg/config"
	"github.com/walletbeacon/beacon-go/pkg/errors"
	"github.com/walletbeacon/beacon-go/pkg/events"
	"github.com/walletbeacon/beacon-go/pkg/logging"
	"github.com/walletbeacon/beacon-go/pkg/types"
	"github.com/walletbeacon/beacon-go/pkg/ui"
)

// Client is a dApp-side wallet connection. Each instance owns an
// independent event registry; two clients never share handlers.
type Client struct {
	cfg      *config.Config
	registry *events.Registry
	logger   zerolog.Logger
	limiter  *rateLimiter

	mu            sync.Mutex
	transport     Transport
	peer          *types.PeerInfo
	activeAccount *types.AccountInfo
}

// New builds a client from the given configuration. Registry wiring
// order: presentation defaults are seeded first, a blanket override
// (config disable_defaults or WithAllHandlers) replaces them wholesale,
// and per-kind overrides from WithEventHandlers are applied last so they
// win for their kinds.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	defaults := o.defaults
	if defaults == nil {
		defaults = ui.DefaultHandlers(ui.NewNotifier())
	}

	registry := events.NewRegistry(defaults)
	if cfg.Events.DisableDefaults {
		registry.SetAllHandlers(nil)
	}
	if o.overrideAll {
		registry.SetAllHandlers(o.allHandler)
	}
	registry.OverrideDefaults(o.overrides)

	return &Client{
		cfg:       cfg,
		registry:  registry,
		logger:    logging.GetLogger("client"),
		limiter:   newRateLimiter(cfg.Events.RateLimit.Requests, cfg.Events.RateLimit.Window),
		transport: o.transport,
	}, nil
}

// Events exposes the client's registry so hosts can Subscribe to
// lifecycle events next to the installed handlers.
func (c *Client) Events() *events.Registry {
	return c.registry
}

// ActiveAccount returns the current permission grant, if any
func (c *Client) ActiveAccount() *types.AccountInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeAccount
}

// SetActiveAccount switches the acting account and announces it
func (c *Client) SetActiveAccount(ctx context.Context, account types.AccountInfo) {
	c.mu.Lock()
	c.activeAccount = &account
	c.mu.Unlock()

	c.registry.Emit(ctx, events.ActiveAccountSet, account)
}

// Pair opens the transport channel to a wallet. It emits pair-init with
// the serialized pairing code, waits for the wallet to connect, then
// announces the open channel and the active transport.
func (c *Client) Pair(ctx context.Context) error {
	transport, err := c.requireTransport()
	if err != nil {
		return err
	}

	defer logging.LogOperationStart(c.logger, "pair")()

	selfPeer := types.PeerInfo{
		ID:      uuid.NewString(),
		Name:    c.cfg.App.Name,
		Icon:    c.cfg.App.Icon,
		Version: "1",
	}
	c.registry.Emit(ctx, events.PairInit, &events.PairingRequest{
		Peer: selfPeer,
		Code: pairingCode(selfPeer),
	})
	c.registry.Emit(ctx, events.P2PListenForChannelOpen, selfPeer)

	peer, err := transport.Connect(ctx)
	if err != nil {
		c.registry.Emit(ctx, events.InternalError, "pairing failed: "+err.Error())
		return errors.Wrap(err, errors.ErrPairingFailed, "wallet did not open the channel")
	}

	c.mu.Lock()
	c.peer = &peer
	c.mu.Unlock()

	c.registry.Emit(ctx, events.P2PChannelConnectSuccess, peer)
	c.registry.Emit(ctx, events.PairSuccess, peer)
	c.registry.Emit(ctx, events.ActiveTransportSet, transport.Type())

	c.logger.Info().Str("peer", peer.ID).Str("wallet", peer.Name).Msg("Paired with wallet")
	return nil
}

// ResetConnection closes the channel and announces it. Also installed as
// the reset action on *-request-sent payloads.
func (c *Client) ResetConnection(ctx context.Context) {
	c.mu.Lock()
	transport := c.transport
	peer := c.peer
	c.peer = nil
	c.mu.Unlock()

	if transport != nil {
		if err := transport.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to close transport")
		}
	}

	channelID := ""
	if peer != nil {
		channelID = peer.ID
	}
	c.registry.Emit(ctx, events.ChannelClosed, channelID)
}

// RequestPermissions asks the wallet to grant the given scopes. On a
// grant the account becomes active and is returned.
func (c *Client) RequestPermissions(ctx context.Context, scopes ...types.PermissionScope) (*types.AccountInfo, error) {
	if len(scopes) == 0 {
		scopes = []types.PermissionScope{types.ScopeSign, types.ScopeOperation}
	}

	req := c.newRequest(RequestPermission)
	req.Scopes = scopes

	resp, err := c.send(ctx, req, events.PermissionRequestSent, events.PermissionRequestError)
	if err != nil {
		return nil, err
	}
	if resp.Account == nil {
		c.registry.Emit(ctx, events.InternalError, "wallet granted permissions without an account")
		return nil, errors.New(errors.ErrInternal, "permission response carried no account")
	}

	c.mu.Lock()
	c.activeAccount = resp.Account
	c.mu.Unlock()

	c.registry.Emit(ctx, events.ActiveAccountSet, *resp.Account)
	c.registry.Emit(ctx, events.PermissionRequestSuccess, &events.PermissionSuccess{
		Account:    *resp.Account,
		Network:    resp.Account.Network,
		Connection: c.connectionContext(),
	})
	return resp.Account, nil
}

// RequestSignPayload asks the wallet to sign a payload with the active
// account. Requires a grant with the sign scope.
func (c *Client) RequestSignPayload(ctx context.Context, payload string) (string, error) {
	account, err := c.requireScope(ctx, types.ScopeSign)
	if err != nil {
		return "", err
	}

	req := c.newRequest(RequestSign)
	req.Payload = payload
	req.SourceAddress = account.Address

	resp, err := c.send(ctx, req, events.SignRequestSent, events.SignRequestError)
	if err != nil {
		return "", err
	}

	c.registry.Emit(ctx, events.SignRequestSuccess, &events.SignSuccess{
		Signature:  resp.Signature,
		Network:    account.Network,
		Connection: c.connectionContext(),
	})
	return resp.Signature, nil
}

// RequestOperation asks the wallet to forge, sign and inject an
// operation. Requires a grant with the operation scope.
func (c *Client) RequestOperation(ctx context.Context, contents string) (string, error) {
	account, err := c.requireScope(ctx, types.ScopeOperation)
	if err != nil {
		return "", err
	}

	req := c.newRequest(RequestOperation)
	req.Payload = contents
	req.SourceAddress = account.Address

	resp, err := c.send(ctx, req, events.OperationRequestSent, events.OperationRequestError)
	if err != nil {
		return "", err
	}

	c.registry.Emit(ctx, events.OperationRequestSuccess, &events.OperationSuccess{
		OperationHash: resp.OperationHash,
		Network:       account.Network,
		Connection:    c.connectionContext(),
	})
	return resp.OperationHash, nil
}

// RequestBroadcast hands a signed transaction to the wallet for
// injection. No permission grant is required.
func (c *Client) RequestBroadcast(ctx context.Context, signedTransaction string) (string, error) {
	req := c.newRequest(RequestBroadcast)
	req.Payload = signedTransaction

	resp, err := c.send(ctx, req, events.BroadcastRequestSent, events.BroadcastRequestError)
	if err != nil {
		return "", err
	}

	c.registry.Emit(ctx, events.BroadcastRequestSuccess, &events.BroadcastSuccess{
		TransactionHash: resp.TransactionHash,
		Network:         c.cfg.BeaconNetwork(),
		Connection:      c.connectionContext(),
	})
	return resp.TransactionHash, nil
}

// send runs the shared request lifecycle: rate limit, sent event,
// transport round trip, acknowledge, and error classification.
func (c *Client) send(ctx context.Context, req Request, sentKind, errorKind events.Kind) (Response, error) {
	transport, err := c.requireTransport()
	if err != nil {
		return Response{}, err
	}

	allowed, firstRefusal := c.limiter.Allow()
	if !allowed {
		if firstRefusal {
			c.registry.Emit(ctx, events.LocalRateLimitReached, nil)
		}
		return Response{}, errors.New(errors.ErrTooManyRequests, "local rate limit reached")
	}

	c.registry.Emit(ctx, sentKind, &events.RequestSentInfo{
		WalletLabel: c.walletLabel(),
		WalletIcon:  c.walletIcon(),
		Reset:       func() { c.ResetConnection(context.Background()) },
	})

	resp, err := transport.Send(ctx, req)
	if err != nil {
		c.registry.Emit(ctx, errorKind, &events.RequestError{
			Response: types.ErrorResponse{Type: types.ErrTypeUnknown, Description: err.Error(), RequestID: req.ID},
		})
		return Response{}, errors.Wrap(err, errors.ErrTransportSend, "failed to deliver request")
	}

	c.registry.Emit(ctx, events.AcknowledgeReceived, &events.Acknowledge{RequestID: req.ID})

	if resp.Error != nil {
		c.registry.Emit(ctx, errorKind, &events.RequestError{Response: *resp.Error})
		return Response{}, errors.Newf(errors.ErrNotGranted, "wallet refused request: %s", resp.Error.Type)
	}

	return resp, nil
}

func (c *Client) newRequest(kind RequestKind) Request {
	return Request{
		ID:      uuid.NewString(),
		Kind:    kind,
		AppName: c.cfg.App.Name,
		Network: c.cfg.BeaconNetwork(),
	}
}

// requireScope returns the active account when it carries the scope,
// emitting no-permissions otherwise.
func (c *Client) requireScope(ctx context.Context, scope types.PermissionScope) (types.AccountInfo, error) {
	c.mu.Lock()
	account := c.activeAccount
	c.mu.Unlock()

	if account == nil || !account.HasScope(scope) {
		c.registry.Emit(ctx, events.NoPermissions, nil)
		return types.AccountInfo{}, errors.Newf(errors.ErrNoPermission, "no active account with scope %s", scope)
	}
	return *account, nil
}

func (c *Client) requireTransport() (Transport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transport == nil {
		return nil, errors.New(errors.ErrTransportNotReady, "no transport configured")
	}
	return c.transport, nil
}

func (c *Client) connectionContext() types.ConnectionContext {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.peer == nil {
		return types.ConnectionContext{}
	}
	return types.ConnectionContext{
		Origin: types.Origin{Kind: types.OriginP2P, ID: c.peer.ID},
		ID:     c.peer.ID,
	}
}

func (c *Client) walletLabel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.peer == nil {
		return ""
	}
	return c.peer.Name
}

func (c *Client) walletIcon() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.peer == nil {
		return ""
	}
	return c.peer.Icon
}

// pairingCode serializes the client's half of the handshake. The format
// is opaque to this layer; wallets parse it on their side.
func pairingCode(peer types.PeerInfo) string {
	return "beacon1:" + peer.ID + ":" + peer.Name
}
