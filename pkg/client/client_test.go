// Test Type: Unit Test
// Description: Tests for the client - construction wiring, request
// lifecycle event emission, permissions and rate limiting.

package client_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletbeacon/beacon-go/pkg/client"
	"github.com/walletbeacon/beacon-go/pkg/config"
	"github.com/walletbeacon/beacon-go/pkg/errors"
	"github.com/walletbeacon/beacon-go/pkg/events"
	"github.com/walletbeacon/beacon-go/pkg/types"
)

// eventLog records emitted events per kind and lets tests wait for them
type eventLog struct {
	mu       sync.Mutex
	payloads map[events.Kind][]interface{}
	ch       chan events.Kind
}

func newEventLog() *eventLog {
	return &eventLog{
		payloads: make(map[events.Kind][]interface{}),
		ch:       make(chan events.Kind, 128),
	}
}

// watch subscribes the log to the given kinds on a registry
func (l *eventLog) watch(reg *events.Registry, kinds ...events.Kind) {
	for _, kind := range kinds {
		k := kind
		reg.Subscribe(k, func(ctx context.Context, payload interface{}, actions []events.Action) error {
			l.mu.Lock()
			l.payloads[k] = append(l.payloads[k], payload)
			l.mu.Unlock()
			l.ch <- k
			return nil
		})
	}
}

// waitFor blocks until each expected kind was seen once, in any order
func (l *eventLog) waitFor(t *testing.T, expected ...events.Kind) {
	t.Helper()
	pending := make(map[events.Kind]int)
	for _, kind := range expected {
		pending[kind]++
	}
	for len(pending) > 0 {
		select {
		case kind := <-l.ch:
			if pending[kind] > 0 {
				pending[kind]--
				if pending[kind] == 0 {
					delete(pending, kind)
				}
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for events, still pending: %v", pending)
		}
	}
}

func (l *eventLog) count(kind events.Kind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.payloads[kind])
}

func (l *eventLog) last(kind events.Kind) interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.payloads[kind]
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// newTestClient builds a client with silent defaults and a loopback
// transport, returning the client and its event log.
func newTestClient(t *testing.T, responder client.Responder, opts ...client.Option) (*client.Client, *eventLog) {
	t.Helper()
	transport := client.NewLoopbackTransport(types.PeerInfo{Name: "Test Wallet"}, responder)
	opts = append([]client.Option{
		client.WithDefaultHandlers(events.HandlerSet{}),
		client.WithTransport(transport),
	}, opts...)

	c, err := client.New(config.Default(), opts...)
	require.NoError(t, err)
	return c, newEventLog()
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Network.Type = "moonnet"

	_, err := client.New(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestNewNilConfigUsesDefaults(t *testing.T) {
	c, err := client.New(nil, client.WithDefaultHandlers(events.HandlerSet{}))
	require.NoError(t, err)
	assert.NotNil(t, c.Events())
}

func TestClientsHaveIndependentRegistries(t *testing.T) {
	a, err := client.New(config.Default(), client.WithDefaultHandlers(events.HandlerSet{}))
	require.NoError(t, err)
	b, err := client.New(config.Default(), client.WithDefaultHandlers(events.HandlerSet{}))
	require.NoError(t, err)

	a.Events().Subscribe(events.ChannelClosed, func(ctx context.Context, payload interface{}, actions []events.Action) error {
		return nil
	})

	assert.Equal(t, 2, a.Events().Len(events.ChannelClosed))
	assert.Equal(t, 1, b.Events().Len(events.ChannelClosed))
}

func TestPairEmitsLifecycle(t *testing.T) {
	c, log := newTestClient(t, nil)
	log.watch(c.Events(),
		events.PairInit,
		events.P2PListenForChannelOpen,
		events.P2PChannelConnectSuccess,
		events.PairSuccess,
		events.ActiveTransportSet,
	)

	require.NoError(t, c.Pair(context.Background()))

	log.waitFor(t,
		events.PairInit,
		events.P2PListenForChannelOpen,
		events.P2PChannelConnectSuccess,
		events.PairSuccess,
		events.ActiveTransportSet,
	)

	pairInit, ok := log.last(events.PairInit).(*events.PairingRequest)
	require.True(t, ok)
	assert.Contains(t, pairInit.Code, "beacon1:")

	peer, ok := log.last(events.PairSuccess).(types.PeerInfo)
	require.True(t, ok)
	assert.Equal(t, "Test Wallet", peer.Name)

	transport, ok := log.last(events.ActiveTransportSet).(types.TransportType)
	require.True(t, ok)
	assert.Equal(t, types.TransportLoopback, transport)
}

func TestRequestPermissionsGranted(t *testing.T) {
	c, log := newTestClient(t, nil)
	log.watch(c.Events(),
		events.PermissionRequestSent,
		events.AcknowledgeReceived,
		events.ActiveAccountSet,
		events.PermissionRequestSuccess,
	)

	require.NoError(t, c.Pair(context.Background()))
	account, err := c.RequestPermissions(context.Background(), types.ScopeSign)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.True(t, account.HasScope(types.ScopeSign))
	assert.Equal(t, account, c.ActiveAccount())

	log.waitFor(t,
		events.PermissionRequestSent,
		events.AcknowledgeReceived,
		events.ActiveAccountSet,
		events.PermissionRequestSuccess,
	)

	sent, ok := log.last(events.PermissionRequestSent).(*events.RequestSentInfo)
	require.True(t, ok)
	assert.Equal(t, "Test Wallet", sent.WalletLabel)
	assert.NotNil(t, sent.Reset)

	success, ok := log.last(events.PermissionRequestSuccess).(*events.PermissionSuccess)
	require.True(t, ok)
	assert.Equal(t, account.Address, success.Account.Address)
}

func TestRequestPermissionsDenied(t *testing.T) {
	c, log := newTestClient(t, client.Denying(types.ErrTypeNotGranted))
	log.watch(c.Events(), events.PermissionRequestError, events.AcknowledgeReceived)

	require.NoError(t, c.Pair(context.Background()))
	_, err := c.RequestPermissions(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotGranted))

	log.waitFor(t, events.PermissionRequestError, events.AcknowledgeReceived)
	payload, ok := log.last(events.PermissionRequestError).(*events.RequestError)
	require.True(t, ok)
	assert.Equal(t, types.ErrTypeNotGranted, payload.Response.Type)
}

func TestSignWithoutPermissions(t *testing.T) {
	c, log := newTestClient(t, nil)
	log.watch(c.Events(), events.NoPermissions)

	require.NoError(t, c.Pair(context.Background()))
	_, err := c.RequestSignPayload(context.Background(), "05deadbeef")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoPermission))
	log.waitFor(t, events.NoPermissions)
}

func TestSignLifecycle(t *testing.T) {
	c, log := newTestClient(t, nil)
	log.watch(c.Events(), events.SignRequestSent, events.SignRequestSuccess)

	require.NoError(t, c.Pair(context.Background()))
	_, err := c.RequestPermissions(context.Background(), types.ScopeSign)
	require.NoError(t, err)

	signature, err := c.RequestSignPayload(context.Background(), "05deadbeef")
	require.NoError(t, err)
	assert.Contains(t, signature, "sig-")

	log.waitFor(t, events.SignRequestSent, events.SignRequestSuccess)
	success, ok := log.last(events.SignRequestSuccess).(*events.SignSuccess)
	require.True(t, ok)
	assert.Equal(t, signature, success.Signature)
}

func TestOperationRequiresScope(t *testing.T) {
	c, _ := newTestClient(t, nil)

	require.NoError(t, c.Pair(context.Background()))
	_, err := c.RequestPermissions(context.Background(), types.ScopeSign)
	require.NoError(t, err)

	_, err = c.RequestOperation(context.Background(), "transaction contents")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoPermission))
}

func TestBroadcastLifecycle(t *testing.T) {
	c, log := newTestClient(t, nil)
	log.watch(c.Events(), events.BroadcastRequestSent, events.BroadcastRequestSuccess)

	require.NoError(t, c.Pair(context.Background()))
	hash, err := c.RequestBroadcast(context.Background(), "signed-bytes")
	require.NoError(t, err)
	assert.Contains(t, hash, "tx-")

	log.waitFor(t, events.BroadcastRequestSent, events.BroadcastRequestSuccess)
}

func TestRateLimitEmitsOncePerWindow(t *testing.T) {
	cfg := config.Default()
	cfg.Events.RateLimit.Requests = 2
	cfg.Events.RateLimit.Window = time.Hour

	transport := client.NewLoopbackTransport(types.PeerInfo{}, nil)
	c, err := client.New(cfg,
		client.WithDefaultHandlers(events.HandlerSet{}),
		client.WithTransport(transport),
	)
	require.NoError(t, err)

	log := newEventLog()
	log.watch(c.Events(), events.LocalRateLimitReached)

	require.NoError(t, c.Pair(context.Background()))
	_, err = c.RequestBroadcast(context.Background(), "tx1")
	require.NoError(t, err)
	_, err = c.RequestBroadcast(context.Background(), "tx2")
	require.NoError(t, err)

	_, err = c.RequestBroadcast(context.Background(), "tx3")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTooManyRequests))
	log.waitFor(t, events.LocalRateLimitReached)

	// A second refusal in the same window stays silent
	_, err = c.RequestBroadcast(context.Background(), "tx4")
	require.Error(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, log.count(events.LocalRateLimitReached))
}

func TestRequestWithoutTransport(t *testing.T) {
	c, err := client.New(config.Default(), client.WithDefaultHandlers(events.HandlerSet{}))
	require.NoError(t, err)

	_, err = c.RequestBroadcast(context.Background(), "tx")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTransportNotReady))

	err = c.Pair(context.Background())
	assert.True(t, errors.IsErrorCode(err, errors.ErrTransportNotReady))
}

func TestResetConnectionEmitsChannelClosed(t *testing.T) {
	transport := client.NewLoopbackTransport(types.PeerInfo{ID: "peer-id-123"}, nil)
	c, err := client.New(config.Default(),
		client.WithDefaultHandlers(events.HandlerSet{}),
		client.WithTransport(transport),
	)
	require.NoError(t, err)

	log := newEventLog()
	log.watch(c.Events(), events.ChannelClosed)

	require.NoError(t, c.Pair(context.Background()))
	require.True(t, transport.Connected())

	c.ResetConnection(context.Background())

	log.waitFor(t, events.ChannelClosed)
	assert.Equal(t, "peer-id-123", log.last(events.ChannelClosed))
	assert.False(t, transport.Connected())
}

func TestWithEventHandlersWinsOverWithAllHandlers(t *testing.T) {
	log := newEventLog()
	perKind := make(chan interface{}, 1)

	transport := client.NewLoopbackTransport(types.PeerInfo{}, nil)
	c, err := client.New(config.Default(),
		client.WithTransport(transport),
		client.WithAllHandlers(func(ctx context.Context, payload interface{}, actions []events.Action) error {
			log.ch <- events.Unknown
			return nil
		}),
		client.WithEventHandlers(events.HandlerSet{
			events.PairSuccess: func(ctx context.Context, payload interface{}, actions []events.Action) error {
				perKind <- payload
				return nil
			},
		}),
	)
	require.NoError(t, err)

	require.NoError(t, c.Pair(context.Background()))

	select {
	case payload := <-perKind:
		peer, ok := payload.(types.PeerInfo)
		require.True(t, ok)
		assert.Equal(t, "Loopback Wallet", peer.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("per-kind override was never invoked")
	}

	// Every kind overridden: exactly one handler per kind
	for _, kind := range events.AllKinds() {
		assert.Equal(t, 1, c.Events().Len(kind))
	}
}

func TestDisableDefaultsFromConfig(t *testing.T) {
	invoked := make(chan struct{}, 8)
	defaults := events.HandlerSet{}
	for _, kind := range events.AllKinds() {
		defaults[kind] = func(ctx context.Context, payload interface{}, actions []events.Action) error {
			invoked <- struct{}{}
			return nil
		}
	}

	cfg := config.Default()
	cfg.Events.DisableDefaults = true

	transport := client.NewLoopbackTransport(types.PeerInfo{}, nil)
	c, err := client.New(cfg,
		client.WithDefaultHandlers(defaults),
		client.WithTransport(transport),
	)
	require.NoError(t, err)

	require.NoError(t, c.Pair(context.Background()))

	select {
	case <-invoked:
		t.Fatal("default handlers must be silenced when disable_defaults is set")
	case <-time.After(100 * time.Millisecond):
	}
}
