package ui

import (
	"context"
	"fmt"

	"github.com/walletbeacon/beacon-go/pkg/events"
	"github.com/walletbeacon/beacon-go/pkg/types"
)

// DefaultHandlers returns the baseline handler for every event kind,
// rendering through the given notifier. The returned set is what a
// client installs at construction unless the caller overrides it.
func DefaultHandlers(n *Notifier) events.HandlerSet {
	set := events.HandlerSet{
		events.PermissionRequestSent: requestSentHandler(n, "Permission request"),
		events.OperationRequestSent:  requestSentHandler(n, "Operation request"),
		events.SignRequestSent:       requestSentHandler(n, "Sign request"),
		events.BroadcastRequestSent:  requestSentHandler(n, "Broadcast request"),

		events.PermissionRequestSuccess: events.Typed(func(ctx context.Context, p *events.PermissionSuccess, actions []events.Action) error {
			n.Success("Permission granted",
				"Account: "+p.Account.Address,
				"Network: "+p.Network.DisplayName(),
				"Scopes:  "+p.Account.ScopeString(),
			)
			return nil
		}),
		events.OperationRequestSuccess: events.Typed(func(ctx context.Context, p *events.OperationSuccess, actions []events.Action) error {
			n.Success("Operation injected",
				"Hash:    "+p.OperationHash,
				"Network: "+p.Network.DisplayName(),
			)
			return nil
		}),
		events.SignRequestSuccess: events.Typed(func(ctx context.Context, p *events.SignSuccess, actions []events.Action) error {
			n.Success("Payload signed", "Signature: "+p.Signature)
			return nil
		}),
		events.BroadcastRequestSuccess: events.Typed(func(ctx context.Context, p *events.BroadcastSuccess, actions []events.Action) error {
			n.Success("Transaction broadcast",
				"Hash:    "+p.TransactionHash,
				"Network: "+p.Network.DisplayName(),
			)
			return nil
		}),

		events.PermissionRequestError: requestErrorHandler(n),
		events.OperationRequestError:  requestErrorHandler(n),
		events.SignRequestError:       requestErrorHandler(n),
		events.BroadcastRequestError:  requestErrorHandler(n),

		events.AcknowledgeReceived: events.Typed(func(ctx context.Context, p *events.Acknowledge, actions []events.Action) error {
			n.Toast("Wallet acknowledged request " + p.RequestID)
			return nil
		}),

		events.LocalRateLimitReached: func(ctx context.Context, payload interface{}, actions []events.Action) error {
			n.Warn("Too many requests, slow down")
			return nil
		},
		events.NoPermissions: func(ctx context.Context, payload interface{}, actions []events.Action) error {
			n.Warn("No permissions granted, request permissions first")
			return nil
		},

		events.ActiveAccountSet: events.Typed(func(ctx context.Context, account types.AccountInfo, actions []events.Action) error {
			n.Toast("Active account set to " + account.Address)
			return nil
		}),
		events.ActiveTransportSet: events.Typed(func(ctx context.Context, transport types.TransportType, actions []events.Action) error {
			n.Toast("Transport switched to " + string(transport))
			return nil
		}),

		events.PairInit: events.Typed(func(ctx context.Context, p *events.PairingRequest, actions []events.Action) error {
			n.Pairing(p.Code)
			renderActions(n, actions)
			return nil
		}),
		events.PairSuccess: events.Typed(func(ctx context.Context, peer types.PeerInfo, actions []events.Action) error {
			n.Success("Paired with "+peer.Name, "Peer id: "+peer.ID)
			return nil
		}),

		events.P2PChannelConnectSuccess: events.Typed(func(ctx context.Context, peer types.PeerInfo, actions []events.Action) error {
			n.Toast("Channel open with " + n.WalletLabel(peer.Name))
			return nil
		}),
		events.P2PListenForChannelOpen: events.Typed(func(ctx context.Context, peer types.PeerInfo, actions []events.Action) error {
			n.Toast("Waiting for " + n.WalletLabel(peer.Name) + " to open the channel")
			return nil
		}),

		events.ChannelClosed: events.Typed(func(ctx context.Context, channelID string, actions []events.Action) error {
			n.Warn("Channel closed: " + channelID)
			return nil
		}),

		events.InternalError: events.Typed(func(ctx context.Context, description string, actions []events.Action) error {
			n.Alert("Internal error", description)
			renderActions(n, actions)
			return nil
		}),

		events.Unknown: func(ctx context.Context, payload interface{}, actions []events.Action) error {
			return nil
		},
	}

	return set
}

// requestSentHandler builds the toast shown when a request leaves for
// the wallet. The reset action from the payload and any extra action
// descriptors are listed as hints.
func requestSentHandler(n *Notifier, label string) events.Handler {
	return events.Typed(func(ctx context.Context, p *events.RequestSentInfo, actions []events.Action) error {
		n.Toast(fmt.Sprintf("%s sent to %s", label, n.WalletLabel(p.WalletLabel)))
		hints := make([]string, 0, len(actions)+1)
		if p.Reset != nil {
			hints = append(hints, "Reset the connection if the wallet does not answer")
		}
		for _, action := range actions {
			hints = append(hints, action.Text)
		}
		n.Actions(hints)
		return nil
	})
}

func requestErrorHandler(n *Notifier) events.Handler {
	return events.Typed(func(ctx context.Context, p *events.RequestError, actions []events.Action) error {
		n.Alert(p.Response.Title(), p.Response.Description)
		renderActions(n, actions)
		return nil
	})
}

func renderActions(n *Notifier, actions []events.Action) {
	if len(actions) == 0 {
		return
	}
	hints := make([]string, 0, len(actions))
	for _, action := range actions {
		hints = append(hints, action.Text)
	}
	n.Actions(hints)
}
