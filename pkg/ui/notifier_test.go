// Test Type: Unit Test
// Description: Tests for the notifier's plain-mode rendering

package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walletbeacon/beacon-go/pkg/ui"
)

func TestNotifierPlainToast(t *testing.T) {
	var out bytes.Buffer
	n := ui.NewNotifierWithWriter(&out, true)

	n.Toast("request on its way")
	assert.Equal(t, "request on its way\n", out.String())
}

func TestNotifierPlainWarn(t *testing.T) {
	var out bytes.Buffer
	n := ui.NewNotifierWithWriter(&out, true)

	n.Warn("rate limit hit")
	assert.Equal(t, "warning: rate limit hit\n", out.String())
}

func TestNotifierPlainSuccess(t *testing.T) {
	var out bytes.Buffer
	n := ui.NewNotifierWithWriter(&out, true)

	n.Success("Permission granted", "Account: addr1", "Network: mainnet")

	want := "Permission granted\n  Account: addr1\n  Network: mainnet\n"
	assert.Equal(t, want, out.String())
}

func TestNotifierPlainAlert(t *testing.T) {
	var out bytes.Buffer
	n := ui.NewNotifierWithWriter(&out, true)

	n.Alert("Broadcast failed", "node rejected the operation")

	assert.Contains(t, out.String(), "error: Broadcast failed")
	assert.Contains(t, out.String(), "node rejected the operation")
}

func TestNotifierWalletLabelFallback(t *testing.T) {
	var out bytes.Buffer
	n := ui.NewNotifierWithWriter(&out, true)

	assert.Equal(t, "wallet", n.WalletLabel(""))
	assert.Equal(t, "Acme", n.WalletLabel("Acme"))
}

func TestNotifierActions(t *testing.T) {
	var out bytes.Buffer
	n := ui.NewNotifierWithWriter(&out, true)

	n.Actions([]string{"Reset connection", "Open wallet"})

	assert.Contains(t, out.String(), "-> Reset connection")
	assert.Contains(t, out.String(), "-> Open wallet")
}

func TestNotifierStyledOutputStillWrites(t *testing.T) {
	var out bytes.Buffer
	n := ui.NewNotifierWithWriter(&out, false)

	n.Toast("styled toast")
	n.Warn("styled warn")
	n.Success("title", "line")
	n.Alert("title", "desc")
	n.Pairing("CODE123")

	assert.Contains(t, out.String(), "CODE123")
	assert.NotEmpty(t, out.String())
}
