package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	pairingStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(1, 3)

	walletStyle = lipgloss.NewStyle().Bold(true)
)

// Notifier renders toasts, alerts and panels to a terminal. It is the
// concrete presentation target of the default event handlers.
type Notifier struct {
	out   io.Writer
	plain bool
}

// NewNotifier creates a notifier writing to stderr, with styling chosen
// by terminal detection.
func NewNotifier() *Notifier {
	return &Notifier{out: os.Stderr, plain: DetectPlain(os.Stderr)}
}

// NewNotifierWithWriter creates a notifier for an arbitrary writer.
// Used by tests and by hosts that capture notifications.
func NewNotifierWithWriter(out io.Writer, plain bool) *Notifier {
	return &Notifier{out: out, plain: plain}
}

// Toast shows a transient progress message
func (n *Notifier) Toast(message string) {
	if n.plain {
		fmt.Fprintln(n.out, message)
		return
	}
	pterm.Info.WithWriter(n.out).Println(message)
}

// Warn shows a warning toast
func (n *Notifier) Warn(message string) {
	if n.plain {
		fmt.Fprintln(n.out, "warning: "+message)
		return
	}
	pterm.Warning.WithWriter(n.out).Println(message)
}

// Success shows a result box with a title and detail lines
func (n *Notifier) Success(title string, lines ...string) {
	if n.plain {
		fmt.Fprintln(n.out, title)
		for _, line := range lines {
			fmt.Fprintln(n.out, "  "+line)
		}
		return
	}
	body := strings.Join(lines, "\n")
	pterm.DefaultBox.
		WithWriter(n.out).
		WithTitle(pterm.Green(title)).
		Println(body)
}

// Alert shows an error box
func (n *Notifier) Alert(title, description string) {
	if n.plain {
		fmt.Fprintln(n.out, "error: "+title)
		if description != "" {
			fmt.Fprintln(n.out, "  "+description)
		}
		return
	}
	pterm.DefaultBox.
		WithWriter(n.out).
		WithTitle(pterm.Red(title)).
		Println(description)
}

// Pairing shows the serialized pairing code for the user to hand to a
// wallet. Rendering it as a QR code is deliberately left to hosts with a
// graphical surface.
func (n *Notifier) Pairing(code string) {
	if n.plain {
		fmt.Fprintln(n.out, "pairing code: "+code)
		return
	}
	fmt.Fprintln(n.out, pairingStyle.Render("Pairing code\n\n"+code))
}

// WalletLabel styles a wallet name for inline use in a toast
func (n *Notifier) WalletLabel(label string) string {
	if label == "" {
		label = "wallet"
	}
	if n.plain {
		return label
	}
	return walletStyle.Render(label)
}

// Actions renders the action descriptors attached to an event as hints.
// The terminal surface is not interactive, so actions are listed rather
// than wired to buttons.
func (n *Notifier) Actions(actions []string) {
	for _, action := range actions {
		if n.plain {
			fmt.Fprintln(n.out, "  -> "+action)
			continue
		}
		fmt.Fprintln(n.out, pterm.Gray("  -> "+action))
	}
}
