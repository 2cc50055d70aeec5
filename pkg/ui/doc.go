// Package ui is the terminal presentation layer for SDK lifecycle events.
// It supplies the default handler for every event kind: toasts for request
// progress, boxes for results and errors, and a pairing panel for the
// serialized pairing code. The dispatch logic itself lives in pkg/events;
// this package only consumes emitted payloads.
package ui
