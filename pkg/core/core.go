// Package core defines the domain contracts shared across the watcher:
// price feeds, notification sinks and the process settings.
package core

import "context"

// Feed resolves a token address to its current unit price on one upstream
// quote source. Implementations must build the same request for the same
// address and either return a non-negative price or fail explicitly.
type Feed interface {
	Name() string
	CurrentPrice(ctx context.Context, address string) (float64, error)
}

// Notifier delivers an outbound message. A failed delivery is reported to
// the caller; it is never retried here.
type Notifier interface {
	Notify(text string) error
}

// NotifierWithStart is a notifier that owns a long-running inbound side,
// such as a chat bot long poller.
type NotifierWithStart interface {
	Notifier
	Start()
}
