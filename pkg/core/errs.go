package core

import (
	"errors"
	"fmt"
)

var (
	ErrTelegramTokenMissing = errors.New("telegram bot token is not set")
	ErrChatIDMissing        = errors.New("telegram chat id is not set")
	ErrNoTokens             = errors.New("no tokens configured")
	ErrNoNotifier           = errors.New("no notifier configured")
	ErrUnknownFeed          = errors.New("unknown price feed")
	ErrNegativeBuyPrice     = errors.New("negative buy price")
	ErrInvalidThreshold     = errors.New("alert threshold must be positive")
)

// FeedError wraps a failure to fetch a price from one upstream source.
// It is always local to a single token check and is rendered as a report
// line by the caller, never escalated.
type FeedError struct {
	Err     error
	Feed    string
	Address string
}

// Error implements the error interface
func (e *FeedError) Error() string {
	return fmt.Sprintf("%s feed: %v", e.Feed, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}
