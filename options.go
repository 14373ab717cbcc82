package tokenwatch

import (
	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/raykavin/tokenwatch/pkg/logger"
)

// Option is a functional option for configuring an App instance
type Option func(*App)

// WithLogger overrides the default logger.
func WithLogger(log logger.Logger) Option {
	return func(app *App) {
		app.log = log
	}
}

// WithNotifier sets the alert sink, replacing the Telegram bot. Useful
// for tests and for running without a chat transport.
func WithNotifier(notifier core.Notifier) Option {
	return func(app *App) {
		app.notifier = notifier
	}
}
