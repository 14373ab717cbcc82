// Package tokenwatch wires the tracked tokens, the reporter, the Telegram
// bot and the periodic watcher into a runnable application.
package tokenwatch

import (
	"context"
	"fmt"

	"github.com/raykavin/tokenwatch/pkg/config"
	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/raykavin/tokenwatch/pkg/feed"
	"github.com/raykavin/tokenwatch/pkg/logger"
	"github.com/raykavin/tokenwatch/pkg/metrics"
	"github.com/raykavin/tokenwatch/pkg/notification"
	"github.com/raykavin/tokenwatch/pkg/watch"
)

// App is the assembled application.
type App struct {
	settings *core.Settings
	reporter *watch.Reporter
	notifier core.Notifier
	telegram core.NotifierWithStart
	log      logger.Logger
}

// NewApp builds the application from the given settings. When Telegram is
// enabled and no notifier was injected, the Telegram bot becomes both the
// command transport and the alert sink.
func NewApp(settings *core.Settings, options ...Option) (*App, error) {
	if settings == nil || len(settings.Tokens) == 0 {
		return nil, core.ErrNoTokens
	}

	app := &App{settings: settings, log: DefaultLog}

	// Apply custom options
	for _, option := range options {
		option(app)
	}

	tokens := make([]*watch.Token, 0, len(settings.Tokens))
	for _, tc := range settings.Tokens {
		f, err := feed.FromName(tc.Feed)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", tc.Name, err)
		}
		tokens = append(tokens, &watch.Token{
			Name:           tc.Name,
			Address:        tc.Address,
			Feed:           f,
			BuyPrice:       tc.BuyPrice,
			AlertThreshold: tc.AlertThreshold,
		})
	}
	app.reporter = watch.NewReporter(tokens)

	if app.notifier == nil && settings.Telegram.Enabled {
		telegram, err := notification.NewTelegram(app.reporter, settings.Telegram, app.log)
		if err != nil {
			return nil, err
		}
		app.telegram = telegram
		app.notifier = telegram
	}

	return app, nil
}

// NewAppFromEnv loads the configuration and builds the application.
func NewAppFromEnv(options ...Option) (*App, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewApp(settings, options...)
}

// Reporter returns the report aggregator, for one-shot report commands.
func (a *App) Reporter() *watch.Reporter {
	return a.reporter
}

// Run starts the ops endpoint and the Telegram bot, then blocks in the
// watcher loop until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	if a.notifier == nil {
		return core.ErrNoNotifier
	}

	if addr := a.settings.MetricsAddr; addr != "" {
		go func() {
			if err := metrics.Serve(ctx, addr, a.log); err != nil {
				a.log.WithError(err).Error("ops endpoint failed")
			}
		}()
	}

	if a.telegram != nil {
		a.telegram.Start()
	}

	watcher := watch.NewWatcher(a.reporter, a.notifier, a.settings.CheckInterval, a.log)
	watcher.Run(ctx)

	return nil
}
