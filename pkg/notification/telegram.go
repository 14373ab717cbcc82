// Package notification provides the Telegram transport: the inbound
// command side and the outbound alert sink.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/raykavin/tokenwatch/pkg/logger"
	"github.com/raykavin/tokenwatch/pkg/watch"
	"github.com/samber/lo"
	tb "gopkg.in/tucnak/telebot.v2"
)

const pollerTimeout = 10 * time.Second

// telegram implements core.NotifierWithStart.
type telegram struct {
	settings core.TelegramSettings
	reporter *watch.Reporter
	client   *tb.Bot
	log      logger.Logger
}

// NewTelegram creates the Telegram bot, registers the /report command and
// wires an authorization middleware that only lets the configured chat
// and users through.
func NewTelegram(reporter *watch.Reporter, settings core.TelegramSettings, log logger.Logger) (core.NotifierWithStart, error) {
	if settings.Token == "" {
		return nil, core.ErrTelegramTokenMissing
	}
	if settings.ChatID == 0 {
		return nil, core.ErrChatIDMissing
	}

	poller := &tb.LongPoller{Timeout: pollerTimeout}
	authorized := tb.NewMiddlewarePoller(poller, func(u *tb.Update) bool {
		if u.Message == nil || u.Message.Chat == nil {
			return false
		}
		if u.Message.Chat.ID == settings.ChatID {
			return true
		}
		if u.Message.Sender != nil && lo.Contains(settings.Users, u.Message.Sender.ID) {
			return true
		}

		log.Warnf("dropping update from unauthorized chat %d", u.Message.Chat.ID)
		return false
	})

	client, err := tb.NewBot(tb.Settings{
		ParseMode: tb.ModeMarkdown,
		Token:     settings.Token,
		Poller:    authorized,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	if err := client.SetCommands([]tb.Command{
		{Text: "/report", Description: "Report the current prices"},
	}); err != nil {
		return nil, fmt.Errorf("failed to set commands: %w", err)
	}

	bot := &telegram{
		settings: settings,
		reporter: reporter,
		client:   client,
		log:      log,
	}

	client.Handle("/report", bot.ReportHandle)

	return bot, nil
}

// Start begins the long poller in the background.
func (t *telegram) Start() {
	go t.client.Start()
	t.log.Info("telegram bot started")
}

// Notify sends a message to the configured alert chat. Failures are
// returned to the caller and never retried.
func (t *telegram) Notify(text string) error {
	if _, err := t.client.Send(&tb.Chat{ID: t.settings.ChatID}, text); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// ReportHandle answers the /report command with the current status of all
// tracked tokens in a monospace block.
func (t *telegram) ReportHandle(m *tb.Message) {
	text := t.reporter.Report(context.Background())
	t.sendMessage(m.Chat, codeBlock(text))
}

func (t *telegram) sendMessage(to tb.Recipient, text string) {
	if _, err := t.client.Send(to, text); err != nil {
		t.log.WithError(err).Error("failed to send message")
	}
}

func codeBlock(text string) string {
	return "```\n" + text + "```"
}
