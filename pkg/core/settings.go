package core

import "time"

// Settings represents the main configuration for the application
type Settings struct {
	CheckInterval time.Duration    // Period between price check cycles
	MetricsAddr   string           // Listen address for the ops endpoint, empty disables it
	Telegram      TelegramSettings // Telegram integration settings
	Tokens        []TokenSettings  // Tracked tokens, in report order
}

// TelegramSettings holds configuration for Telegram integration
type TelegramSettings struct {
	Enabled bool    // Whether the Telegram bot is enabled
	Token   string  // Telegram bot token
	ChatID  int64   // Chat that receives periodic alerts
	Users   []int64 // Additional user IDs allowed to issue commands
}

// TokenSettings is the static configuration of one tracked token.
// The address is opaque here; each feed interprets it (a chain address
// for on-chain quote sources, a pair symbol for exchange tickers).
type TokenSettings struct {
	Name           string
	Address        string
	Feed           string
	BuyPrice       float64
	AlertThreshold float64
}
