// Package config loads the process settings from the environment and an
// optional YAML file. Every value has a default except the Telegram
// credentials, which are validated by the bot itself at startup.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/raykavin/tokenwatch/pkg/feed"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// Default configuration values
const (
	defaultCheckInterval   = "15m"
	defaultTelegramEnabled = true
)

// Environment variable names
const (
	envCheckInterval = "CHECK_INTERVAL"
	envMetricsAddr   = "METRICS_ADDR"
	envTelegramOn    = "TELEGRAM_ENABLED"
	envTelegramToken = "TELEGRAM_TOKEN"
	envChatID        = "TELEGRAM_CHAT_ID"
	envUsers         = "TELEGRAM_USERS"
	envConfigPath    = "TOKENWATCH_CONFIG"
)

// Load builds the process settings. The tracked-token list defaults to
// the compiled-in table and may be replaced by a `tokens:` section in the
// file named by TOKENWATCH_CONFIG. Any missing or malformed value is a
// startup error.
func Load() (*core.Settings, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(envCheckInterval, defaultCheckInterval)
	v.SetDefault(envTelegramOn, defaultTelegramEnabled)

	interval, err := str2duration.ParseDuration(v.GetString(envCheckInterval))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envCheckInterval, err)
	}

	users, err := parseUsers(v.GetString(envUsers))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envUsers, err)
	}

	settings := &core.Settings{
		CheckInterval: interval,
		MetricsAddr:   v.GetString(envMetricsAddr),
		Telegram: core.TelegramSettings{
			Enabled: v.GetBool(envTelegramOn),
			Token:   v.GetString(envTelegramToken),
			ChatID:  v.GetInt64(envChatID),
			Users:   users,
		},
		Tokens: DefaultTokens(),
	}

	if path := v.GetString(envConfigPath); path != "" {
		tokens, err := loadTokensFile(path)
		if err != nil {
			return nil, err
		}
		if len(tokens) > 0 {
			settings.Tokens = tokens
		}
	}

	if err := validateTokens(settings.Tokens); err != nil {
		return nil, err
	}

	return settings, nil
}

// fileToken mirrors core.TokenSettings for viper unmarshaling.
type fileToken struct {
	Name           string  `mapstructure:"name"`
	Address        string  `mapstructure:"address"`
	Feed           string  `mapstructure:"feed"`
	BuyPrice       float64 `mapstructure:"buy_price"`
	AlertThreshold float64 `mapstructure:"alert_threshold"`
}

func loadTokensFile(path string) ([]core.TokenSettings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file struct {
		Tokens []fileToken `mapstructure:"tokens"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	tokens := make([]core.TokenSettings, 0, len(file.Tokens))
	for _, t := range file.Tokens {
		tokens = append(tokens, core.TokenSettings{
			Name:           t.Name,
			Address:        t.Address,
			Feed:           t.Feed,
			BuyPrice:       t.BuyPrice,
			AlertThreshold: t.AlertThreshold,
		})
	}

	return tokens, nil
}

func validateTokens(tokens []core.TokenSettings) error {
	if len(tokens) == 0 {
		return core.ErrNoTokens
	}

	for i, t := range tokens {
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}

		if t.BuyPrice < 0 {
			return fmt.Errorf("token %s: %w", name, core.ErrNegativeBuyPrice)
		}
		if t.AlertThreshold <= 0 {
			return fmt.Errorf("token %s: %w", name, core.ErrInvalidThreshold)
		}
		if _, err := feed.FromName(t.Feed); err != nil {
			return fmt.Errorf("token %s: %w", name, err)
		}
	}

	return nil
}

// parseUsers parses a comma-separated list of Telegram user IDs.
func parseUsers(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	users := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		users = append(users, id)
	}

	return users, nil
}
