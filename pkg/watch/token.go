// Package watch holds the polling-and-alerting core: per-token deviation
// logic, the report aggregation and the periodic watcher loop.
package watch

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/raykavin/tokenwatch/pkg/core"
)

// Token is one tracked asset. It is built once at startup and never
// mutated afterwards, so it is safe for concurrent reads.
type Token struct {
	Name           string
	Address        string
	Feed           core.Feed
	BuyPrice       float64
	AlertThreshold float64
}

// CurrentPrice fetches the token's current unit price from its feed.
func (t *Token) CurrentPrice(ctx context.Context) (float64, error) {
	return t.Feed.CurrentPrice(ctx, t.Address)
}

// DiffPct fetches the current price and returns it together with the
// percentage deviation from the buy price and its signed text form.
// The percentage is rounded half away from zero at two decimals. A zero
// buy price means "no reference": the deviation is reported as 0.
func (t *Token) DiffPct(ctx context.Context) (float64, float64, string, error) {
	current, err := t.CurrentPrice(ctx)
	if err != nil {
		return 0, 0, "", err
	}

	sign := ""
	if current > t.BuyPrice {
		sign = "+"
	}

	pct := 0.0
	if t.BuyPrice > 0 {
		pct = (current - t.BuyPrice) / t.BuyPrice * 100
		pct = math.Round(pct*100) / 100
	}

	return current, pct, fmt.Sprintf("%s%s%%", sign, formatFloat(pct)), nil
}

func (t *Token) reportLine(current float64, pctText string) string {
	return fmt.Sprintf(
		"name: %s, buy_price: %s, current_price: %s, diff: %s",
		t.Name, formatFloat(t.BuyPrice), formatFloat(current), pctText,
	)
}

// Report returns the token's status line.
func (t *Token) Report(ctx context.Context) (string, error) {
	current, _, pctText, err := t.DiffPct(ctx)
	if err != nil {
		return "", err
	}
	return t.reportLine(current, pctText), nil
}

// Check returns the status line when the deviation left the no-alarm band
// and an empty string otherwise. The band is the open interval
// (-threshold, threshold): a deviation exactly on the threshold alerts.
func (t *Token) Check(ctx context.Context) (string, error) {
	current, pct, pctText, err := t.DiffPct(ctx)
	if err != nil {
		return "", err
	}

	if pct > 0 && pct < t.AlertThreshold {
		return "", nil
	}
	if pct <= 0 && pct > -t.AlertThreshold {
		return "", nil
	}

	return t.reportLine(current, pctText), nil
}

// formatFloat renders a float with the minimal number of decimals.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
