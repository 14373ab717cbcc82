package watch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubFeed struct {
	price float64
	err   error
}

func (s *stubFeed) Name() string { return "stub" }

func (s *stubFeed) CurrentPrice(_ context.Context, _ string) (float64, error) {
	return s.price, s.err
}

func newToken(name string, price, buy, threshold float64) *Token {
	return &Token{
		Name:           name,
		Address:        "0xabc",
		Feed:           &stubFeed{price: price},
		BuyPrice:       buy,
		AlertThreshold: threshold,
	}
}

func TestToken_DiffPct(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		buy      float64
		wantPct  float64
		wantText string
	}{
		{"above buy price", 0.045, 0.03, 50, "+50%"},
		{"slightly above", 0.033, 0.03, 10, "+10%"},
		{"below buy price", 0.027, 0.03, -10, "-10%"},
		{"equal to buy price", 0.03, 0.03, 0, "0%"},
		{"rounded to two decimals", 3.1, 3, 3.33, "+3.33%"},
		{"no reference price", 5, 0, 0, "+0%"},
		{"no reference and zero price", 0, 0, 0, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := newToken("TKN", tt.price, tt.buy, 30)

			current, pct, text, err := token.DiffPct(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.price, current)
			require.Equal(t, tt.wantPct, pct)
			require.Equal(t, tt.wantText, text)
		})
	}
}

func TestToken_DiffPctPropagatesFeedError(t *testing.T) {
	boom := errors.New("boom")
	token := &Token{Name: "TKN", Feed: &stubFeed{err: boom}, BuyPrice: 1, AlertThreshold: 30}

	_, _, _, err := token.DiffPct(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestToken_Report(t *testing.T) {
	token := newToken("BGS", 0.045, 0.03, 30)

	line, err := token.Report(context.Background())
	require.NoError(t, err)
	require.Equal(t, "name: BGS, buy_price: 0.03, current_price: 0.045, diff: +50%", line)
}

func TestToken_Check(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		buy       float64
		threshold float64
		want      string
	}{
		{"deviation above threshold", 0.045, 0.03, 30, "name: BGS, buy_price: 0.03, current_price: 0.045, diff: +50%"},
		{"deviation inside band", 0.033, 0.03, 30, ""},
		{"exactly on threshold", 130, 100, 30, "name: BGS, buy_price: 100, current_price: 130, diff: +30%"},
		{"exactly on negative threshold", 70, 100, 30, "name: BGS, buy_price: 100, current_price: 70, diff: -30%"},
		{"just inside positive band", 129, 100, 30, ""},
		{"just inside negative band", 71, 100, 30, ""},
		{"no deviation", 100, 100, 30, ""},
		{"no reference price stays quiet", 999, 0, 30, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := newToken("BGS", tt.price, tt.buy, tt.threshold)

			line, err := token.Check(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.want, line)
		})
	}
}
