package feed

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/adshao/go-binance/v2"
	"github.com/raykavin/tokenwatch/pkg/core"
)

// Binance quotes exchange-listed tokens through the spot ticker API. The
// token address carries the pair symbol, e.g. "WOOUSDT".
type Binance struct {
	client *binance.Client
}

func NewBinance() *Binance {
	return &Binance{client: binance.NewClient("", "")}
}

func (b *Binance) Name() string { return "binance" }

// CurrentPrice implements core.Feed.
func (b *Binance) CurrentPrice(ctx context.Context, address string) (float64, error) {
	symbol := strings.ToUpper(address)

	prices, err := b.client.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return 0, &core.FeedError{Feed: b.Name(), Address: address, Err: err}
	}
	if len(prices) == 0 {
		return 0, &core.FeedError{Feed: b.Name(), Address: address, Err: fmt.Errorf("no ticker for symbol %s", symbol)}
	}

	price, err := strconv.ParseFloat(prices[0].Price, 64)
	if err != nil {
		return 0, &core.FeedError{Feed: b.Name(), Address: address, Err: err}
	}

	return price, nil
}
