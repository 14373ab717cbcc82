package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/raykavin/tokenwatch/pkg/core"
)

const (
	oneInchBaseURL = "https://api.1inch.io/v4.0/56/quote"

	// Quote every token against BUSD with a fixed notional, the unit
	// price is then toTokenAmount / fromTokenAmount.
	busdAddress = "0xe9e7cea3dedca5984780bafc599bd69add087d56"
	quoteAmount = "1000"
)

type oneInchQuote struct {
	FromTokenAmount string `json:"fromTokenAmount"`
	ToTokenAmount   string `json:"toTokenAmount"`
}

// OneInch derives a unit price from a 1inch swap quote.
type OneInch struct {
	client  *http.Client
	baseURL string
}

func NewOneInch() *OneInch {
	return &OneInch{client: defaultClient, baseURL: oneInchBaseURL}
}

func (o *OneInch) Name() string { return "oneinch" }

func (o *OneInch) quoteURL(address string) (string, error) {
	u, err := url.Parse(o.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("fromTokenAddress", address)
	query.Set("toTokenAddress", busdAddress)
	query.Set("amount", quoteAmount)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// CurrentPrice implements core.Feed.
func (o *OneInch) CurrentPrice(ctx context.Context, address string) (float64, error) {
	endpoint, err := o.quoteURL(address)
	if err != nil {
		return 0, &core.FeedError{Feed: o.Name(), Address: address, Err: err}
	}

	var quote oneInchQuote
	if err := getJSON(ctx, o.client, endpoint, &quote); err != nil {
		return 0, &core.FeedError{Feed: o.Name(), Address: address, Err: err}
	}

	fromAmount, err := strconv.ParseFloat(quote.FromTokenAmount, 64)
	if err != nil {
		return 0, &core.FeedError{Feed: o.Name(), Address: address, Err: err}
	}
	toAmount, err := strconv.ParseFloat(quote.ToTokenAmount, 64)
	if err != nil {
		return 0, &core.FeedError{Feed: o.Name(), Address: address, Err: err}
	}
	if fromAmount <= 0 {
		return 0, &core.FeedError{Feed: o.Name(), Address: address, Err: fmt.Errorf("invalid quote amount: %v", fromAmount)}
	}

	return toAmount / fromAmount, nil
}
