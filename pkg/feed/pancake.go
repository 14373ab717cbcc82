package feed

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/raykavin/tokenwatch/pkg/core"
)

const pancakeBaseURL = "https://api.pancakeswap.info/api/v2/tokens"

// pancakeResponse is the token endpoint body. The update timestamp is
// carried on the wire but unused here.
type pancakeResponse struct {
	UpdatedAt int64 `json:"updated_at"`
	Data      struct {
		Price string `json:"price"`
	} `json:"data"`
}

// Pancake quotes a token directly against the PancakeSwap token info API,
// which returns the unit price as a decimal string.
type Pancake struct {
	client  *http.Client
	baseURL string
}

func NewPancake() *Pancake {
	return &Pancake{client: defaultClient, baseURL: pancakeBaseURL}
}

func (p *Pancake) Name() string { return "pancake" }

// CurrentPrice implements core.Feed.
func (p *Pancake) CurrentPrice(ctx context.Context, address string) (float64, error) {
	var body pancakeResponse
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s/%s", p.baseURL, address), &body); err != nil {
		return 0, &core.FeedError{Feed: p.Name(), Address: address, Err: err}
	}

	price, err := strconv.ParseFloat(body.Data.Price, 64)
	if err != nil {
		return 0, &core.FeedError{Feed: p.Name(), Address: address, Err: err}
	}
	if price < 0 {
		return 0, &core.FeedError{Feed: p.Name(), Address: address, Err: fmt.Errorf("negative price: %v", price)}
	}

	return price, nil
}
