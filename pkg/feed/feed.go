// Package feed implements the upstream price-quote sources. Each feed
// turns a token address into one request, issues a single GET and extracts
// a unit price from the response. There is no retry; a failed fetch
// surfaces as a core.FeedError on that token only.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/raykavin/tokenwatch/pkg/core"
)

const clientTimeout = 30 * time.Second

// defaultClient is shared by the REST feeds.
var defaultClient = &http.Client{Timeout: clientTimeout}

// FromName resolves a configured feed name to its implementation.
func FromName(name string) (core.Feed, error) {
	switch name {
	case "pancake":
		return NewPancake(), nil
	case "oneinch":
		return NewOneInch(), nil
	case "binance":
		return NewBinance(), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownFeed, name)
	}
}

// getJSON performs a single GET and decodes the JSON response body into v.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
