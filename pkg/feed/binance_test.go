package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinance_CurrentPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		require.Equal(t, "WOOUSDT", r.URL.Query().Get("symbol"))

		fmt.Fprint(w, `{"symbol": "WOOUSDT", "price": "0.75"}`)
	}))
	defer srv.Close()

	b := NewBinance()
	b.client.BaseURL = srv.URL
	b.client.HTTPClient = srv.Client()

	price, err := b.CurrentPrice(context.Background(), "wooUSDT")
	require.NoError(t, err)
	require.Equal(t, 0.75, price)
}

func TestBinance_CurrentPriceUnknownSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"code": -1121, "msg": "Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	b := NewBinance()
	b.client.BaseURL = srv.URL
	b.client.HTTPClient = srv.Client()

	_, err := b.CurrentPrice(context.Background(), "NOPEUSDT")
	require.Error(t, err)
}
