package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestPancake_CurrentPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/0xabc", r.URL.Path)
		fmt.Fprint(w, `{"updated_at": 1647589683796, "data": {"price": "0.045"}}`)
	}))
	defer srv.Close()

	p := &Pancake{client: srv.Client(), baseURL: srv.URL}

	price, err := p.CurrentPrice(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Equal(t, 0.045, price)
}

func TestPancake_CurrentPriceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := &Pancake{client: srv.Client(), baseURL: srv.URL}

	_, err := p.CurrentPrice(context.Background(), "0xabc")
	require.Error(t, err)

	var feedErr *core.FeedError
	require.ErrorAs(t, err, &feedErr)
	require.Equal(t, "pancake", feedErr.Feed)
}

func TestPancake_CurrentPriceBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"price not a number", `{"updated_at": 1, "data": {"price": "zero"}}`},
		{"negative price", `{"updated_at": 1, "data": {"price": "-1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			p := &Pancake{client: srv.Client(), baseURL: srv.URL}

			_, err := p.CurrentPrice(context.Background(), "0xabc")
			require.Error(t, err)
		})
	}
}
