package feed

import (
	"testing"

	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	for _, name := range []string{"pancake", "oneinch", "binance"} {
		f, err := FromName(name)
		require.NoError(t, err)
		require.Equal(t, name, f.Name())
	}
}

func TestFromNameUnknown(t *testing.T) {
	_, err := FromName("kraken")
	require.ErrorIs(t, err, core.ErrUnknownFeed)
}
