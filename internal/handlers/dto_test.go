package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avyukov/minesolver/internal/game"
)

func TestParseGameParams(t *testing.T) {
	query, err := url.ParseQuery("height=8&width=8&mine_count=10")
	require.NoError(t, err)

	params, err := ParseGameParams(query)
	require.NoError(t, err)
	assert.Equal(t, game.GameParams{Height: 8, Width: 8, MineCount: 10}, params)
}

func TestParseGameParamsRejectsBadValues(t *testing.T) {
	for _, raw := range []string{
		"height=0&width=8&mine_count=10",
		"height=8&width=8&mine_count=64",
		"height=8&width=8&mine_count=-1",
		"height=8&width=8",
	} {
		query, err := url.ParseQuery(raw)
		require.NoError(t, err)
		_, err = ParseGameParams(query)
		assert.Error(t, err, raw)
	}
}

func TestParseGameParamsIgnoresUnknownKeys(t *testing.T) {
	query, err := url.ParseQuery("height=4&width=4&mine_count=2&theme=dark")
	require.NoError(t, err)

	_, err = ParseGameParams(query)
	assert.NoError(t, err)
}
