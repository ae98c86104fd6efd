package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avyukov/minesolver/internal/game"
	"github.com/avyukov/minesolver/internal/solver"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params game.GameParams
		err    error
	}{
		{"9x9(10)", game.GameParams{Height: 9, Width: 9, MineCount: 10}, nil},
		{"zero height", game.GameParams{Height: 0, Width: 9, MineCount: 1}, game.ErrBadDimensions},
		{"negative mines", game.GameParams{Height: 2, Width: 2, MineCount: -1}, game.ErrBadMineCount},
		{"all mined", game.GameParams{Height: 2, Width: 2, MineCount: 4}, game.ErrTooManyMines},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.ErrorIs(t, test.params.Validate(), test.err)
		})
	}
}

func TestNewBoardPlantsExactCount(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	tests := []game.GameParams{
		{Height: 9, Width: 9, MineCount: 10},
		{Height: 16, Width: 16, MineCount: 40},
		{Height: 16, Width: 30, MineCount: 99},
	}
	for _, params := range tests {
		b, err := game.NewBoard(params, rnd)
		require.NoError(t, err)
		assert.Len(t, b.MineCells(), params.MineCount)
		assert.Equal(t, params.Height*params.Width-params.MineCount, b.SafeCellCount())
	}
}

func TestNearbyMines(t *testing.T) {
	// * - *
	// - - -
	// - * -
	b := &game.Board{
		GameParams: game.GameParams{Height: 3, Width: 3, MineCount: 3},
		Mined: []bool{
			true, false, true,
			false, false, false,
			false, true, false,
		},
	}
	tests := []struct {
		cell solver.Cell
		want int
	}{
		{solver.Cell{Row: 1, Col: 1}, 3},
		{solver.Cell{Row: 0, Col: 1}, 2},
		{solver.Cell{Row: 2, Col: 0}, 1},
		{solver.Cell{Row: 2, Col: 2}, 1},
		{solver.Cell{Row: 0, Col: 0}, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, b.NearbyMines(test.cell), "cell %s", test.cell)
	}
}

func TestBoardBytesRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	b, err := game.NewBoard(game.GameParams{Height: 4, Width: 4, MineCount: 5}, rnd)
	require.NoError(t, err)

	buf, err := b.Bytes()
	require.NoError(t, err)
	decoded, err := game.DecodeBoard(buf)
	require.NoError(t, err)

	assert.Equal(t, b, decoded)
}
