package autoplay_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avyukov/minesolver/internal/autoplay"
	"github.com/avyukov/minesolver/internal/game"
	"github.com/avyukov/minesolver/internal/solver"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRunMineFreeBoard(t *testing.T) {
	board, err := game.NewBoard(game.GameParams{Height: 4, Width: 4, MineCount: 0}, testRand())
	require.NoError(t, err)

	r := autoplay.New(board, testRand())
	status := r.Run()

	assert.Equal(t, autoplay.Won, status)
	assert.Len(t, r.Solver.MovesMade(), 16)
	// the first move is always a guess, everything after follows
	// from the zero counts
	assert.Equal(t, 1, r.GuessCount())
}

func TestRunDeducedCorner(t *testing.T) {
	// - - -
	// - - -
	// - - *
	board := &game.Board{
		GameParams: game.GameParams{Height: 3, Width: 3, MineCount: 1},
		Mined: []bool{
			false, false, false,
			false, false, false,
			false, false, true,
		},
	}

	r := autoplay.New(board, testRand())
	// feed the opposite corner so the whole game resolves by deduction
	// regardless of what the rng would have guessed first
	r.Solver.AddKnowledge(solver.Cell{Row: 0, Col: 0}, board.NearbyMines(solver.Cell{Row: 0, Col: 0}))
	status := r.Run()

	assert.Equal(t, autoplay.Won, status)
	assert.Equal(t, []solver.Cell{{Row: 2, Col: 2}}, r.Solver.Mines())
	for _, m := range r.Moves {
		assert.False(t, m.Mined)
	}
}

func TestStepAfterGameOver(t *testing.T) {
	board, err := game.NewBoard(game.GameParams{Height: 2, Width: 2, MineCount: 0}, testRand())
	require.NoError(t, err)

	r := autoplay.New(board, testRand())
	require.Equal(t, autoplay.Won, r.Run())

	_, ok := r.Step()
	assert.False(t, ok)
}

func TestLostOnForcedMine(t *testing.T) {
	// every cell but one is mined, so the first guess usually dies;
	// retry boards until it does to exercise the losing path
	board := &game.Board{
		GameParams: game.GameParams{Height: 1, Width: 2, MineCount: 1},
		Mined:      []bool{true, false},
	}
	lost := false
	for seed := range uint64(20) {
		r := autoplay.New(board, rand.New(rand.NewPCG(seed, seed)))
		if r.Run() == autoplay.Lost {
			lost = true
			last := r.Moves[len(r.Moves)-1]
			assert.True(t, last.Mined)
			assert.True(t, last.Guess)
			break
		}
	}
	assert.True(t, lost, "no seed in range ever guessed the mine")
}

func TestStateRoundTrip(t *testing.T) {
	board, err := game.NewBoard(game.GameParams{Height: 4, Width: 4, MineCount: 3}, testRand())
	require.NoError(t, err)

	r := autoplay.New(board, testRand())
	r.Step()
	r.Step()

	buf, err := r.Bytes()
	require.NoError(t, err)
	state, err := autoplay.DecodeState(buf)
	require.NoError(t, err)

	restored := autoplay.Restore(state, testRand())
	assert.Equal(t, r.Status(), restored.Status())
	assert.Equal(t, r.Moves, restored.Moves)
	assert.Equal(t, r.Board, restored.Board)
	assert.Equal(t, r.Solver.Safes(), restored.Solver.Safes())
	assert.Equal(t, r.Solver.Mines(), restored.Solver.Mines())
}
