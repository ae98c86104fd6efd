package autoplay

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"

	"github.com/avyukov/minesolver/internal/game"
	"github.com/avyukov/minesolver/internal/solver"
)

type Status int

const (
	Playing Status = iota
	Won
	Lost
	Stuck
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

type Move struct {
	Cell  solver.Cell `json:"cell"`
	Guess bool        `json:"guess"`
	Mined bool        `json:"mined"`
}

/*
Runner drives a Solver against a Board: each step it plays a certain
safe move when the solver has one, otherwise the solver's least-risky
guess, and feeds the resulting observation back.
*/
type Runner struct {
	Board  *game.Board
	Solver *solver.Solver
	Moves  []Move
	status Status
}

func New(board *game.Board, rnd *rand.Rand) *Runner {
	return &Runner{
		Board:  board,
		Solver: solver.New(board.Height, board.Width, rnd),
	}
}

func (r *Runner) Status() Status {
	return r.status
}

func (r *Runner) GuessCount() (count int) {
	for _, m := range r.Moves {
		if m.Guess {
			count++
		}
	}
	return
}

// Step plays one move. It returns false when the game is over or the
// solver has no move left to make (in which case the runner is Stuck,
// a genuinely ambiguous position).
func (r *Runner) Step() (Move, bool) {
	if r.status != Playing {
		return Move{}, false
	}

	cell, ok := r.Solver.SafeMove()
	guess := false
	if !ok {
		cell, ok = r.Solver.RandomMove(r.Board.MineCount)
		guess = true
	}
	if !ok {
		r.status = Stuck
		return Move{}, false
	}

	move := Move{Cell: cell, Guess: guess, Mined: r.Board.MineAt(cell)}
	r.Moves = append(r.Moves, move)

	if move.Mined {
		r.status = Lost
		return move, true
	}

	r.Solver.AddKnowledge(cell, r.Board.NearbyMines(cell))
	if len(r.Solver.MovesMade()) == r.Board.SafeCellCount() {
		r.status = Won
	}
	return move, true
}

// Run plays to completion and returns the final status.
func (r *Runner) Run() Status {
	for r.status == Playing {
		if _, ok := r.Step(); !ok {
			break
		}
	}
	return r.status
}

// State is the gob-friendly form of a Runner for persistence.
type State struct {
	Board  *game.Board
	Solver solver.Snapshot
	Moves  []Move
	Status Status
}

func (r *Runner) State() State {
	return State{
		Board:  r.Board,
		Solver: r.Solver.Snapshot(),
		Moves:  r.Moves,
		Status: r.status,
	}
}

func (r *Runner) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r.State()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Restore(state State, rnd *rand.Rand) *Runner {
	return &Runner{
		Board:  state.Board,
		Solver: solver.FromSnapshot(state.Solver, rnd),
		Moves:  state.Moves,
		status: state.Status,
	}
}

func DecodeState(buf []byte) (State, error) {
	var state State
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&state)
	return state, err
}
