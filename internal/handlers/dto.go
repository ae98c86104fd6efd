package handlers

import (
	"net/url"

	"github.com/avyukov/minesolver/internal/autoplay"
	"github.com/avyukov/minesolver/internal/game"
	"github.com/avyukov/minesolver/internal/repository"
	"github.com/avyukov/minesolver/internal/solver"
)

func ParseGameParams(query url.Values) (game.GameParams, error) {
	var params game.GameParams
	if err := dec.Decode(&params, query); err != nil {
		return params, err
	}
	return params, params.Validate()
}

// SolverSessionDTO is what the API reports about a session: the
// solver's knowledge and move history, never the mine layout itself.
type SolverSessionDTO struct {
	SessionID  int64           `json:"session_id"`
	Height     int             `json:"height"`
	Width      int             `json:"width"`
	MineCount  int             `json:"mine_count"`
	Status     string          `json:"status"`
	Moves      []autoplay.Move `json:"moves"`
	MovesMade  []solver.Cell   `json:"moves_made"`
	KnownSafes []solver.Cell   `json:"known_safes"`
	KnownMines []solver.Cell   `json:"known_mines"`
	Sentences  int             `json:"sentences"`
	StartedAt  int64           `json:"started_at"`
	EndedAt    *int64          `json:"ended_at,omitempty"`
}

func NewSolverSessionDTO(
	session *repository.SolverSession, runner *autoplay.Runner,
) SolverSessionDTO {
	dto := SolverSessionDTO{
		SessionID:  session.SolverSessionID,
		Height:     runner.Board.Height,
		Width:      runner.Board.Width,
		MineCount:  runner.Board.MineCount,
		Status:     runner.Status().String(),
		Moves:      runner.Moves,
		MovesMade:  runner.Solver.MovesMade(),
		KnownSafes: runner.Solver.Safes(),
		KnownMines: runner.Solver.Mines(),
		Sentences:  runner.Solver.KnowledgeSize(),
		StartedAt:  session.StartedAt.Time.Unix(),
	}
	if session.EndedAt.Valid {
		endedAt := session.EndedAt.Time.Unix()
		dto.EndedAt = &endedAt
	}
	return dto
}
