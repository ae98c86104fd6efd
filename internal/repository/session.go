package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SolverSession is one persisted solver run: the board it plays
// against and the accumulated knowledge, gob-encoded in State.
type SolverSession struct {
	SolverSessionID int64
	PlayerID        *int64
	Height          int
	Width           int
	MineCount       int
	Status          string
	MoveCount       int
	GuessCount      int
	State           []byte
	StartedAt       pgtype.Timestamptz
	EndedAt         pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type CreateSolverSessionParams struct {
	PlayerID  *int64
	Height    int
	Width     int
	MineCount int
	Status    string
	State     []byte
}

func (q *Queries) CreateSolverSession(
	ctx context.Context, params CreateSolverSessionParams,
) (*SolverSession, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solver_session (
			player_id, height, width, mine_count, status, state
		)
		VALUES (
			@player_id, @height, @width, @mine_count, @status, @state
		)
		RETURNING *;`,
		pgx.NamedArgs{
			"player_id":  params.PlayerID,
			"height":     params.Height,
			"width":      params.Width,
			"mine_count": params.MineCount,
			"status":     params.Status,
			"state":      params.State,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolverSession])
}

func (q *Queries) FetchSolverSession(ctx context.Context, sessionId int64) (*SolverSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM solver_session WHERE solver_session_id = $1",
		sessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolverSession])
}

type UpdateSolverSessionParams struct {
	Status     *string
	MoveCount  *int
	GuessCount *int
	State      *[]byte
	EndedAt    *time.Time
}

func (p UpdateSolverSessionParams) setClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0)
	args := pgx.NamedArgs{}

	if p.Status != nil {
		parts = append(parts, "status = @status")
		args["status"] = *p.Status
	}
	if p.MoveCount != nil {
		parts = append(parts, "move_count = @move_count")
		args["move_count"] = *p.MoveCount
	}
	if p.GuessCount != nil {
		parts = append(parts, "guess_count = @guess_count")
		args["guess_count"] = *p.GuessCount
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateSolverSession(
	ctx context.Context, sessionId int64, params UpdateSolverSessionParams,
) (*SolverSession, error) {
	setClause, args := params.setClause()
	args["solver_session_id"] = sessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE solver_session SET "+setClause+
			" WHERE solver_session_id = @solver_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolverSession])
}
