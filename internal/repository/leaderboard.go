package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type LeaderboardRow struct {
	SolverSessionID int64   `json:"solver_session_id"`
	Username        *string `json:"username"`
	Height          int     `json:"height"`
	Width           int     `json:"width"`
	MineCount       int     `json:"mine_count"`
	MoveCount       int     `json:"move_count"`
	GuessCount      int     `json:"guess_count"`
	PlaytimeMs      float64 `json:"playtime_ms"`
}

type LeaderboardFilter struct {
	Username  *string
	Height    *int
	Width     *int
	MineCount *int
}

func (f LeaderboardFilter) whereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Height != nil {
		clauses = append(clauses, "height = @height")
		args["height"] = *f.Height
	}
	if f.Width != nil {
		clauses = append(clauses, "width = @width")
		args["width"] = *f.Width
	}
	if f.MineCount != nil {
		clauses = append(clauses, "mine_count = @mine_count")
		args["mine_count"] = *f.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

// Leaderboard lists won sessions, the cleanest runs first: fewest
// guesses, then fastest.
func (q *Queries) Leaderboard(
	ctx context.Context, filter LeaderboardFilter,
) ([]LeaderboardRow, error) {
	query := `
	SELECT
		solver_session_id,
		username,
		height,
		width,
		mine_count,
		move_count,
		guess_count,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM solver_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		status = 'won'
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.whereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY guess_count, playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[LeaderboardRow])
}
