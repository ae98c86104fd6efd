package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avyukov/minesolver/internal/autoplay"
	"github.com/avyukov/minesolver/internal/config"
	"github.com/avyukov/minesolver/internal/game"
	"github.com/avyukov/minesolver/internal/middleware"
	"github.com/avyukov/minesolver/internal/repository"
)

type Sessions struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewSessions(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Sessions {
	return &Sessions{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

// Create starts a new solver session: lays out a board from the
// query parameters and stores it alongside a fresh solver.
func (h Sessions) Create(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	board, err := game.NewBoard(params, h.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to generate a board", "error", err)
		return
	}
	runner := autoplay.New(board, h.rnd)

	state, err := runner.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to encode session state", "error", err)
		return
	}

	var playerId *int64
	if claims, ok := middleware.PlayerClaims(r); ok {
		playerId = &claims.PlayerId
	}

	session, err := h.repo.CreateSolverSession(
		r.Context(), repository.CreateSolverSessionParams{
			PlayerID:  playerId,
			Height:    params.Height,
			Width:     params.Width,
			MineCount: params.MineCount,
			Status:    runner.Status().String(),
			State:     state,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create solver session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewSolverSessionDTO(session, runner))
}

func (h Sessions) Fetch(w http.ResponseWriter, r *http.Request) {
	session, runner, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.logger, NewSolverSessionDTO(session, runner))
}

// Step plays a single solver move and persists the result.
func (h Sessions) Step(w http.ResponseWriter, r *http.Request) {
	session, runner, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	runner.Step()

	session, err := h.saveSession(r.Context(), session, runner)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update solver session", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, NewSolverSessionDTO(session, runner))
}

// Solve runs the solver to completion and persists the result.
func (h Sessions) Solve(w http.ResponseWriter, r *http.Request) {
	session, runner, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	runner.Run()

	session, err := h.saveSession(r.Context(), session, runner)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update solver session", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, NewSolverSessionDTO(session, runner))
}

func (h Sessions) Leaderboard(w http.ResponseWriter, r *http.Request) {
	var filter repository.LeaderboardFilter
	query := r.URL.Query()
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	parseInt := func(name string) (*int, bool) {
		raw := query.Get(name)
		if raw == "" {
			return nil, true
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false
		}
		return &value, true
	}
	var ok bool
	if filter.Height, ok = parseInt("height"); !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if filter.Width, ok = parseInt("width"); !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if filter.MineCount, ok = parseInt("mine_count"); !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rows, err := h.repo.Leaderboard(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch leaderboard", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, rows)
}

func (h Sessions) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.SolverSession, *autoplay.Runner, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := h.repo.FetchSolverSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	state, err := autoplay.DecodeState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid solver_session.state", "error", err)
		return nil, nil, false
	}

	return session, autoplay.Restore(state, h.rnd), true
}

func (h Sessions) saveSession(
	ctx context.Context, session *repository.SolverSession, runner *autoplay.Runner,
) (*repository.SolverSession, error) {
	state, err := runner.Bytes()
	if err != nil {
		return nil, err
	}

	var (
		status     = runner.Status().String()
		moveCount  = len(runner.Moves)
		guessCount = runner.GuessCount()
	)
	params := repository.UpdateSolverSessionParams{
		Status:     &status,
		MoveCount:  &moveCount,
		GuessCount: &guessCount,
		State:      &state,
	}
	if runner.Status() != autoplay.Playing && !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	return h.repo.UpdateSolverSession(ctx, session.SolverSessionID, params)
}
