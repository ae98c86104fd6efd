package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/avyukov/minesolver/internal/autoplay"
	"github.com/avyukov/minesolver/internal/repository"
)

type wsCommand string

const (
	wsGet   wsCommand = "g"
	wsStep  wsCommand = "s"
	wsSolve wsCommand = "a"
)

// Connect upgrades to a websocket and drives the session
// interactively. Each text message holds newline-separated commands:
//
//	g // report current state
//	s // play one solver move
//	a // autoplay to completion
//
// The session state is saved and reported back after every message.
func (h Sessions) Connect(w http.ResponseWriter, r *http.Request) {
	session, runner, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	if err := h.runWsLoop(r.Context(), conn, session, runner); err != nil &&
		!websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		h.logger.Warn("ws session closed", "error", err)
	}
}

func (h Sessions) runWsLoop(
	ctx context.Context,
	conn *websocket.Conn,
	session *repository.SolverSession,
	runner *autoplay.Runner,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			if err := execute(runner, strings.TrimSpace(line)); err != nil {
				return err
			}
			if runner.Status() != autoplay.Playing {
				break
			}
		}

		session, err = h.saveSession(ctx, session, runner)
		if err != nil {
			return fmt.Errorf("unable to update session in db: %w", err)
		}

		if err := conn.WriteJSON(NewSolverSessionDTO(session, runner)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func execute(runner *autoplay.Runner, line string) error {
	switch wsCommand(line) {
	case wsGet:
		return nil
	case wsStep:
		runner.Step()
		return nil
	case wsSolve:
		runner.Run()
		return nil
	default:
		return fmt.Errorf("unknown command %q", line)
	}
}
