package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/avyukov/minesolver/internal/config"
	"github.com/avyukov/minesolver/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes(cookies *config.Cookies, jwt *config.JWT) {
	auth := handlers.NewAuth(a.logger, a.db, cookies, jwt)

	a.router.HandleFunc("POST /v1/register", auth.Register)
	a.router.HandleFunc("POST /v1/login", auth.Login)
	a.router.HandleFunc("POST /v1/logout", auth.Logout)
	a.router.HandleFunc("GET /v1/status", auth.Status)

	sessions := handlers.NewSessions(
		a.logger, a.db, config.NewWebSocket(), createRand(),
	)

	a.router.HandleFunc("POST /v1/game", sessions.Create)
	a.router.HandleFunc("GET /v1/game/{id}", sessions.Fetch)
	a.router.HandleFunc("POST /v1/game/{id}/step", sessions.Step)
	a.router.HandleFunc("POST /v1/game/{id}/solve", sessions.Solve)
	a.router.HandleFunc("GET /v1/leaderboard", sessions.Leaderboard)

	a.router.HandleFunc("/v1/game/{id}/connect", sessions.Connect)
}
