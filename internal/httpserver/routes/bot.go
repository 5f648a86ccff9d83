package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mkarrel/botdeck/internal/httpserver/deps"
	"github.com/mkarrel/botdeck/internal/httpserver/handlers"
)

func init() { Register(registerBot) }

func registerBot(r chi.Router, d deps.Deps) {
	r.Get("/api/bot/status", handlers.BotStatus(d))
}
