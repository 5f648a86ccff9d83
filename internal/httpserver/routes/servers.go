package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mkarrel/botdeck/internal/httpserver/deps"
	"github.com/mkarrel/botdeck/internal/httpserver/handlers"
)

func init() { Register(registerServers) }

func registerServers(r chi.Router, d deps.Deps) {
	r.Get("/api/servers", handlers.Servers(d))
	r.Get("/api/servers/{id}/channels", handlers.ServerChannels(d))
}
