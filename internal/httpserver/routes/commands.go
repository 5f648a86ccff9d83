package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mkarrel/botdeck/internal/httpserver/deps"
	"github.com/mkarrel/botdeck/internal/httpserver/handlers"
	"github.com/mkarrel/botdeck/internal/httpserver/mw"
)

func init() { Register(registerCommands) }

func registerCommands(r chi.Router, d deps.Deps) {
	r.Get("/api/commands", handlers.Commands(d))
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})).Patch("/api/commands/{id}", handlers.ToggleCommand(d))
}
