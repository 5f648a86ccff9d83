package handlers

import (
	"net/http"

	"github.com/mkarrel/botdeck/internal/httpserver/deps"
)

// BotStatus serves the bot identity and counters. Until the bootstrap has
// populated the store it answers 503 so the frontend can keep polling.
func BotStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, ok := d.Store.GetBotStatus()
		if !ok {
			writeError(w, http.StatusServiceUnavailable, "Bot status not available yet")
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}
