package handlers

import (
	"net/http"

	"github.com/mkarrel/botdeck/internal/httpserver/deps"
)

// Activity returns the most recent activity entries, newest first.
func Activity(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.GetActivityEvents())
	}
}
