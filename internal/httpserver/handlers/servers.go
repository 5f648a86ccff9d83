package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkarrel/botdeck/internal/httpserver/deps"
)

func Servers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.GetServers())
	}
}

// ServerChannels lists the channels of one server. An id the store has never
// seen yields an empty list, not a 404.
func ServerChannels(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID := chi.URLParam(r, "id")
		writeJSON(w, http.StatusOK, d.Store.GetServerChannels(serverID))
	}
}
