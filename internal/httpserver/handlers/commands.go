package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkarrel/botdeck/internal/domain"
	"github.com/mkarrel/botdeck/internal/httpserver/deps"
)

func Commands(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.GetCommands())
	}
}

type togglePayload struct {
	Enabled *bool `json:"enabled"`
}

// ToggleCommand flips a command's enabled flag and records the change in the
// activity log.
func ToggleCommand(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var payload togglePayload
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&payload); err != nil || payload.Enabled == nil {
			writeError(w, http.StatusBadRequest, "enabled must be a boolean")
			return
		}

		updated, ok := d.Store.UpdateCommand(id, domain.CommandUpdate{Enabled: payload.Enabled})
		if !ok {
			writeError(w, http.StatusNotFound, "Command not found")
			return
		}

		verb := "enabled"
		if !updated.Enabled {
			verb = "disabled"
		}
		d.Store.AddActivityEvent(domain.NewActivityEvent{
			Type:        domain.EventCommand,
			Description: fmt.Sprintf("Command %q %s", updated.Name, verb),
			Timestamp:   time.Now(),
		})

		writeJSON(w, http.StatusOK, updated)
	}
}
