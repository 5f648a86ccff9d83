package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mkarrel/botdeck/internal/domain"
	"github.com/mkarrel/botdeck/internal/httpserver/deps"
)

func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.GetSettings())
	}
}

// settingsPayload mirrors BotSettings with pointer fields so an omitted key
// is distinguishable from a zero value. All three fields are required.
type settingsPayload struct {
	Prefix        *string              `json:"prefix"`
	StatusMessage *string              `json:"statusMessage"`
	ActivityType  *domain.ActivityType `json:"activityType"`
}

// UpdateSettings validates the full payload and replaces the settings
// wholesale. Unknown fields, missing fields, wrong types and bad enum
// values are all 400s.
func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload settingsPayload
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid settings data")
			return
		}
		if payload.Prefix == nil || payload.StatusMessage == nil || payload.ActivityType == nil {
			writeError(w, http.StatusBadRequest, "Invalid settings data")
			return
		}

		settings := domain.BotSettings{
			Prefix:        *payload.Prefix,
			StatusMessage: *payload.StatusMessage,
			ActivityType:  *payload.ActivityType,
		}
		if err := settings.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated := d.Store.UpdateSettings(settings)

		d.Store.AddActivityEvent(domain.NewActivityEvent{
			Type: domain.EventCommand,
			Description: fmt.Sprintf("Bot settings updated: prefix=%q, activity=%q",
				updated.Prefix, updated.ActivityType),
			Timestamp: time.Now(),
		})

		writeJSON(w, http.StatusOK, updated)
	}
}
