package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarrel/botdeck/internal/domain"
	"github.com/mkarrel/botdeck/internal/httpserver/deps"
	"github.com/mkarrel/botdeck/internal/httpserver/routes"
	"github.com/mkarrel/botdeck/internal/logger"
	"github.com/mkarrel/botdeck/internal/store/memory"
)

func newRouter(store *memory.Store) http.Handler {
	r := chi.NewRouter()
	routes.RegisterAll(r, deps.Deps{
		Logger:          logger.Nop(),
		StartTime:       time.Now(),
		Store:           store,
		Ready:           func() bool { return true },
		RateLimitBurst:  100,
		RateLimitPerMin: 600,
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestBotStatusUnavailableBeforeBootstrap(t *testing.T) {
	h := newRouter(memory.NewStore())

	rec := do(t, h, http.MethodGet, "/api/bot/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]string
	decode(t, rec, &resp)
	assert.Contains(t, resp["error"], "not available")
}

func TestBotStatus(t *testing.T) {
	store := memory.NewStore()
	store.SetBotStatus(domain.BotStatus{
		ID:       "42",
		Username: "deckbot",
		Status:   domain.PresenceOnline,
	})
	h := newRouter(store)

	rec := do(t, h, http.MethodGet, "/api/bot/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status domain.BotStatus
	decode(t, rec, &status)
	assert.Equal(t, "deckbot", status.Username)
	assert.GreaterOrEqual(t, status.Uptime, int64(0))
}

func TestServersAndChannels(t *testing.T) {
	store := memory.NewStore()
	store.SetServers([]domain.Server{{ID: "g1", Name: "Guild One", MemberCount: 10}})
	store.SetServerChannels("g1", []domain.Channel{
		{ID: "c1", Name: "general", Type: domain.ChannelText},
	})
	h := newRouter(store)

	rec := do(t, h, http.MethodGet, "/api/servers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var servers []domain.Server
	decode(t, rec, &servers)
	require.Len(t, servers, 1)
	assert.Equal(t, "Guild One", servers[0].Name)

	rec = do(t, h, http.MethodGet, "/api/servers/g1/channels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var channels []domain.Channel
	decode(t, rec, &channels)
	require.Len(t, channels, 1)

	// Unknown server id yields an empty list, not an error.
	rec = do(t, h, http.MethodGet, "/api/servers/nope/channels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &channels)
	assert.Empty(t, channels)
}

func TestToggleCommandEndToEnd(t *testing.T) {
	store := memory.NewStore()
	store.SetCommands([]domain.Command{
		{ID: "cmd-help", Name: "help", Description: "Shows all available commands", Category: "Utility", UsageCount: 127, Enabled: true},
	})
	h := newRouter(store)

	rec := do(t, h, http.MethodPatch, "/api/commands/cmd-help", `{"enabled": false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Command
	decode(t, rec, &updated)
	assert.False(t, updated.Enabled)
	assert.Equal(t, 127, updated.UsageCount, "toggle must not touch the usage count")

	rec = do(t, h, http.MethodGet, "/api/activity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var events []domain.ActivityEvent
	decode(t, rec, &events)
	require.NotEmpty(t, events)
	assert.Equal(t, domain.EventCommand, events[0].Type)
	assert.Contains(t, events[0].Description, "help")
	assert.Contains(t, events[0].Description, "disabled")

	rec = do(t, h, http.MethodGet, "/api/commands", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var commands []domain.Command
	decode(t, rec, &commands)
	require.Len(t, commands, 1)
	assert.False(t, commands[0].Enabled)
	assert.Equal(t, 127, commands[0].UsageCount)
}

func TestToggleCommandRejectsBadInput(t *testing.T) {
	store := memory.NewStore()
	store.SetCommands([]domain.Command{{ID: "cmd-1", Name: "ping", Enabled: true}})
	h := newRouter(store)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "non-boolean enabled", path: "/api/commands/cmd-1", body: `{"enabled": "yes"}`, want: http.StatusBadRequest},
		{name: "missing enabled", path: "/api/commands/cmd-1", body: `{}`, want: http.StatusBadRequest},
		{name: "unknown field", path: "/api/commands/cmd-1", body: `{"enabled": true, "name": "hack"}`, want: http.StatusBadRequest},
		{name: "unknown id", path: "/api/commands/ghost", body: `{"enabled": true}`, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPatch, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	// Nothing changed and no activity was recorded.
	rec := do(t, h, http.MethodGet, "/api/commands", "")
	var commands []domain.Command
	decode(t, rec, &commands)
	assert.True(t, commands[0].Enabled)

	rec = do(t, h, http.MethodGet, "/api/activity", "")
	var events []domain.ActivityEvent
	decode(t, rec, &events)
	assert.Empty(t, events)
}

func TestSettingsRoundTrip(t *testing.T) {
	store := memory.NewStore()
	h := newRouter(store)

	rec := do(t, h, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var settings domain.BotSettings
	decode(t, rec, &settings)
	assert.Equal(t, "!", settings.Prefix)

	rec = do(t, h, http.MethodPut, "/api/settings",
		`{"prefix": "?", "statusMessage": "hi", "activityType": "WATCHING"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &settings)
	assert.Equal(t, "?", settings.Prefix)
	assert.Equal(t, "hi", settings.StatusMessage)
	assert.Equal(t, domain.ActivityWatching, settings.ActivityType)

	rec = do(t, h, http.MethodGet, "/api/settings", "")
	decode(t, rec, &settings)
	assert.Equal(t, domain.BotSettings{Prefix: "?", StatusMessage: "hi", ActivityType: domain.ActivityWatching}, settings)

	// The update shows up in the activity log.
	rec = do(t, h, http.MethodGet, "/api/activity", "")
	var events []domain.ActivityEvent
	decode(t, rec, &events)
	require.NotEmpty(t, events)
	assert.Contains(t, events[0].Description, `prefix="?"`)
}

func TestSettingsValidation(t *testing.T) {
	store := memory.NewStore()
	h := newRouter(store)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid activity type", body: `{"prefix": "!", "statusMessage": "x", "activityType": "INVALID"}`},
		{name: "wrong type", body: `{"prefix": 5, "statusMessage": "x", "activityType": "PLAYING"}`},
		{name: "unknown field", body: `{"prefix": "!", "statusMessage": "x", "activityType": "PLAYING", "extra": 1}`},
		{name: "empty prefix", body: `{"prefix": "", "statusMessage": "x", "activityType": "PLAYING"}`},
		{name: "missing prefix", body: `{"statusMessage": "x", "activityType": "PLAYING"}`},
		{name: "missing status message", body: `{"prefix": "?", "activityType": "WATCHING"}`},
		{name: "missing activity type", body: `{"prefix": "!", "statusMessage": "x"}`},
		{name: "not json", body: `prefix=!`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPut, "/api/settings", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// Settings must be untouched after every rejection.
	rec := do(t, h, http.MethodGet, "/api/settings", "")
	var settings domain.BotSettings
	decode(t, rec, &settings)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestInfraEndpoints(t *testing.T) {
	h := newRouter(memory.NewStore())

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	decode(t, rec, &health)
	assert.Equal(t, "ok", health["status"])

	rec = do(t, h, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
