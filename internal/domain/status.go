package domain

import "time"

// PresenceStatus is the bot's presence as reported by the platform.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceOffline PresenceStatus = "offline"
	PresenceIdle    PresenceStatus = "idle"
	PresenceDnd     PresenceStatus = "dnd"
)

func (p PresenceStatus) Valid() bool {
	switch p {
	case PresenceOnline, PresenceOffline, PresenceIdle, PresenceDnd:
		return true
	}
	return false
}

// BotStatus is the dashboard's view of the bot identity and aggregate counters.
// Uptime is recomputed from the process start at read time, never stored.
type BotStatus struct {
	ID             string         `json:"id"`
	Username       string         `json:"username"`
	Discriminator  string         `json:"discriminator"`
	Avatar         *string        `json:"avatar"`
	Status         PresenceStatus `json:"status"`
	Uptime         int64          `json:"uptime"` // seconds
	LastRestart    time.Time      `json:"lastRestart"`
	TotalServers   int            `json:"totalServers"`
	TotalUsers     int            `json:"totalUsers"`
	CommandsToday  int            `json:"commandsToday"`
	ActiveChannels int            `json:"activeChannels"`
}
