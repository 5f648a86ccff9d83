package domain

import "time"

// EventType tags an activity log entry.
type EventType string

const (
	EventCommand EventType = "command"
	EventJoin    EventType = "join"
	EventLeave   EventType = "leave"
	EventError   EventType = "error"
	EventMessage EventType = "message"
)

func (e EventType) Valid() bool {
	switch e {
	case EventCommand, EventJoin, EventLeave, EventError, EventMessage:
		return true
	}
	return false
}

// ActivityEvent is one entry of the bounded activity log. ID is assigned by
// the store when the event is appended.
type ActivityEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	ServerID    string    `json:"serverId,omitempty"`
	ServerName  string    `json:"serverName,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	Username    string    `json:"username,omitempty"`
}

// NewActivityEvent is an ActivityEvent before the store assigns it an id.
type NewActivityEvent struct {
	Type        EventType
	Description string
	Timestamp   time.Time
	ServerID    string
	ServerName  string
	UserID      string
	Username    string
}
