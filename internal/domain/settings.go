package domain

import "fmt"

// ActivityType is the presence activity verb shown next to the status message.
type ActivityType string

const (
	ActivityPlaying   ActivityType = "PLAYING"
	ActivityStreaming ActivityType = "STREAMING"
	ActivityListening ActivityType = "LISTENING"
	ActivityWatching  ActivityType = "WATCHING"
	ActivityCompeting ActivityType = "COMPETING"
)

func (a ActivityType) Valid() bool {
	switch a {
	case ActivityPlaying, ActivityStreaming, ActivityListening, ActivityWatching, ActivityCompeting:
		return true
	}
	return false
}

// BotSettings is the single live settings record. Updates replace it
// wholesale; there is no partial merge.
type BotSettings struct {
	Prefix        string       `json:"prefix"`
	StatusMessage string       `json:"statusMessage"`
	ActivityType  ActivityType `json:"activityType"`
}

// DefaultSettings returns the settings the store starts with.
func DefaultSettings() BotSettings {
	return BotSettings{
		Prefix:        "!",
		StatusMessage: "Use !help for commands",
		ActivityType:  ActivityPlaying,
	}
}

// Validate checks the settings payload against the schema.
func (s BotSettings) Validate() error {
	if s.Prefix == "" {
		return fmt.Errorf("prefix must not be empty")
	}
	if !s.ActivityType.Valid() {
		return fmt.Errorf("activityType %q is not one of PLAYING, STREAMING, LISTENING, WATCHING, COMPETING", s.ActivityType)
	}
	return nil
}
