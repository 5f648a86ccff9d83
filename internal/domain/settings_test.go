package domain

import "testing"

func TestBotSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings BotSettings
		wantErr  bool
	}{
		{
			name:     "valid settings",
			settings: BotSettings{Prefix: "!", StatusMessage: "hello", ActivityType: ActivityPlaying},
			wantErr:  false,
		},
		{
			name:     "empty status message is allowed",
			settings: BotSettings{Prefix: "?", StatusMessage: "", ActivityType: ActivityWatching},
			wantErr:  false,
		},
		{
			name:     "empty prefix",
			settings: BotSettings{Prefix: "", StatusMessage: "hello", ActivityType: ActivityPlaying},
			wantErr:  true,
		},
		{
			name:     "invalid activity type",
			settings: BotSettings{Prefix: "!", StatusMessage: "hello", ActivityType: "INVALID"},
			wantErr:  true,
		},
		{
			name:     "missing activity type",
			settings: BotSettings{Prefix: "!", StatusMessage: "hello"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	for _, p := range []PresenceStatus{PresenceOnline, PresenceOffline, PresenceIdle, PresenceDnd} {
		if !p.Valid() {
			t.Errorf("PresenceStatus %q should be valid", p)
		}
	}
	if PresenceStatus("busy").Valid() {
		t.Error("PresenceStatus busy should be invalid")
	}

	for _, c := range []ChannelType{ChannelText, ChannelVoice, ChannelCategory, ChannelAnnouncement} {
		if !c.Valid() {
			t.Errorf("ChannelType %q should be valid", c)
		}
	}
	if ChannelType("forum").Valid() {
		t.Error("ChannelType forum should be invalid")
	}

	for _, e := range []EventType{EventCommand, EventJoin, EventLeave, EventError, EventMessage} {
		if !e.Valid() {
			t.Errorf("EventType %q should be valid", e)
		}
	}
	if EventType("warning").Valid() {
		t.Error("EventType warning should be invalid")
	}
}
