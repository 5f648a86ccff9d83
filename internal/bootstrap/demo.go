package bootstrap

import (
	"time"

	"github.com/mkarrel/botdeck/internal/domain"
)

// seedDemo populates the store with the fixed demo dataset used whenever the
// live connection is unavailable.
func (b *Initializer) seedDemo(now time.Time) {
	b.store.SetBotStatus(domain.BotStatus{
		ID:             "123456789012345678",
		Username:       "MyDiscordBot",
		Discriminator:  "0001",
		Avatar:         nil,
		Status:         domain.PresenceOnline,
		LastRestart:    now,
		TotalServers:   5,
		TotalUsers:     1247,
		CommandsToday:  342,
		ActiveChannels: 23,
	})

	servers := demoServers(now)
	b.store.SetServers(servers)
	for _, server := range servers {
		b.store.SetServerChannels(server.ID, demoChannels())
	}

	for _, ev := range demoEvents(now) {
		b.store.AddActivityEvent(ev)
	}
	b.store.AddActivityEvent(domain.NewActivityEvent{
		Type:        domain.EventMessage,
		Description: "Running in demo mode - Connect your Discord bot for live data",
		Timestamp:   now,
	})
}

func demoServers(now time.Time) []domain.Server {
	day := 24 * time.Hour
	return []domain.Server{
		{ID: "1", Name: "Gaming Community", MemberCount: 523, JoinedAt: now.Add(-90 * day), Owner: false},
		{ID: "2", Name: "Developer Hub", MemberCount: 187, JoinedAt: now.Add(-45 * day), Owner: true},
		{ID: "3", Name: "Music Lovers", MemberCount: 342, JoinedAt: now.Add(-120 * day), Owner: false},
		{ID: "4", Name: "Study Group", MemberCount: 95, JoinedAt: now.Add(-30 * day), Owner: false},
		{ID: "5", Name: "Art & Design", MemberCount: 100, JoinedAt: now.Add(-60 * day), Owner: false},
	}
}

// demoChannels returns the three channel templates every demo server gets.
func demoChannels() []domain.Channel {
	return []domain.Channel{
		{
			ID:   "ch1",
			Name: "general",
			Type: domain.ChannelText,
			Permissions: domain.ChannelPermissions{
				CanRead: true, CanWrite: true, CanManage: false,
			},
		},
		{
			ID:   "ch2",
			Name: "announcements",
			Type: domain.ChannelAnnouncement,
			Permissions: domain.ChannelPermissions{
				CanRead: true, CanWrite: false, CanManage: false,
			},
		},
		{
			ID:   "ch3",
			Name: "voice-chat",
			Type: domain.ChannelVoice,
			Permissions: domain.ChannelPermissions{
				CanRead: true, CanWrite: true, CanManage: false,
			},
		},
	}
}

func demoEvents(now time.Time) []domain.NewActivityEvent {
	return []domain.NewActivityEvent{
		{Type: domain.EventCommand, Description: "User @alex used command !help in Gaming Community", Timestamp: now.Add(-5 * time.Minute)},
		{Type: domain.EventJoin, Description: "Bot joined server 'New Server'", Timestamp: now.Add(-30 * time.Minute)},
		{Type: domain.EventCommand, Description: "User @sarah used command !ping in Developer Hub", Timestamp: now.Add(-45 * time.Minute)},
		{Type: domain.EventMessage, Description: "Bot status updated successfully", Timestamp: now.Add(-time.Hour)},
		{Type: domain.EventCommand, Description: "User @mike used command !serverinfo in Music Lovers", Timestamp: now.Add(-90 * time.Minute)},
		{Type: domain.EventCommand, Description: "User @emma used command !poll in Gaming Community", Timestamp: now.Add(-2 * time.Hour)},
		{Type: domain.EventLeave, Description: "Bot left server 'Inactive Server'", Timestamp: now.Add(-3 * time.Hour)},
		{Type: domain.EventCommand, Description: "User @john used command !meme in Developer Hub", Timestamp: now.Add(-4 * time.Hour)},
	}
}
