package bootstrap

import (
	"time"

	"github.com/mkarrel/botdeck/internal/discord"
	"github.com/mkarrel/botdeck/internal/domain"
)

func mapStatus(me discord.User, guilds []discord.Guild, activeChannels int, now time.Time) domain.BotStatus {
	totalUsers := 0
	for _, g := range guilds {
		totalUsers += g.MemberCount
	}

	var avatar *string
	if url := discord.AvatarURL(me.ID, me.Avatar); url != "" {
		avatar = &url
	}

	return domain.BotStatus{
		ID:             me.ID,
		Username:       me.Username,
		Discriminator:  me.Discriminator,
		Avatar:         avatar,
		Status:         domain.PresenceOnline,
		Uptime:         0, // recomputed by the store on every read
		LastRestart:    now,
		TotalServers:   len(guilds),
		TotalUsers:     totalUsers,
		CommandsToday:  0,
		ActiveChannels: activeChannels,
	}
}

func mapServer(g discord.Guild, now time.Time) domain.Server {
	var icon *string
	if url := discord.IconURL(g.ID, g.Icon); url != "" {
		icon = &url
	}

	joinedAt := g.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = now
	}

	return domain.Server{
		ID:          g.ID,
		Name:        g.Name,
		Icon:        icon,
		MemberCount: g.MemberCount,
		JoinedAt:    joinedAt,
		Owner:       g.Owner,
	}
}

// mapChannels converts raw platform channels, dropping every kind outside the
// four the dashboard recognizes.
func mapChannels(raw []discord.GuildChannel) []domain.Channel {
	channels := make([]domain.Channel, 0, len(raw))
	for _, ch := range raw {
		kind, ok := mapChannelType(ch.Type)
		if !ok {
			continue
		}
		channels = append(channels, domain.Channel{
			ID:   ch.ID,
			Name: ch.Name,
			Type: kind,
			Permissions: domain.ChannelPermissions{
				CanRead:   true,
				CanWrite:  true,
				CanManage: false,
			},
		})
	}
	return channels
}

func mapChannelType(t int) (domain.ChannelType, bool) {
	switch t {
	case discord.ChannelTypeGuildText:
		return domain.ChannelText, true
	case discord.ChannelTypeGuildVoice:
		return domain.ChannelVoice, true
	case discord.ChannelTypeGuildCategory:
		return domain.ChannelCategory, true
	case discord.ChannelTypeGuildAnnouncement:
		return domain.ChannelAnnouncement, true
	}
	return "", false
}
