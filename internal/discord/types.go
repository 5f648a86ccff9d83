package discord

import (
	"fmt"
	"time"
)

// User is the bot account as reported by the gateway READY event.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

// Guild is one entry of the bot's guild list.
type Guild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Owner       bool   `json:"owner"` // current user owns the guild
	MemberCount int    `json:"approximate_member_count"`

	// JoinedAt is filled from the guild-member endpoint; zero when the
	// lookup failed.
	JoinedAt time.Time `json:"-"`
}

// GuildChannel is a raw channel record from the REST API.
type GuildChannel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    int    `json:"type"`
	GuildID string `json:"guild_id"`
}

// Channel type tags used by the platform API.
const (
	ChannelTypeGuildText         = 0
	ChannelTypeGuildVoice        = 2
	ChannelTypeGuildCategory     = 4
	ChannelTypeGuildAnnouncement = 5
)

// AvatarURL returns the CDN URL for a user avatar, or "" when unset.
func AvatarURL(userID, avatar string) string {
	if avatar == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", userID, avatar)
}

// IconURL returns the CDN URL for a guild icon, or "" when unset.
func IconURL(guildID, icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/icons/%s/%s.png", guildID, icon)
}
