package domain

import "time"

// Server is a guild the bot is a member of.
type Server struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        *string   `json:"icon"` // CDN URL, nil when the guild has no icon
	MemberCount int       `json:"memberCount"`
	JoinedAt    time.Time `json:"joinedAt"`
	Owner       bool      `json:"owner"` // true when the bot owns the guild
}

// ChannelType is the closed set of channel kinds the dashboard displays.
// Anything else coming from the platform is dropped during mapping.
type ChannelType string

const (
	ChannelText         ChannelType = "text"
	ChannelVoice        ChannelType = "voice"
	ChannelCategory     ChannelType = "category"
	ChannelAnnouncement ChannelType = "announcement"
)

func (c ChannelType) Valid() bool {
	switch c {
	case ChannelText, ChannelVoice, ChannelCategory, ChannelAnnouncement:
		return true
	}
	return false
}

type ChannelPermissions struct {
	CanRead   bool `json:"canRead"`
	CanWrite  bool `json:"canWrite"`
	CanManage bool `json:"canManage"`
}

type Channel struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        ChannelType        `json:"type"`
	Permissions ChannelPermissions `json:"permissions"`
}
