package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// session is the live Session implementation backed by an open gateway
// connection plus REST reads.
type session struct {
	client *Client
	conn   *websocket.Conn
	user   User
}

func (s *session) Me() User { return s.user }

// Guilds lists the bot's guilds with approximate member counts. The join
// timestamp comes from a per-guild member lookup; a failed lookup leaves it
// zero rather than failing the snapshot.
func (s *session) Guilds(ctx context.Context) ([]Guild, error) {
	var guilds []Guild
	if err := s.client.get(ctx, "/users/@me/guilds?with_counts=true", &guilds); err != nil {
		return nil, fmt.Errorf("list guilds: %w", err)
	}

	for i := range guilds {
		var member struct {
			JoinedAt time.Time `json:"joined_at"`
		}
		path := fmt.Sprintf("/users/@me/guilds/%s/member", guilds[i].ID)
		if err := s.client.get(ctx, path, &member); err != nil {
			s.client.log.Debugf("member lookup for guild %s failed: %v", guilds[i].ID, err)
			continue
		}
		guilds[i].JoinedAt = member.JoinedAt
	}
	return guilds, nil
}

func (s *session) GuildChannels(ctx context.Context, guildID string) ([]GuildChannel, error) {
	var channels []GuildChannel
	path := fmt.Sprintf("/guilds/%s/channels", guildID)
	if err := s.client.get(ctx, path, &channels); err != nil {
		return nil, fmt.Errorf("list channels for guild %s: %w", guildID, err)
	}
	return channels, nil
}

func (s *session) Close() error {
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
		time.Now().Add(500*time.Millisecond))
	return s.conn.Close()
}
