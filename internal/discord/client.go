// Package discord is a one-shot snapshot client for the Discord API: a
// gateway handshake to establish the bot identity, then plain REST reads
// for guilds and channels. It holds no long-lived gateway session.
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mkarrel/botdeck/internal/logger"
)

const defaultAPIBase = "https://discord.com/api/v10"

// Gateway intents requested during identify.
const (
	intentGuilds        = 1 << 0
	intentGuildMembers  = 1 << 1
	intentGuildMessages = 1 << 9
)

var (
	// ErrMissingToken means no bot token was configured.
	ErrMissingToken = errors.New("discord: bot token not configured")
	// ErrUnauthorized means the platform rejected the token.
	ErrUnauthorized = errors.New("discord: token rejected")
)

// Connector is the contract the bootstrap depends on. *Client implements it;
// tests substitute fakes.
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}

// Session is an established connection snapshot handle.
type Session interface {
	Me() User
	Guilds(ctx context.Context) ([]Guild, error)
	GuildChannels(ctx context.Context, guildID string) ([]GuildChannel, error)
	Close() error
}

// Client connects to Discord with a bot token.
type Client struct {
	token      string
	apiBase    string
	gatewayURL string // discovered via /gateway/bot unless preset (tests)
	httpc      *http.Client
	dialer     *websocket.Dialer
	log        logger.Logger
}

func NewClient(token string, log logger.Logger) *Client {
	return &Client{
		token:   token,
		apiBase: defaultAPIBase,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		dialer:  websocket.DefaultDialer,
		log:     log,
	}
}

// Connect performs the gateway handshake (hello, identify, ready) and returns
// a session handle. The whole attempt is bounded by ctx; there is no retry.
func (c *Client) Connect(ctx context.Context) (Session, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	gatewayURL := c.gatewayURL
	if gatewayURL == "" {
		var gw struct {
			URL string `json:"url"`
		}
		if err := c.get(ctx, "/gateway/bot", &gw); err != nil {
			return nil, fmt.Errorf("gateway discovery: %w", err)
		}
		gatewayURL = gw.URL + "?v=10&encoding=json"
	}

	c.log.Debugf("dialing gateway %s", gatewayURL)
	conn, resp, err := c.dialer.DialContext(ctx, gatewayURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("gateway dial: %w", err)
	}

	user, err := c.handshake(ctx, conn)
	if err != nil {
		closeConn(conn)
		return nil, err
	}

	c.log.Infof("gateway ready as %s#%s", user.Username, user.Discriminator)
	return &session{client: c, conn: conn, user: user}, nil
}

type gatewayPayload struct {
	Op int             `json:"op"`
	T  string          `json:"t,omitempty"`
	D  json.RawMessage `json:"d,omitempty"`
}

// Gateway opcodes the handshake cares about.
const (
	opDispatch       = 0
	opIdentify       = 2
	opInvalidSession = 9
	opHello          = 10
)

// handshake waits for hello, identifies, then waits for the READY dispatch.
func (c *Client) handshake(ctx context.Context, conn *websocket.Conn) (User, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
		_ = conn.SetWriteDeadline(deadline)
	}

	var hello gatewayPayload
	if err := conn.ReadJSON(&hello); err != nil {
		return User{}, fmt.Errorf("gateway hello: %w", err)
	}
	if hello.Op != opHello {
		return User{}, fmt.Errorf("gateway hello: unexpected opcode %d", hello.Op)
	}

	identify := map[string]interface{}{
		"op": opIdentify,
		"d": map[string]interface{}{
			"token":   c.token,
			"intents": intentGuilds | intentGuildMembers | intentGuildMessages,
			"properties": map[string]string{
				"os":      "linux",
				"browser": "botdeck",
				"device":  "botdeck",
			},
		},
	}
	if err := conn.WriteJSON(identify); err != nil {
		return User{}, fmt.Errorf("gateway identify: %w", err)
	}

	// Skip heartbeat acks and stray dispatches until READY shows up.
	for {
		var payload gatewayPayload
		if err := conn.ReadJSON(&payload); err != nil {
			return User{}, fmt.Errorf("gateway read: %w", err)
		}
		switch {
		case payload.Op == opInvalidSession:
			return User{}, ErrUnauthorized
		case payload.Op == opDispatch && payload.T == "READY":
			var ready struct {
				User User `json:"user"`
			}
			if err := json.Unmarshal(payload.D, &ready); err != nil {
				return User{}, fmt.Errorf("gateway ready: %w", err)
			}
			return ready.User, nil
		}
	}
}

// get performs an authenticated REST read and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("discord: GET %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func closeConn(conn *websocket.Conn) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
		time.Now().Add(500*time.Millisecond))
	_ = conn.Close()
}
