package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkarrel/botdeck/internal/domain"
)

const (
	// maxActivityEvents bounds the activity log; oldest entries are dropped first.
	maxActivityEvents = 100
	// activityReadLimit caps how many entries a single read returns.
	activityReadLimit = 50
)

// Store is the in-memory repository behind the REST facade. Nothing is
// persisted; a process restart resets everything to the bootstrap path.
// All collections are replaced wholesale, never patched incrementally.
type Store struct {
	mu           sync.RWMutex
	startedAt    time.Time
	botStatus    *domain.BotStatus
	servers      []domain.Server
	channels     map[string][]domain.Channel
	commands     map[string]*domain.Command
	commandOrder []string // read order, stable within a process
	events       []domain.ActivityEvent
	settings     domain.BotSettings
}

// NewStore creates an empty store. The settings record always exists.
func NewStore() *Store {
	return &Store{
		startedAt: time.Now(),
		channels:  make(map[string][]domain.Channel),
		commands:  make(map[string]*domain.Command),
		settings:  domain.DefaultSettings(),
	}
}

// GetBotStatus returns the current status with uptime recomputed against the
// process start. The second return is false until the bootstrap has run.
func (s *Store) GetBotStatus() (domain.BotStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.botStatus == nil {
		return domain.BotStatus{}, false
	}
	status := *s.botStatus
	status.Uptime = int64(time.Since(s.startedAt).Seconds())
	return status, true
}

// SetBotStatus replaces the single status record.
func (s *Store) SetBotStatus(status domain.BotStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.botStatus = &status
}

// GetServers returns the server list in its snapshot order.
func (s *Store) GetServers() []domain.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Server, len(s.servers))
	copy(out, s.servers)
	return out
}

// SetServers replaces the whole server list.
func (s *Store) SetServers(servers []domain.Server) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.servers = make([]domain.Server, len(servers))
	copy(s.servers, servers)
}

// GetServerChannels returns the channels recorded for a server. An unknown
// server id yields an empty list, not an error.
func (s *Store) GetServerChannels(serverID string) []domain.Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	channels := s.channels[serverID]
	out := make([]domain.Channel, len(channels))
	copy(out, channels)
	return out
}

// SetServerChannels replaces the channel list for one server.
func (s *Store) SetServerChannels(serverID string, channels []domain.Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.Channel, len(channels))
	copy(list, channels)
	s.channels[serverID] = list
}

// GetCommands returns the registry in seed order.
func (s *Store) GetCommands() []domain.Command {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Command, 0, len(s.commandOrder))
	for _, id := range s.commandOrder {
		if cmd, ok := s.commands[id]; ok {
			out = append(out, *cmd)
		}
	}
	return out
}

// SetCommands replaces the whole registry. Read order follows the given slice.
func (s *Store) SetCommands(commands []domain.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commands = make(map[string]*domain.Command, len(commands))
	s.commandOrder = make([]string, 0, len(commands))
	for _, cmd := range commands {
		c := cmd
		s.commands[c.ID] = &c
		s.commandOrder = append(s.commandOrder, c.ID)
	}
}

// UpdateCommand merges only the supplied fields into an existing command.
// The second return is false when the id is unknown; the registry is left
// untouched in that case.
func (s *Store) UpdateCommand(id string, upd domain.CommandUpdate) (domain.Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, ok := s.commands[id]
	if !ok {
		return domain.Command{}, false
	}
	if upd.Enabled != nil {
		cmd.Enabled = *upd.Enabled
	}
	if upd.UsageCount != nil {
		cmd.UsageCount = *upd.UsageCount
	}
	return *cmd, true
}

// GetActivityEvents returns at most the 50 most recent entries, newest first.
func (s *Store) GetActivityEvents() []domain.ActivityEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.events)
	limit := activityReadLimit
	if n < limit {
		limit = n
	}
	out := make([]domain.ActivityEvent, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.events[i])
	}
	return out
}

// AddActivityEvent appends an event with a freshly generated id, dropping
// the oldest entries once the log exceeds its cap.
func (s *Store) AddActivityEvent(ev domain.NewActivityEvent) domain.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := domain.ActivityEvent{
		ID:          uuid.NewString(),
		Type:        ev.Type,
		Description: ev.Description,
		Timestamp:   ev.Timestamp,
		ServerID:    ev.ServerID,
		ServerName:  ev.ServerName,
		UserID:      ev.UserID,
		Username:    ev.Username,
	}
	s.events = append(s.events, event)
	if len(s.events) > maxActivityEvents {
		s.events = s.events[len(s.events)-maxActivityEvents:]
	}
	return event
}

// GetSettings returns the live settings record.
func (s *Store) GetSettings() domain.BotSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// UpdateSettings replaces the settings wholesale and returns the stored value.
func (s *Store) UpdateSettings(settings domain.BotSettings) domain.BotSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	return s.settings
}
