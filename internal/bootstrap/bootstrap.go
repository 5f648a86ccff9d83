// Package bootstrap seeds the in-memory store exactly once at process start:
// from a live Discord snapshot when the gateway answers in time, otherwise
// from a fixed demo dataset. There is no retry and no periodic re-sync.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/mkarrel/botdeck/internal/discord"
	"github.com/mkarrel/botdeck/internal/domain"
	"github.com/mkarrel/botdeck/internal/logger"
	"github.com/mkarrel/botdeck/internal/store/memory"
)

type Initializer struct {
	connector discord.Connector
	store     *memory.Store
	logger    logger.Logger
	timeout   time.Duration

	once sync.Once
	done chan struct{}
}

func New(connector discord.Connector, store *memory.Store, log logger.Logger, timeout time.Duration) *Initializer {
	return &Initializer{
		connector: connector,
		store:     store,
		logger:    log,
		timeout:   timeout,
		done:      make(chan struct{}),
	}
}

// Start launches the seed as a detached task. Requests racing with it see an
// absent BotStatus until the store is populated.
func (b *Initializer) Start(ctx context.Context) {
	b.once.Do(func() {
		go func() {
			defer close(b.done)
			b.Run(ctx)
		}()
	})
}

// Done is closed once the store has been seeded, by either path.
func (b *Initializer) Done() <-chan struct{} { return b.done }

// Run executes the seed synchronously. Every live-path failure is absorbed
// into the demo fallback; Run never returns an error.
func (b *Initializer) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	if err := b.loadLive(ctx); err != nil {
		b.logger.Warn("discord connection unavailable, seeding demo data", logger.Error(err))
		b.seedDemo(time.Now())
		return
	}
	b.logger.Info("store seeded from live discord snapshot")
}

func (b *Initializer) loadLive(ctx context.Context) error {
	sess, err := b.connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			b.logger.Warnf("failed to close discord session: %v", err)
		}
	}()

	guilds, err := sess.Guilds(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	servers := make([]domain.Server, 0, len(guilds))
	channelsByServer := make(map[string][]domain.Channel, len(guilds))
	activeChannels := 0

	for _, guild := range guilds {
		servers = append(servers, mapServer(guild, now))

		raw, err := sess.GuildChannels(ctx, guild.ID)
		if err != nil {
			return err
		}
		channels := mapChannels(raw)
		channelsByServer[guild.ID] = channels
		for _, ch := range channels {
			if ch.Type == domain.ChannelText || ch.Type == domain.ChannelAnnouncement {
				activeChannels++
			}
		}
	}

	b.store.SetBotStatus(mapStatus(sess.Me(), guilds, activeChannels, now))
	b.store.SetServers(servers)
	for id, channels := range channelsByServer {
		b.store.SetServerChannels(id, channels)
	}
	b.store.AddActivityEvent(domain.NewActivityEvent{
		Type:        domain.EventMessage,
		Description: "Bot successfully connected to Discord",
		Timestamp:   now,
	})
	return nil
}
