package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkarrel/botdeck/internal/bootstrap"
	"github.com/mkarrel/botdeck/internal/config"
	"github.com/mkarrel/botdeck/internal/discord"
	"github.com/mkarrel/botdeck/internal/httpserver"
	"github.com/mkarrel/botdeck/internal/httpserver/deps"
	"github.com/mkarrel/botdeck/internal/logger"
	"github.com/mkarrel/botdeck/internal/sources/registry"
	"github.com/mkarrel/botdeck/internal/store/memory"
	"github.com/mkarrel/botdeck/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	store  *memory.Store
	boot   *bootstrap.Initializer
	server *httpserver.Server
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// The store exists before anything else; every endpoint reads from it.
	store := memory.NewStore()

	// Seed the command registry. It is fixed for the process lifetime.
	store.SetCommands(registry.Seed(cfg.CommandsFile, loggerClient))

	if cfg.DiscordToken == "" {
		loggerClient.Info("no discord token configured, dashboard will run on demo data")
	}
	connector := discord.NewClient(cfg.DiscordToken, loggerClient)
	boot := bootstrap.New(connector, store, loggerClient, cfg.ConnectTimeout)

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		Store:     store,
		Ready: func() bool {
			select {
			case <-boot.Done():
				return true
			default:
				return false
			}
		},
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		store:  store,
		boot:   boot,
		server: server,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting botdeck v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("botdeck %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed the store in the background; requests racing with it see an
	// absent bot status until it completes.
	a.boot.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ botdeck stopped cleanly")
	return nil
}
