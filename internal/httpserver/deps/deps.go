package deps

import (
	"time"

	"github.com/mkarrel/botdeck/internal/logger"
	"github.com/mkarrel/botdeck/internal/store/memory"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Store *memory.Store // the in-memory repository every endpoint reads/writes
	Ready func() bool   // reports whether the bootstrap seed has completed

	AllowedCIDRS []string // IPs allowed to reach the dashboard API (empty = everyone)
	TrustProxy   bool     // true if running behind a trusted reverse proxy

	RateLimitBurst  int // per-IP burst for mutating endpoints
	RateLimitPerMin int // per-IP refill rate for mutating endpoints
}
