package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DiscordToken   string        // bot token; empty => demo data from the start
	ConnectTimeout time.Duration // bound on the one-shot Discord connection attempt

	CommandsFile string // optional path to a commands.yaml seed; empty = built-in registry

	// Access restrictions
	AllowedCIDRS []string // optional, restrict access to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Rate limiting for mutating endpoints
	RateLimitBurst  int // max burst per client IP
	RateLimitPerMin int // refill rate per client IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DECK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DECK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DECK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DECK_PRETTY_LOG", true),

		// Discord
		DiscordToken:   getenv("DECK_DISCORD_TOKEN", ""),
		ConnectTimeout: mustDuration("DECK_CONNECT_TIMEOUT", 10*time.Second),

		// Command registry seed
		CommandsFile: getenv("DECK_COMMANDS_FILE", ""),

		// Access restrictions
		AllowedCIDRS: parseAllowedIPs(getenv("DECK_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("DECK_TRUST_PROXY", false),

		// Rate limiting
		RateLimitBurst:  getenvInt("DECK_RATE_LIMIT_BURST", 10),
		RateLimitPerMin: getenvInt("DECK_RATE_LIMIT_PER_MIN", 60),
	}

	// Log config only in debug mode with the token redacted
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.DiscordToken != "" {
			cfgCopy.DiscordToken = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
