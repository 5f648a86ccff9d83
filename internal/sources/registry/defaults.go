package registry

import (
	"github.com/google/uuid"

	"github.com/mkarrel/botdeck/internal/domain"
)

// DefaultCommands returns the built-in command registry used when no seed
// file is configured. Usage counts mirror a typical day of bot traffic so a
// fresh dashboard is not a wall of zeroes.
func DefaultCommands() []domain.Command {
	defaults := []struct {
		name        string
		description string
		category    string
		usageCount  int
		enabled     bool
	}{
		{"help", "Shows all available commands", "Utility", 127, true},
		{"ping", "Check bot latency and response time", "Utility", 89, true},
		{"userinfo", "Display information about a user", "Info", 56, true},
		{"serverinfo", "Display information about the server", "Info", 43, true},
		{"kick", "Kick a member from the server", "Moderation", 12, true},
		{"ban", "Ban a member from the server", "Moderation", 8, false},
		{"clear", "Clear messages from a channel", "Moderation", 34, true},
		{"poll", "Create a poll with reactions", "Fun", 67, true},
		{"meme", "Get a random meme", "Fun", 145, true},
	}

	commands := make([]domain.Command, 0, len(defaults))
	for _, d := range defaults {
		commands = append(commands, domain.Command{
			ID:          uuid.NewString(),
			Name:        d.name,
			Description: d.description,
			Category:    d.category,
			UsageCount:  d.usageCount,
			Enabled:     d.enabled,
		})
	}
	return commands
}
