package domain

// Command is one entry of the bot's command registry. The registry is fixed
// after seeding; only Enabled and UsageCount change at runtime.
type Command struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	UsageCount  int    `json:"usageCount"`
	Enabled     bool   `json:"enabled"`
}

// CommandUpdate carries the runtime-mutable fields of a Command.
// Nil means "leave unchanged".
type CommandUpdate struct {
	Enabled    *bool
	UsageCount *int
}
