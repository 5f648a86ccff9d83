package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mkarrel/botdeck/internal/domain"
)

// Mapper converts a parsed seed file to domain.Command entries
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCommands validates the seed entries and assigns each command a fresh id.
// Names must be present and unique; an empty file is rejected so a broken
// seed never wipes out the registry.
func (m *Mapper) MapCommands(file File) ([]domain.Command, error) {
	if len(file.Commands) == 0 {
		return nil, fmt.Errorf("commands file defines no commands")
	}

	seen := make(map[string]bool, len(file.Commands))
	commands := make([]domain.Command, 0, len(file.Commands))
	for _, spec := range file.Commands {
		if spec.Name == "" {
			return nil, fmt.Errorf("command without a name")
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate command name %q", spec.Name)
		}
		seen[spec.Name] = true

		enabled := true
		if spec.Enabled != nil {
			enabled = *spec.Enabled
		}
		category := spec.Category
		if category == "" {
			category = "General"
		}

		commands = append(commands, domain.Command{
			ID:          uuid.NewString(),
			Name:        spec.Name,
			Description: spec.Description,
			Category:    category,
			UsageCount:  0,
			Enabled:     enabled,
		})
	}
	return commands, nil
}
