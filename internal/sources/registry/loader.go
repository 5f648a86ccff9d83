package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkarrel/botdeck/internal/domain"
	"github.com/mkarrel/botdeck/internal/logger"
)

// Loader handles loading and parsing of a commands.yaml seed file
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the commands seed file
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read commands file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("failed to parse commands yaml: %w", err)
	}

	return file, nil
}

// Seed returns the command registry the store starts with: commands from the
// given file when one is configured and parses cleanly, the built-in set
// otherwise. The registry is fixed for the rest of the process lifetime.
func Seed(filePath string, log logger.Logger) []domain.Command {
	if filePath == "" {
		return DefaultCommands()
	}

	file, err := NewLoader(filePath).Load()
	if err != nil {
		log.Warnf("falling back to built-in command registry: %v", err)
		return DefaultCommands()
	}

	commands, err := NewMapper().MapCommands(file)
	if err != nil {
		log.Warnf("invalid commands file, falling back to built-in registry: %v", err)
		return DefaultCommands()
	}

	log.Info("command registry seeded from file",
		logger.String("file", filePath),
		logger.Int("count", len(commands)))
	return commands
}
