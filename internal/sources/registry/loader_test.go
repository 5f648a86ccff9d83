package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarrel/botdeck/internal/logger"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commands.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestLoadAndMap(t *testing.T) {
	path := writeSeedFile(t, `
commands:
  - name: help
    description: Shows all available commands
    category: Utility
  - name: ban
    description: Ban a member
    category: Moderation
    enabled: false
  - name: roll
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	commands, err := NewMapper().MapCommands(file)
	if err != nil {
		t.Fatalf("MapCommands() error = %v", err)
	}
	if len(commands) != 3 {
		t.Fatalf("MapCommands() = %d commands, want 3", len(commands))
	}

	if !commands[0].Enabled {
		t.Error("enabled should default to true")
	}
	if commands[1].Enabled {
		t.Error("explicit enabled: false was ignored")
	}
	if commands[2].Category != "General" {
		t.Errorf("category = %q, want default General", commands[2].Category)
	}
	if commands[0].ID == "" || commands[0].ID == commands[1].ID {
		t.Error("commands must get unique generated ids")
	}
	if commands[0].UsageCount != 0 {
		t.Errorf("file-seeded usage count = %d, want 0", commands[0].UsageCount)
	}
}

func TestMapCommandsRejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{name: "empty file", file: File{}},
		{name: "missing name", file: File{Commands: []CommandSpec{{Description: "x"}}}},
		{name: "duplicate name", file: File{Commands: []CommandSpec{{Name: "help"}, {Name: "help"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMapper().MapCommands(tt.file); err == nil {
				t.Error("MapCommands() should reject this seed")
			}
		})
	}
}

func TestSeedFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "no file configured", path: ""},
		{name: "missing file", path: "/does/not/exist.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands := Seed(tt.path, logger.Nop())
			if len(commands) != 9 {
				t.Fatalf("Seed() = %d commands, want the 9 built-ins", len(commands))
			}
			if commands[0].Name != "help" || commands[0].UsageCount != 127 {
				t.Errorf("unexpected first built-in command: %+v", commands[0])
			}
		})
	}
}

func TestSeedFallsBackOnUnparsableFile(t *testing.T) {
	path := writeSeedFile(t, "commands: [not, a, mapping")

	commands := Seed(path, logger.Nop())
	if len(commands) != 9 {
		t.Fatalf("Seed() = %d commands, want the 9 built-ins", len(commands))
	}
}
