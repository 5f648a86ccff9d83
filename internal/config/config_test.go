package config

import (
	"os"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       string
		shouldSet bool
		want      string
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			def:       "default",
			shouldSet: true,
			want:      "test_value",
		},
		{
			name: "variable not set",
			key:  "TEST_VAR_MISSING",
			def:  "default",
			want: "default",
		},
		{
			name:      "empty value falls back to default",
			key:       "TEST_VAR_EMPTY",
			value:     "",
			def:       "default",
			shouldSet: true,
			want:      "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenv(tt.key, tt.def); got != tt.want {
				t.Errorf("getenv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   time.Duration
		want  time.Duration
	}{
		{name: "valid duration", value: "30s", def: time.Second, want: 30 * time.Second},
		{name: "invalid duration", value: "not-a-duration", def: time.Second, want: time.Second},
		{name: "unset", value: "", def: 10 * time.Second, want: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_DURATION"
			if tt.value != "" {
				t.Setenv(key, tt.value)
			} else {
				if err := os.Unsetenv(key); err != nil {
					t.Fatalf("failed to unset env var: %v", err)
				}
			}
			if got := mustDuration(key, tt.def); got != tt.want {
				t.Errorf("mustDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{name: "true", value: "true", def: false, want: true},
		{name: "false", value: "false", def: true, want: false},
		{name: "numeric true", value: "1", def: false, want: true},
		{name: "garbage falls back", value: "yes-please", def: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := mustBool("TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("mustBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAllowedIPs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "10.0.0.1", want: []string{"10.0.0.1"}},
		{name: "multiple with spaces", input: "10.0.0.1, 192.168.1.0/24", want: []string{"10.0.0.1", "192.168.1.0/24"}},
		{name: "quoted entries", input: `"10.0.0.1", '172.16.0.0/12'`, want: []string{"10.0.0.1", "172.16.0.0/12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAllowedIPs(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseAllowedIPs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseAllowedIPs()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DECK_LISTEN_PORT", "DECK_LOG_LEVEL", "DECK_DISCORD_TOKEN",
		"DECK_CONNECT_TIMEOUT", "DECK_COMMANDS_FILE", "DECK_ALLOWED_CIDRS",
	} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset env var: %v", err)
		}
	}

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("ConnectTimeout = %v, want 10s", cfg.ConnectTimeout)
	}
	if cfg.DiscordToken != "" {
		t.Errorf("DiscordToken = %q, want empty", cfg.DiscordToken)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("RateLimitBurst = %v, want 10", cfg.RateLimitBurst)
	}
}
