package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every override variable so ambient shell state cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MERLIN_TIER", "MERLIN_CHANNEL", "MERLIN_DB",
		"MERLIN_MAX_QUESTIONS", "OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merlin.yaml")
	data := `
resource_tier: medium
max_questions_per_attempt: 6
channel: browser
game_url: http://localhost:3000/
headless: false
db_path: outcomes.db
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	clearEnv(t)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ResourceTier != "medium" {
		t.Errorf("tier: got %q, want %q", cfg.ResourceTier, "medium")
	}
	if cfg.MaxQuestionsPerAttempt != 6 {
		t.Errorf("max questions: got %d, want 6", cfg.MaxQuestionsPerAttempt)
	}
	if cfg.Channel != "browser" {
		t.Errorf("channel: got %q, want %q", cfg.Channel, "browser")
	}
	if cfg.Headless {
		t.Error("headless: got true, want false")
	}
	if cfg.DBPath != "outcomes.db" {
		t.Errorf("db path: got %q", cfg.DBPath)
	}
	// Unset fields keep their defaults.
	if cfg.PrefixLenPrimary != 4 {
		t.Errorf("prefix len: got %d, want default 4", cfg.PrefixLenPrimary)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MERLIN_TIER", "medium")
	t.Setenv("MERLIN_CHANNEL", "browser")
	t.Setenv("MERLIN_MAX_QUESTIONS", "12")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ResourceTier != "medium" {
		t.Errorf("tier: got %q, want env override", cfg.ResourceTier)
	}
	if cfg.Channel != "browser" {
		t.Errorf("channel: got %q, want env override", cfg.Channel)
	}
	if cfg.MaxQuestionsPerAttempt != 12 {
		t.Errorf("max questions: got %d, want 12", cfg.MaxQuestionsPerAttempt)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad-tier", func(c *Config) { c.ResourceTier = "turbo" }, false},
		{"bad-channel", func(c *Config) { c.Channel = "carrier-pigeon" }, false},
		{"zero-questions", func(c *Config) { c.MaxQuestionsPerAttempt = 0 }, false},
		{"negative-retries", func(c *Config) { c.MaxRetriesPerAttempt = -1 }, false},
		{"bad-prefix-len", func(c *Config) { c.PrefixLenPrimary = 5 }, false},
		{"high-without-key", func(c *Config) { c.ResourceTier = "high" }, false},
		{"high-with-key", func(c *Config) {
			c.ResourceTier = "high"
			c.OpenAI.APIKey = "sk-test"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("got %v, want nil", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("got nil, want error")
			}
		})
	}
}
