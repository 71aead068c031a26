// Package config loads solver settings from an optional YAML file with
// environment overrides.
package config

// #region imports
import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region types

// Config is the full solver configuration.
type Config struct {
	ResourceTier           string `yaml:"resource_tier"` // low | medium | high
	MaxQuestionsPerAttempt int    `yaml:"max_questions_per_attempt"`
	MaxRetriesPerAttempt   int    `yaml:"max_retries_per_attempt"`
	PrefixLenPrimary       int    `yaml:"prefix_len_primary"` // 3 or 4

	Channel  string `yaml:"channel"` // "console" | "browser"
	GameURL  string `yaml:"game_url"`
	Headless bool   `yaml:"headless"`

	DBPath string `yaml:"db_path"` // empty = no outcome memory

	OpenAI OpenAIConfig `yaml:"openai"`
}

// OpenAIConfig configures the high-tier word generator.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// #endregion

// #region defaults

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ResourceTier:           "low",
		MaxQuestionsPerAttempt: 10,
		MaxRetriesPerAttempt:   10,
		PrefixLenPrimary:       4,
		Channel:                "console",
		GameURL:                "https://hackmerlin.io/",
		Headless:               true,
	}
}

// #endregion

// #region load

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MERLIN_TIER"); v != "" {
		c.ResourceTier = v
	}
	if v := os.Getenv("MERLIN_CHANNEL"); v != "" {
		c.Channel = v
	}
	if v := os.Getenv("MERLIN_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("MERLIN_MAX_QUESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxQuestionsPerAttempt = n
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
}

// #endregion

// #region validate

// Validate rejects settings the solver cannot run with.
func (c *Config) Validate() error {
	switch c.ResourceTier {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("invalid resource_tier %q", c.ResourceTier)
	}
	switch c.Channel {
	case "console", "browser":
	default:
		return fmt.Errorf("invalid channel %q", c.Channel)
	}
	if c.MaxQuestionsPerAttempt < 1 {
		return fmt.Errorf("max_questions_per_attempt must be positive")
	}
	if c.MaxRetriesPerAttempt < 0 {
		return fmt.Errorf("max_retries_per_attempt must not be negative")
	}
	if c.PrefixLenPrimary != 3 && c.PrefixLenPrimary != 4 {
		return fmt.Errorf("prefix_len_primary must be 3 or 4")
	}
	if c.ResourceTier == "high" && c.OpenAI.APIKey == "" {
		return fmt.Errorf("resource_tier high requires an OpenAI API key")
	}
	return nil
}

// #endregion
