// Package config loads hackwatch settings from defaults, an optional YAML
// file, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized at load time.
const (
	pathEnv     = "HACKWATCH_CONFIG"
	usernameEnv = "DEVPOST_USERNAME"
	botTokenEnv = "TELEGRAM_BOT_TOKEN"
	chatIDEnv   = "TELEGRAM_CHAT_ID"
	topNEnv     = "TOP_N_HACKATHONS"
	dryRunEnv   = "DRY_RUN"
)

// Config holds all runtime settings.
type Config struct {
	Devpost  DevpostConfig  `yaml:"devpost"`
	Telegram TelegramConfig `yaml:"telegram"`
	Notify   NotifyConfig   `yaml:"notify"`
	State    StateConfig    `yaml:"state"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DevpostConfig identifies the profile to watch.
type DevpostConfig struct {
	Username string `yaml:"username"`
	MaxPages int    `yaml:"maxPages"`
}

// TelegramConfig carries the bot credentials.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// NotifyConfig controls alert volume and delivery mode.
type NotifyConfig struct {
	TopN   int  `yaml:"topN"`
	DryRun bool `yaml:"dryRun"`
}

// StateConfig names the on-disk JSON files.
type StateConfig struct {
	File          string `yaml:"file"`
	ExternalFile  string `yaml:"externalFile"`
	RetentionDays int    `yaml:"retentionDays"`
}

// LoggingConfig sets the minimum log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load builds the effective configuration: defaults, then the YAML file
// named by HACKWATCH_CONFIG (if set), then environment variables. A file
// that is named but unreadable or invalid is an error; required values
// are checked separately by Validate.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(pathEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Devpost: DevpostConfig{
			MaxPages: 3,
		},
		Notify: NotifyConfig{
			TopN: 3,
		},
		State: StateConfig{
			File:          "data/state.json",
			ExternalFile:  "data/external.json",
			RetentionDays: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// applyEnvOverrides lets environment variables win over file values.
// Unparsable numeric or boolean values are ignored rather than fatal.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(usernameEnv); v != "" {
		c.Devpost.Username = v
	}
	if v := os.Getenv(botTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv(chatIDEnv); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv(topNEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Notify.TopN = n
		}
	}
	if v := os.Getenv(dryRunEnv); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Notify.DryRun = b
		}
	}
}

// Validate reports all settings required for a live watch run that are
// still unset.
func (c Config) Validate() error {
	return c.check(true, true)
}

// ValidateScrape checks only what a scrape-and-report run needs.
func (c Config) ValidateScrape() error {
	return c.check(true, false)
}

// ValidateTelegram checks only the bot credentials.
func (c Config) ValidateTelegram() error {
	return c.check(false, true)
}

func (c Config) check(scrape, telegram bool) error {
	var missing []string
	if scrape && c.Devpost.Username == "" {
		missing = append(missing, usernameEnv)
	}
	if telegram && c.Telegram.BotToken == "" {
		missing = append(missing, botTokenEnv)
	}
	if telegram && c.Telegram.ChatID == "" {
		missing = append(missing, chatIDEnv)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
