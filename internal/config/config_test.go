package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so tests start clean.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{pathEnv, usernameEnv, botTokenEnv, chatIDEnv, topNEnv, dryRunEnv} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Devpost.MaxPages != 3 {
		t.Errorf("MaxPages = %d, want 3", cfg.Devpost.MaxPages)
	}
	if cfg.Notify.TopN != 3 {
		t.Errorf("TopN = %d, want 3", cfg.Notify.TopN)
	}
	if cfg.Notify.DryRun {
		t.Error("DryRun should default to false")
	}
	if cfg.State.File != "data/state.json" {
		t.Errorf("State.File = %q", cfg.State.File)
	}
	if cfg.State.ExternalFile != "data/external.json" {
		t.Errorf("State.ExternalFile = %q", cfg.State.ExternalFile)
	}
	if cfg.State.RetentionDays != 30 {
		t.Errorf("RetentionDays = %d, want 30", cfg.State.RetentionDays)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(usernameEnv, "octocat")
	t.Setenv(botTokenEnv, "123:abc")
	t.Setenv(chatIDEnv, "-100200300")
	t.Setenv(topNEnv, "5")
	t.Setenv(dryRunEnv, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Devpost.Username != "octocat" {
		t.Errorf("Username = %q", cfg.Devpost.Username)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("BotToken = %q", cfg.Telegram.BotToken)
	}
	if cfg.Telegram.ChatID != "-100200300" {
		t.Errorf("ChatID = %q", cfg.Telegram.ChatID)
	}
	if cfg.Notify.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.Notify.TopN)
	}
	if !cfg.Notify.DryRun {
		t.Error("DryRun should be true")
	}
}

func TestLoadIgnoresBadNumericEnv(t *testing.T) {
	clearEnv(t)

	tests := []string{"abc", "-2", "0"}
	for _, v := range tests {
		t.Setenv(topNEnv, v)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Notify.TopN != 3 {
			t.Errorf("TOP_N_HACKATHONS=%q: TopN = %d, want default 3", v, cfg.Notify.TopN)
		}
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `devpost:
  username: filefan
  maxPages: 2
notify:
  topN: 7
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(pathEnv, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Devpost.Username != "filefan" {
		t.Errorf("Username = %q, want filefan", cfg.Devpost.Username)
	}
	if cfg.Devpost.MaxPages != 2 {
		t.Errorf("MaxPages = %d, want 2", cfg.Devpost.MaxPages)
	}
	if cfg.Notify.TopN != 7 {
		t.Errorf("TopN = %d, want 7", cfg.Notify.TopN)
	}
	// Keys absent from the file keep their defaults
	if cfg.State.File != "data/state.json" {
		t.Errorf("State.File = %q, want default", cfg.State.File)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("devpost:\n  username: filefan\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(pathEnv, path)
	t.Setenv(usernameEnv, "envfan")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Devpost.Username != "envfan" {
		t.Errorf("Username = %q, want env value to win", cfg.Devpost.Username)
	}
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)

	t.Setenv(pathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("devpost: [not: valid"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(pathEnv, bad)
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	var cfg Config

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	for _, name := range []string{usernameEnv, botTokenEnv, chatIDEnv} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s: %v", name, err)
		}
	}

	if err := cfg.ValidateScrape(); err == nil || strings.Contains(err.Error(), botTokenEnv) {
		t.Errorf("ValidateScrape should only require the username: %v", err)
	}
	if err := cfg.ValidateTelegram(); err == nil || strings.Contains(err.Error(), usernameEnv) {
		t.Errorf("ValidateTelegram should only require bot credentials: %v", err)
	}

	cfg.Devpost.Username = "octocat"
	cfg.Telegram.BotToken = "123:abc"
	cfg.Telegram.ChatID = "42"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on complete config = %v", err)
	}
}
