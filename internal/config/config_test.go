// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Endpoint.URL != "http://127.0.0.1:8000" {
		t.Errorf("Endpoint.URL = %q", cfg.Endpoint.URL)
	}
	if cfg.SendTimeout() != 10*time.Second {
		t.Errorf("SendTimeout = %v", cfg.SendTimeout())
	}
	if cfg.FallbackDelay() != time.Second {
		t.Errorf("FallbackDelay = %v", cfg.FallbackDelay())
	}
	if cfg.Chat.Language != "en" {
		t.Errorf("Chat.Language = %q", cfg.Chat.Language)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromPathTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1.0"

[endpoint]
url = "https://api.example.com"
timeout_secs = 5

[chat]
language = "hi"
persona = "farmer"
fallback_delay_ms = 250

[speech]
command = "bhasha-stt --once"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Endpoint.URL != "https://api.example.com" {
		t.Errorf("URL = %q", cfg.Endpoint.URL)
	}
	if cfg.SendTimeout() != 5*time.Second {
		t.Errorf("SendTimeout = %v", cfg.SendTimeout())
	}
	if cfg.Chat.Language != "hi" || cfg.Chat.Persona != "farmer" {
		t.Errorf("chat = %+v", cfg.Chat)
	}
	if cfg.FallbackDelay() != 250*time.Millisecond {
		t.Errorf("FallbackDelay = %v", cfg.FallbackDelay())
	}
	if cfg.Speech.Command != "bhasha-stt --once" {
		t.Errorf("speech command = %q", cfg.Speech.Command)
	}
}

func TestLoadFromPathJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"endpoint": {"url": "http://localhost:9000"}, "chat": {"language": "ta"}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Endpoint.URL != "http://localhost:9000" {
		t.Errorf("URL = %q", cfg.Endpoint.URL)
	}
	// Unset fields fall back to defaults.
	if cfg.Endpoint.TimeoutSecs != 10 {
		t.Errorf("TimeoutSecs = %d, want default 10", cfg.Endpoint.TimeoutSecs)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BHASHA_ENDPOINT", "http://envhost:8080")
	t.Setenv("BHASHA_LANG", "bn")
	t.Setenv("BHASHA_TIMEOUT_SECS", "3")
	t.Setenv("BHASHA_FALLBACK_DELAY_MS", "0")
	t.Setenv("BHASHA_SPEECH_CMD", "rec-cmd")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Endpoint.URL != "http://envhost:8080" {
		t.Errorf("URL = %q", cfg.Endpoint.URL)
	}
	if cfg.Chat.Language != "bn" {
		t.Errorf("Language = %q", cfg.Chat.Language)
	}
	if cfg.Endpoint.TimeoutSecs != 3 {
		t.Errorf("TimeoutSecs = %d", cfg.Endpoint.TimeoutSecs)
	}
	if cfg.Chat.FallbackDelayMs != 0 {
		t.Errorf("FallbackDelayMs = %d, want 0 (explicit zero allowed)", cfg.Chat.FallbackDelayMs)
	}
	if cfg.Speech.Command != "rec-cmd" {
		t.Errorf("Speech.Command = %q", cfg.Speech.Command)
	}
}

func TestEnvOverrideBadNumberIgnored(t *testing.T) {
	t.Setenv("BHASHA_TIMEOUT_SECS", "not-a-number")
	cfg := Default()
	cfg.ApplyEnvOverrides()
	if cfg.Endpoint.TimeoutSecs != 10 {
		t.Errorf("TimeoutSecs = %d, want untouched 10", cfg.Endpoint.TimeoutSecs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"bad url", func(c *Config) { c.Endpoint.URL = "not a url" }, true},
		{"ftp scheme", func(c *Config) { c.Endpoint.URL = "ftp://x" }, true},
		{"zero timeout", func(c *Config) { c.Endpoint.TimeoutSecs = 0 }, true},
		{"negative rate", func(c *Config) { c.Endpoint.MaxRequestsPerSecond = -1 }, true},
		{"unknown language", func(c *Config) { c.Chat.Language = "fr" }, true},
		{"negative delay", func(c *Config) { c.Chat.FallbackDelayMs = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	cfg := Default()

	for _, key := range Keys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q): %v", key, err)
		}
	}

	if err := cfg.Set("chat.language", "te"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := cfg.Get("chat.language")
	if got != "te" {
		t.Errorf("chat.language = %q after Set", got)
	}

	if err := cfg.Set("endpoint.timeout_secs", "abc"); err == nil {
		t.Error("Set with non-integer should fail")
	}
	if err := cfg.Set("chat.language", "xx"); err == nil {
		t.Error("Set with unsupported language should fail validation")
	}
	if err := cfg.Set("no.such.key", "1"); err == nil {
		t.Error("Set with unknown key should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Chat.Language = "ta"
	cfg.Endpoint.MaxRequestsPerSecond = 2.5
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.Chat.Language != "ta" {
		t.Errorf("Language = %q", loaded.Chat.Language)
	}
	if loaded.Endpoint.MaxRequestsPerSecond != 2.5 {
		t.Errorf("MaxRequestsPerSecond = %v", loaded.Endpoint.MaxRequestsPerSecond)
	}
}

func TestGlobal(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	custom := Default()
	custom.Chat.Persona = "student"
	SetGlobal(custom)

	if Global().Chat.Persona != "student" {
		t.Error("Global should return the injected config")
	}
}
