// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete bhasha configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Endpoint configuration for the prompt processing service
	Endpoint EndpointConfig `toml:"endpoint" json:"endpoint"`

	// Chat behavior
	Chat ChatConfig `toml:"chat" json:"chat"`

	// Speech input
	Speech SpeechConfig `toml:"speech" json:"speech"`

	// Locale table overrides
	Locale LocaleConfig `toml:"locale" json:"locale"`
}

// EndpointConfig contains the remote endpoint configuration.
type EndpointConfig struct {
	// URL of the prompt processing service
	URL string `toml:"url" json:"url"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// MaxRequestsPerSecond throttles outbound calls (0 = unlimited)
	MaxRequestsPerSecond float64 `toml:"max_requests_per_second" json:"max_requests_per_second"`
}

// ChatConfig contains conversation defaults.
type ChatConfig struct {
	// Language is the startup language code: en, hi, ta, te, bn
	Language string `toml:"language" json:"language"`
	// Persona is the startup persona ("" = none selected)
	Persona string `toml:"persona" json:"persona"`
	// FallbackDelayMs is the pause before a canned response appears
	FallbackDelayMs int `toml:"fallback_delay_ms" json:"fallback_delay_ms"`
}

// SpeechConfig contains speech-to-text configuration.
type SpeechConfig struct {
	// Command is the external capture command; it receives the BCP 47
	// locale tag as its last argument and prints the transcript.
	// Empty disables voice input.
	Command string `toml:"command" json:"command"`
}

// LocaleConfig points at optional locale table overrides.
type LocaleConfig struct {
	// TablePath is a TOML file overlaying the builtin tables
	TablePath string `toml:"table_path" json:"table_path"`
	// WatchTable reloads the overlay when the file changes
	WatchTable bool `toml:"watch_table" json:"watch_table"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Endpoint: EndpointConfig{
			URL:         "http://127.0.0.1:8000",
			TimeoutSecs: 10,
		},
		Chat: ChatConfig{
			Language:        string(locale.LangEnglish),
			FallbackDelayMs: 1000,
		},
	}
}

// SendTimeout returns the endpoint timeout as a duration.
func (c *Config) SendTimeout() time.Duration {
	return time.Duration(c.Endpoint.TimeoutSecs) * time.Second
}

// FallbackDelay returns the canned-response delay as a duration.
func (c *Config) FallbackDelay() time.Duration {
	return time.Duration(c.Chat.FallbackDelayMs) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the bhasha configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".bhasha"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	// A .env in the working directory is a development convenience;
	// missing is the normal case.
	godotenv.Load()

	cfg := Default()

	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
			return finish(cfg)
		}
	}

	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadJSON(cfg, path); err != nil {
				return nil, err
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	godotenv.Load()

	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, err
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	}
	return finish(cfg)
}

// finish applies env overrides, defaults, and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default TOML path.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file. The write is atomic
// so a crash mid-save cannot leave a half-written config behind.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies BHASHA_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("BHASHA_ENDPOINT"); v != "" {
		c.Endpoint.URL = v
	}
	if v := os.Getenv("BHASHA_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Endpoint.TimeoutSecs = n
		}
	}
	if v := os.Getenv("BHASHA_LANG"); v != "" {
		c.Chat.Language = v
	}
	if v := os.Getenv("BHASHA_PERSONA"); v != "" {
		c.Chat.Persona = v
	}
	if v := os.Getenv("BHASHA_FALLBACK_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Chat.FallbackDelayMs = n
		}
	}
	if v := os.Getenv("BHASHA_SPEECH_CMD"); v != "" {
		c.Speech.Command = v
	}
	if v := os.Getenv("BHASHA_LOCALE_TABLE"); v != "" {
		c.Locale.TablePath = v
	}
}

// SetDefaults fills in zero values with defaults.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.Endpoint.URL == "" {
		c.Endpoint.URL = def.Endpoint.URL
	}
	if c.Endpoint.TimeoutSecs <= 0 {
		c.Endpoint.TimeoutSecs = def.Endpoint.TimeoutSecs
	}
	if c.Chat.Language == "" {
		c.Chat.Language = def.Chat.Language
	}
	if c.Chat.FallbackDelayMs < 0 {
		c.Chat.FallbackDelayMs = def.Chat.FallbackDelayMs
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "endpoint.url", Message: "must be a valid http(s) URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "endpoint.url", Message: "scheme must be http or https"}
	}

	if c.Endpoint.TimeoutSecs <= 0 {
		return ValidationError{Field: "endpoint.timeout_secs", Message: "must be positive"}
	}
	if c.Endpoint.MaxRequestsPerSecond < 0 {
		return ValidationError{Field: "endpoint.max_requests_per_second", Message: "must not be negative"}
	}

	if !locale.IsSupported(c.Chat.Language) {
		return ValidationError{Field: "chat.language", Message: "unsupported language code: " + c.Chat.Language}
	}
	if c.Chat.FallbackDelayMs < 0 {
		return ValidationError{Field: "chat.fallback_delay_ms", Message: "must not be negative"}
	}

	return nil
}

// =============================================================================
// KEY ACCESS (config get/set)
// =============================================================================

// knownKeys lists the dotted key names for the config command.
var knownKeys = []string{
	"endpoint.url",
	"endpoint.timeout_secs",
	"endpoint.max_requests_per_second",
	"chat.language",
	"chat.persona",
	"chat.fallback_delay_ms",
	"speech.command",
	"locale.table_path",
	"locale.watch_table",
}

// Keys returns all settable configuration keys.
func Keys() []string {
	out := make([]string, len(knownKeys))
	copy(out, knownKeys)
	return out
}

// Get returns a configuration value by dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "endpoint.url":
		return c.Endpoint.URL, nil
	case "endpoint.timeout_secs":
		return strconv.Itoa(c.Endpoint.TimeoutSecs), nil
	case "endpoint.max_requests_per_second":
		return strconv.FormatFloat(c.Endpoint.MaxRequestsPerSecond, 'f', -1, 64), nil
	case "chat.language":
		return c.Chat.Language, nil
	case "chat.persona":
		return c.Chat.Persona, nil
	case "chat.fallback_delay_ms":
		return strconv.Itoa(c.Chat.FallbackDelayMs), nil
	case "speech.command":
		return c.Speech.Command, nil
	case "locale.table_path":
		return c.Locale.TablePath, nil
	case "locale.watch_table":
		return strconv.FormatBool(c.Locale.WatchTable), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a configuration value by dotted key. The value is parsed
// according to the field's type; the result is validated.
func (c *Config) Set(key, value string) error {
	switch key {
	case "endpoint.url":
		c.Endpoint.URL = value
	case "endpoint.timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: expected integer: %w", key, err)
		}
		c.Endpoint.TimeoutSecs = n
	case "endpoint.max_requests_per_second":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: expected number: %w", key, err)
		}
		c.Endpoint.MaxRequestsPerSecond = f
	case "chat.language":
		c.Chat.Language = value
	case "chat.persona":
		c.Chat.Persona = value
	case "chat.fallback_delay_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: expected integer: %w", key, err)
		}
		c.Chat.FallbackDelayMs = n
	case "speech.command":
		c.Speech.Command = value
	case "locale.table_path":
		c.Locale.TablePath = value
	case "locale.watch_table":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: expected bool: %w", key, err)
		}
		c.Locale.WatchTable = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return c.Validate()
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.Mutex
)

// Global returns the process-wide configuration, loading it on first use.
// Load errors fall back to defaults so the TUI can always start.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	globalConfigOnce.Do(func() {})
}

// ResetGlobalForTesting clears global state between tests.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
