// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete termfolio configuration.
type Config struct {
	Prompt  PromptConfig  `toml:"prompt"`
	Catalog CatalogConfig `toml:"catalog"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// PromptConfig controls the simulated shell identity.
type PromptConfig struct {
	// User is the login name in the prompt (user@host:~$).
	User string `toml:"user"`
	// Host is the host name in the prompt.
	Host string `toml:"host"`
	// Home is the path printed by pwd; empty means /home/<user>/portfolio.
	Home string `toml:"home"`
}

// CatalogConfig selects the content document.
type CatalogConfig struct {
	// Path to a YAML or JSON catalog; empty uses the embedded one.
	Path string `toml:"path"`
}

// UIConfig controls the terminal display.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme"`
	// AltScreen runs the display in the alternate screen buffer.
	AltScreen bool `toml:"alt_screen"`
	// Mouse enables clicking quick bar buttons.
	Mouse bool `toml:"mouse"`
	// MaxWidth caps the window width in columns; 0 means no cap.
	MaxWidth int `toml:"max_width"`
	// QuickCommands overrides the quick bar buttons; empty keeps the default set.
	QuickCommands []string `toml:"quick_commands"`
}

// LogConfig controls the structured log file.
type LogConfig struct {
	// File is the log path; empty disables logging.
	File string `toml:"file"`
	// Level is debug, info, warn or error.
	Level string `toml:"level"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Prompt: PromptConfig{
			User: "mozammil",
			Host: "portfolio",
		},
		UI: UIConfig{
			Theme:     "auto",
			AltScreen: true,
			Mouse:     true,
			MaxWidth:  120,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// HomePath returns the path printed by pwd.
func (c *Config) HomePath() string {
	if c.Prompt.Home != "" {
		return c.Prompt.Home
	}
	return "/home/" + c.Prompt.User + "/portfolio"
}

// PromptString returns the shell prompt, e.g. "mozammil@portfolio:~$".
func (c *Config) PromptString() string {
	return c.Prompt.User + "@" + c.Prompt.Host + ":~$"
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the termfolio configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".termfolio"), nil
}

// ConfigPath returns the default config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the config file at path (the default path when empty), then a
// .env file in the working directory, then TERMFOLIO_* environment
// variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys termfolio does not know are
// reported as an error.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are kept. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Encode returns the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the configuration to path atomically.
func (c *Config) Save(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// Environment variables read by ApplyEnvOverrides.
const (
	EnvCatalog  = "TERMFOLIO_CATALOG"
	EnvTheme    = "TERMFOLIO_THEME"
	EnvLogFile  = "TERMFOLIO_LOG_FILE"
	EnvLogLevel = "TERMFOLIO_LOG_LEVEL"
	EnvUser     = "TERMFOLIO_USER"
	EnvHost     = "TERMFOLIO_HOST"
	EnvHome     = "TERMFOLIO_HOME"
	EnvMaxWidth = "TERMFOLIO_MAX_WIDTH"
)

// ApplyEnvOverrides applies TERMFOLIO_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvUser); v != "" {
		c.Prompt.User = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		c.Prompt.Host = v
	}
	if v := os.Getenv(EnvHome); v != "" {
		c.Prompt.Home = v
	}
	if v := os.Getenv(EnvMaxWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.MaxWidth = n
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns nil or a ValidateErrors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if strings.TrimSpace(c.Prompt.User) == "" || strings.ContainsAny(c.Prompt.User, " /@") {
		errs = append(errs, ValidationError{
			Field:   "prompt.user",
			Message: fmt.Sprintf("invalid user '%s', must be a non-empty name without spaces, '/' or '@'", c.Prompt.User),
		})
	}
	if strings.TrimSpace(c.Prompt.Host) == "" || strings.ContainsAny(c.Prompt.Host, " /@") {
		errs = append(errs, ValidationError{
			Field:   "prompt.host",
			Message: fmt.Sprintf("invalid host '%s', must be a non-empty name without spaces, '/' or '@'", c.Prompt.Host),
		})
	}
	if c.Prompt.Home != "" && !strings.HasPrefix(c.Prompt.Home, "/") {
		errs = append(errs, ValidationError{
			Field:   "prompt.home",
			Message: fmt.Sprintf("home '%s' must be an absolute path", c.Prompt.Home),
		})
	}

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}
	if c.UI.MaxWidth < 0 || (c.UI.MaxWidth > 0 && c.UI.MaxWidth < 40) {
		errs = append(errs, ValidationError{
			Field:   "ui.max_width",
			Message: fmt.Sprintf("max_width %d must be 0 (no cap) or at least 40", c.UI.MaxWidth),
		})
	}
	seen := make(map[string]bool)
	for i, q := range c.UI.QuickCommands {
		name := strings.ToLower(strings.TrimSpace(q))
		field := fmt.Sprintf("ui.quick_commands[%d]", i)
		switch {
		case name == "":
			errs = append(errs, ValidationError{Field: field, Message: "must not be empty"})
		case seen[name]:
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("duplicate command '%s'", q)})
		}
		seen[name] = true
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true, "": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateQuickCommands checks ui.quick_commands against the known command
// names.
func (c *Config) ValidateQuickCommands(known []string) error {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	var errs ValidateErrors
	for i, q := range c.UI.QuickCommands {
		if !set[strings.ToLower(strings.TrimSpace(q))] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("ui.quick_commands[%d]", i),
				Message: fmt.Sprintf("unknown command '%s'", q),
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads the default config file on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
