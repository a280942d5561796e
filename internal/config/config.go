// Package config loads runtime configuration from defaults, an
// optional TOML file, and TODOTUI_* environment variables, in that
// priority order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvTest       = "test"
	EnvProduction = "production"
)

type CreditsConfig struct {
	TestEndpoint       string `toml:"test_endpoint"`
	ProductionEndpoint string `toml:"production_endpoint"`
	Token              string `toml:"token"`
}

type Config struct {
	// Environment selects which credits endpoint is used.
	Environment string        `toml:"environment"`
	DBPath      string        `toml:"db_path"`
	LogPath     string        `toml:"log_path"`
	Credits     CreditsConfig `toml:"credits"`
}

func Default() Config {
	base := stateDir()
	return Config{
		Environment: EnvProduction,
		DBPath:      filepath.Join(base, "todotui.db"),
		LogPath:     filepath.Join(base, "todotui.log"),
		Credits: CreditsConfig{
			TestEndpoint:       "http://localhost:8787/credits",
			ProductionEndpoint: "https://credits.todotui.dev/credits",
		},
	}
}

// Load resolves configuration: defaults, then the config file (the
// first of ./todotui.toml and <user config dir>/todotui/todotui.toml
// that exists), then environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := findConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	loadFromEnv(&cfg)

	if cfg.Environment != EnvTest && cfg.Environment != EnvProduction {
		return Config{}, fmt.Errorf("config: unknown environment %q", cfg.Environment)
	}
	return cfg, nil
}

// CreditsEndpoint returns the endpoint matching the selected
// environment.
func (c Config) CreditsEndpoint() string {
	if c.Environment == EnvTest {
		return c.Credits.TestEndpoint
	}
	return c.Credits.ProductionEndpoint
}

func findConfigFile() string {
	candidates := []string{"todotui.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "todotui", "todotui.toml"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func loadFromEnv(cfg *Config) {
	if v, ok := getEnvString("TODOTUI_ENVIRONMENT"); ok {
		cfg.Environment = strings.ToLower(v)
	}
	if v, ok := getEnvString("TODOTUI_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TODOTUI_LOG_PATH"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvString("TODOTUI_CREDITS_TEST_ENDPOINT"); ok {
		cfg.Credits.TestEndpoint = v
	}
	if v, ok := getEnvString("TODOTUI_CREDITS_ENDPOINT"); ok {
		cfg.Credits.ProductionEndpoint = v
	}
	if v, ok := getEnvString("TODOTUI_CREDITS_TOKEN"); ok {
		cfg.Credits.Token = v
	}
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func stateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "todotui")
	}
	return "."
}
