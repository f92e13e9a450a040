// Package config loads and saves the bizlens TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment overrides, applied over the config file.
const (
	EnvDataFile   = "BIZLENS_DATA_FILE"
	EnvAddr       = "BIZLENS_ADDR"
	EnvOllamaHost = "BIZLENS_OLLAMA_HOST"
)

// Config holds all bizlens configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Display   DisplayConfig   `toml:"display"`
	Server    ServerConfig    `toml:"server"`
	Retrieval RetrievalConfig `toml:"retrieval"`
}

// GeneralConfig says where the business data lives.
type GeneralConfig struct {
	DataFile    string `toml:"data_file,omitempty"`
	Sheet       string `toml:"sheet,omitempty"`
	SQLiteTable string `toml:"sqlite_table,omitempty"`
}

// DisplayConfig holds formatting and theme settings.
type DisplayConfig struct {
	// CurrencySymbol overrides the symbol picked from the data's unit.
	CurrencySymbol string `toml:"currency_symbol,omitempty"`
	GroupDigits    bool   `toml:"group_digits"`
	Theme          string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr        string `toml:"addr"`
	HistorySize int    `toml:"history_size"`
}

// RetrievalConfig holds embedding search settings.
type RetrievalConfig struct {
	OllamaHost string  `toml:"ollama_host"`
	EmbedModel string  `toml:"embed_model"`
	TopK       int     `toml:"top_k"`
	MinScore   float64 `toml:"min_score"`
	TimeoutSec int     `toml:"timeout_sec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:        "127.0.0.1:8088",
			HistorySize: 100,
		},
		Retrieval: RetrievalConfig{
			OllamaHost: "http://127.0.0.1:11434",
			EmbedModel: "nomic-embed-text",
			TopK:       3,
			MinScore:   0.2,
			TimeoutSec: 30,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bizlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bizlens")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes cfg to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's own config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// GetDataFile returns the data file from env var or config, in that order.
func GetDataFile(cfg Config) string {
	return envOr(EnvDataFile, cfg.General.DataFile)
}

// GetAddr returns the HTTP listen address from env var or config.
func GetAddr(cfg Config) string {
	return envOr(EnvAddr, cfg.Server.Addr)
}

// GetOllamaHost returns the Ollama base URL from env var or config.
func GetOllamaHost(cfg Config) string {
	return strings.TrimRight(envOr(EnvOllamaHost, cfg.Retrieval.OllamaHost), "/")
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
