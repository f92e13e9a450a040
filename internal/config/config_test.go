package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.General.DataFile = "/data/biz.csv"
	cfg.Display.GroupDigits = true
	cfg.Server.HistorySize = 7

	require.NoError(t, SaveFile(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general]\ndata_file = \"x.xlsx\"\nsheet = \"2023\"\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x.xlsx", cfg.General.DataFile)
	assert.Equal(t, "2023", cfg.General.Sheet)
	assert.Equal(t, "127.0.0.1:8088", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o600))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataFile = "from-config.csv"

	t.Setenv(EnvDataFile, "")
	assert.Equal(t, "from-config.csv", GetDataFile(cfg))

	t.Setenv(EnvDataFile, "from-env.csv")
	t.Setenv(EnvAddr, ":9999")
	t.Setenv(EnvOllamaHost, "http://gpu:11434/")
	assert.Equal(t, "from-env.csv", GetDataFile(cfg))
	assert.Equal(t, ":9999", GetAddr(cfg))
	assert.Equal(t, "http://gpu:11434", GetOllamaHost(cfg))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvAddr+"=0.0.0.0:7000\n"), 0o600))

	t.Setenv(EnvAddr, "")
	require.NoError(t, os.Unsetenv(EnvAddr))
	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "0.0.0.0:7000", os.Getenv(EnvAddr))
}

func TestResolveCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", ResolveCurrencySymbol("usd", "INR", "₹"))
	assert.Equal(t, "Kč", ResolveCurrencySymbol("Kč", "INR", "₹"))
	assert.Equal(t, "€", ResolveCurrencySymbol("", "eur", "₹"))
	assert.Equal(t, "₹", ResolveCurrencySymbol("", "", "₹"))
	assert.Equal(t, "₹", ResolveCurrencySymbol("", "%", "₹"))
}
