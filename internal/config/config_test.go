package config_test

import (
	"agenthub/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("missing.yml")
	require.NoError(t, err)
	require.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	require.Equal(t, "Preprod", cfg.Cardano.Network)
	require.EqualValues(t, 50, cfg.Marketplace.DefaultPageSize)
	require.EqualValues(t, 100, cfg.Marketplace.MaxPageSize)
	require.Equal(t, 3, cfg.Marketplace.DefaultDemoLimit)
	require.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
database:
  driver: postgres
  name: market
cardano:
  network: Mainnet
`), 0o600))
	t.Setenv("CARDANO_NETWORK", "Preprod")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	require.Equal(t, "market", cfg.Database.DatabaseName)
	require.Equal(t, "Preprod", cfg.Cardano.Network)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_MODEL=gemini-test\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("GEMINI_MODEL") })

	cfg, err := config.Load("missing.yml")
	require.NoError(t, err)
	require.Equal(t, "gemini-test", cfg.Gemini.Model)
}
