package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8000", cfg.Server.Addr)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "database.db", cfg.Database.Path)
	require.Equal(t, 1, cfg.Database.MaxOpenConns)
	require.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "", cfg.Log.File)
	require.True(t, cfg.Log.Compress)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RECORDS_SERVER_ADDR", ":9090")
	t.Setenv("RECORDS_DATABASE_PATH", "/tmp/records.db")
	t.Setenv("RECORDS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "/tmp/records.db", cfg.Database.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  path: data/app.db\n  maxopenconns: 4\nlog:\n  format: json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "data/app.db", cfg.Database.Path)
	require.Equal(t, 4, cfg.Database.MaxOpenConns)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"# comment\nexport RECORDS_TEST_DOTENV_NEW=\"fresh\"\nRECORDS_TEST_DOTENV_SET=ignored\nRECORDS_SERVER_ADDR=:7070\n",
	), 0o600))
	t.Setenv("RECORDS_TEST_DOTENV_SET", "kept")
	t.Cleanup(func() {
		os.Unsetenv("RECORDS_TEST_DOTENV_NEW")
		os.Unsetenv("RECORDS_SERVER_ADDR")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, "fresh", os.Getenv("RECORDS_TEST_DOTENV_NEW"))
	require.Equal(t, "kept", os.Getenv("RECORDS_TEST_DOTENV_SET"))
}
