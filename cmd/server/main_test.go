package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func writeConfig(t *testing.T, dir, dbPath string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("database:\n  path: %s\nlog:\n  level: error\n", dbPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInitDBCreatesSchema(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data", "records.db")
	cfgPath := writeConfig(t, dir, dbPath)

	for i := 0; i < 2; i++ {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"init-db", "--config", cfgPath})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
	}

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('user', 'product')`,
	).Scan(&n))
	require.Equal(t, 2, n)
}

func TestInitDBFailsOnUnusablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	cfgPath := writeConfig(t, dir, filepath.Join(blocker, "records.db"))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"init-db", "--config", cfgPath})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), "records-api dev")
}
