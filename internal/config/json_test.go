package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"database_dsn":    "postgres://db/gatepass",
		"connect_timeout": "3s",
		"log_level":       "warn",
		"password_cost":   12,
		"username":        "root",
		"email":           "root@hostel.com",
		"password":        "s3cret",
		"noinput":         true,
	})

	t.Run("loads every field", func(t *testing.T) {
		setArgs(t, "-config", full)

		cfg := &Config{}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "postgres://db/gatepass", cfg.DatabaseDSN)
		assert.Equal(t, 3*time.Second, cfg.ConnectTimeout)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 12, cfg.PasswordCost)
		assert.Equal(t, "root", cfg.UserName)
		assert.Equal(t, "root@hostel.com", cfg.Email)
		assert.Equal(t, "s3cret", cfg.Password)
		assert.True(t, cfg.NoInput)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"email": "ops@hostel.com"})
		setArgs(t, "-c", partial)

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "ops@hostel.com", cfg.Email)
		assert.Equal(t, "admin", cfg.UserName)
		assert.Equal(t, "admin123", cfg.Password)
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		setArgs(t)

		cfg := &Config{UserName: "keep"}
		require.NoError(t, parseJson(cfg))
		assert.Equal(t, "keep", cfg.UserName)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		setArgs(t, "-c", bad)

		require.Error(t, parseJson(&Config{}))
	})
}
