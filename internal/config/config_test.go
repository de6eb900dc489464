package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Uses defaults when the file is missing", func(t *testing.T) {
		// When: loading from a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the defaults should be applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, DriverSQLite, conf.Storage.Driver)
		assert.Equal(t, "tictactoe.db", conf.Storage.SQLitePath)
		assert.Equal(t, "tictactoe_stats", conf.Keys.Stats)
		assert.Equal(t, "darkMode", conf.Keys.Appearance)
		assert.Equal(t, 3*time.Second, conf.UI.ToastDuration)
		assert.Equal(t, "localhost:6379", conf.Storage.Redis.GetRedisAddr())
		assert.Equal(t, 0, conf.Storage.Redis.DB)
		assert.Equal(t, 2*time.Second, conf.Storage.Redis.Timeout)
	})

	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file selecting redis
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
storage:
  driver: redis
  redis:
    host: cache
    port: "6380"
    db: 3
    timeout: 500ms
keys:
  stats: stats_v2
ui:
  toast-duration: 5s
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the file
		conf, err := Load(path)

		// Then: file values and defaults should be merged
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, "cache:6380", conf.Storage.Redis.GetRedisAddr())
		assert.Equal(t, 3, conf.Storage.Redis.DB)
		assert.Equal(t, 500*time.Millisecond, conf.Storage.Redis.Timeout)
		assert.Equal(t, "stats_v2", conf.Keys.Stats)
		assert.Equal(t, "darkMode", conf.Keys.Appearance)
		assert.Equal(t, 5*time.Second, conf.UI.ToastDuration)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_STORAGE_DRIVER", DriverMemory)

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, DriverMemory, conf.Storage.Driver)
	})

	t.Run("Rejects an unknown driver", func(t *testing.T) {
		t.Setenv("TICTACTOE_STORAGE_DRIVER", "postgres")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrUnknownDriver)
	})
}

func TestMustLoad(t *testing.T) {
	t.Setenv("TICTACTOE_STORAGE_DRIVER", "postgres")

	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	})
}
