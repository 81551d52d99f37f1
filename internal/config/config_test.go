package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config that only names the second seat
		path := writeConfig(t, "second:\n  kind: human\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: every other value falls back to its default
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 1, conf.Games)
		assert.Equal(t, Seat{Kind: "bot", Depth: 2}, conf.First)
		assert.Equal(t, "human", conf.Second.Kind)
		assert.Equal(t, 1, conf.Search.Workers)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("File values win over defaults", func(t *testing.T) {
		path := writeConfig(t, "log-level: debug\ngames: 5\nfirst:\n  kind: bot\n  depth: 4\nredis:\n  enabled: true\n  port: \"6380\"\n  ttl: 1m\n")

		conf := MustLoad(path)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.Games)
		assert.Equal(t, 4, conf.First.Depth)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, time.Minute, conf.Redis.TTL)
		assert.Equal(t, "localhost:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
