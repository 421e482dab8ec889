package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so no stray .env is loaded.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{
		"PORT", "PROMPTSTUDIO_ADDR", "PROMPTSTUDIO_STORAGE", "PROMPTSTUDIO_DB",
		"PROMPTSTUDIO_HISTORY_LIMIT", "PROMPTSTUDIO_RESPONSE_DELAY", "PROMPTSTUDIO_FEEDBACK_DELAY",
		"PROMPTSTUDIO_EXPORT_DIR", "PROMPTSTUDIO_LOG_LEVEL", "PROMPTSTUDIO_LOG_DEVELOPMENT",
	} {
		// Setenv registers the restore; the variable must be absent, not
		// empty, for .env values to apply.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, time.Second, cfg.GetResponseDelay())
	assert.Equal(t, 500*time.Millisecond, cfg.GetFeedbackDelay())
	assert.Equal(t, 5*time.Second, cfg.GetShutdownTimeout())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(filepath.Join(dir, "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}

func TestLoad_YAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "promptstudio.yaml")
	writeFile(t, path, `
server:
  addr: ":9000"
storage:
  driver: sqlite
  dsn: /tmp/versions.db
history:
  limit: 50
simulation:
  response_delay: 10ms
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "5s", cfg.Server.ShutdownTimeout, "unset keys keep defaults")
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/versions.db", cfg.Storage.DSN)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.Equal(t, 10*time.Millisecond, cfg.GetResponseDelay())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "promptstudio.yaml")
	writeFile(t, path, "server:\n  addr: \":9000\"\nlogging:\n  level: warn\nexport:\n  dir: from-yaml\n")
	writeFile(t, filepath.Join(dir, ".env"), "PROMPTSTUDIO_LOG_LEVEL=error\nPROMPTSTUDIO_EXPORT_DIR=from-dotenv\n")

	t.Run("env file beats yaml", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
	})

	t.Run("process env beats env file", func(t *testing.T) {
		t.Setenv("PROMPTSTUDIO_EXPORT_DIR", "from-env")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Export.Dir)
	})

	t.Run("PORT", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Addr)
	})

	t.Run("ADDR beats PORT", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		t.Setenv("PROMPTSTUDIO_ADDR", "127.0.0.1:6060")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:6060", cfg.Server.Addr)
	})
}

func TestLoad_Invalid(t *testing.T) {
	dir := isolate(t)

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "server: [")
		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("bad driver", func(t *testing.T) {
		t.Setenv("PROMPTSTUDIO_STORAGE", "postgres")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid storage driver")
	})

	t.Run("bad delay", func(t *testing.T) {
		t.Setenv("PROMPTSTUDIO_RESPONSE_DELAY", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "simulation.response_delay")
	})

	t.Run("negative history limit", func(t *testing.T) {
		t.Setenv("PROMPTSTUDIO_HISTORY_LIMIT", "-1")
		_, err := Load("")
		assert.Error(t, err)
	})
}
