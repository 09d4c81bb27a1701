package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TOTOTIME_DB", "TOTOTIME_LOG_LEVEL", "TOTOTIME_LOG_FILE",
		"TOTOTIME_BUDDY", "TOTOTIME_BUDDY_TIMEOUT", "TOTOTIME_BUDDY_SHARE_NAME", "TOTOTIME_LLM_PROVIDER",
		"TOTOTIME_ANTHROPIC_API_KEY", "TOTOTIME_OPENAI_MODEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
	assert.True(t, cfg.Buddy.Enabled)
	assert.Equal(t, 8*time.Second, cfg.Buddy.Timeout)
	assert.False(t, cfg.Buddy.ShareName, "the name stays local unless asked")
	assert.Equal(t, def.LLM.Retry.MaxAttempts, cfg.LLM.Retry.MaxAttempts)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /tmp/from-file.db
log:
  level: debug
  file: ""
buddy:
  enabled: false
  timeout: 3s
llm:
  provider: openai
  openai:
    model: gpt-4o
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.False(t, cfg.Buddy.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Buddy.Timeout)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	// Untouched nested defaults survive a partial file.
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)

	t.Setenv("TOTOTIME_DB", "/tmp/from-env.db")
	t.Setenv("TOTOTIME_BUDDY", "true")
	t.Setenv("TOTOTIME_BUDDY_SHARE_NAME", "true")
	t.Setenv("TOTOTIME_OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("TOTOTIME_ANTHROPIC_API_KEY", "sk-test")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	assert.True(t, cfg.Buddy.Enabled)
	assert.True(t, cfg.Buddy.ShareName)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "sk-test", cfg.LLM.Anthropic.APIKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))
	_, err := Load(path)
	assert.ErrorContains(t, err, "log level")

	require.NoError(t, os.WriteFile(path, []byte("log: [oops"), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parse config")

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	t.Setenv("TOTOTIME_BUDDY_TIMEOUT", "soon")
	_, err = Load(path)
	assert.ErrorContains(t, err, "parse env")
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DBPath = "/data/toto.db"
	cfg.LLM.Provider = "gemini"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/toto.db", loaded.DBPath)
	assert.Equal(t, "gemini", loaded.LLM.Provider)
}

func TestRedacted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.OpenAI.APIKey = "sk-1234567890"

	red := cfg.Redacted()
	assert.NotContains(t, red.LLM.OpenAI.APIKey, "1234567")
	assert.Equal(t, "sk-1234567890", cfg.LLM.OpenAI.APIKey, "original untouched")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("TOTOTIME_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "tototime", "config.yaml"), DefaultPath())

	t.Setenv("TOTOTIME_CONFIG", "/etc/toto.yaml")
	assert.Equal(t, "/etc/toto.yaml", DefaultPath())
}
