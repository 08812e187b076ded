package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "mood.db", cfg.DBPath)
	assert.False(t, cfg.Verbose)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("MOODKEEPER_DB_PATH", "/tmp/env.db")
	t.Setenv("MOODKEEPER_VERBOSE", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.True(t, cfg.Verbose)
}

func TestParseEnv_IgnoresEmptyAndInvalid(t *testing.T) {
	t.Setenv("MOODKEEPER_DB_PATH", "")
	t.Setenv("MOODKEEPER_VERBOSE", "not-a-bool")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "mood.db", cfg.DBPath)
	assert.False(t, cfg.Verbose)
}

func TestParseJson_PartialFileOverridesNamedFieldsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"db_path":"/tmp/json.db"}`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.Verbose = true
	parseJson(cfg)

	assert.Equal(t, "/tmp/json.db", cfg.DBPath)
	assert.True(t, cfg.Verbose, "field absent from JSON must keep its value")
}

func TestParseJson_NoFileNamedIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "mood.db", cfg.DBPath)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "/tmp/flag.db", "-v"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "/tmp/flag.db", cfg.DBPath)
	assert.True(t, cfg.Verbose)
}
