package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "raise", cfg.OpeningWord().String())
}

func TestFile(t *testing.T) {
	path := writeFile(t, `
strategy: dictionary
max_trial: 12
opening: crane
workers: 3
seed: 7
search_timeout: 1500ms
fallback_random: true
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dictionary", cfg.Strategy)
	assert.Equal(t, 12, cfg.MaxTrial)
	assert.Equal(t, "crane", cfg.Opening)
	assert.Equal(t, 3, cfg.Workers)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), cfg.SeedOrClock())
	assert.Equal(t, 1500*time.Millisecond, cfg.SearchTimeout)
	assert.True(t, cfg.Fallback)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "strategy: dictionary\nmax_trial: 12\n")
	t.Setenv("WORDLE_STRATEGY", "random")
	t.Setenv("WORDLE_SEED", "99")
	t.Setenv("WORDLE_SEARCH_TIMEOUT", "2s")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Strategy)
	assert.Equal(t, 12, cfg.MaxTrial)
	assert.Equal(t, uint64(99), cfg.SeedOrClock())
	assert.Equal(t, 2*time.Second, cfg.SearchTimeout)
}

func TestInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"strategy":  "strategy: minimax\n",
		"max_trial": "max_trial: 0\n",
		"opening":   "opening: toolong\n",
		"workers":   "workers: -1\n",
		"log_level": "log_level: loud\n",
	} {
		_, err := Load(writeFile(t, content))
		assert.ErrorIs(t, err, ErrInvalid, name)
	}

	t.Setenv("WORDLE_MAX_TRIAL", "many")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
