package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powellquiring/wordlebot/config"
	"github.com/powellquiring/wordlebot/dictionary"
	"github.com/powellquiring/wordlebot/solver"
	"github.com/powellquiring/wordlebot/wordle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	history, err := parsePairs([]string{"raise", "yyrrg", "trace", "rggyg"})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[1].Trial)
	assert.Equal(t, "rggyg", history[1].Pattern.String())
	assert.False(t, history.Solved())

	c := history.Constraints()
	assert.True(t, c.Allows(wordle.MustParseWord("crane")))

	history, err = parsePairs([]string{"crane", "ggggg"})
	require.NoError(t, err)
	assert.True(t, history.Solved())
}

func TestParsePairsErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"odd":     {"raise"},
		"guess":   {"rais", "rrrrr"},
		"pattern": {"raise", "rrxrr"},
	} {
		_, err := parsePairs(args)
		assert.Error(t, err, name)
	}
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, "debug", newLogger("debug").GetLevel().String())
	assert.Equal(t, "warn", newLogger("loud").GetLevel().String())
}

func TestLoadDictionaryWithoutWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nalarm\n"), 0o600))
	_, err := loadDictionary(path, 0)
	assert.ErrorIs(t, err, solver.ErrNoCandidates)

	d, err := loadDictionary("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Len())
}

func TestSolveOneEmptyDictionary(t *testing.T) {
	empty, err := dictionary.Load(strings.NewReader("apple\nalarm\n"))
	require.NoError(t, err)
	globalConfig := GlobalConfiguration{config: config.Default(), dictionary: empty, log: zerolog.Nop()}
	_, err = solveOne(context.Background(), globalConfig, "", nil)
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
}

func TestSolveOneFirstGuesses(t *testing.T) {
	globalConfig := GlobalConfiguration{config: config.Default(), dictionary: dictionary.Default(), log: zerolog.Nop()}
	solved, err := solveOne(context.Background(), globalConfig, "crane", []string{"ghost", "crane"})
	require.NoError(t, err)
	assert.True(t, solved)

	_, err = solveOne(context.Background(), globalConfig, "crane", []string{"cranes"})
	assert.ErrorIs(t, err, wordle.ErrLengthMismatch)
}

func TestCPUProfile(t *testing.T) {
	t.Chdir(t.TempDir())
	stop, err := cpuProfile()
	require.NoError(t, err)
	stop()
	assert.FileExists(t, "cpu.prof")
}
