package solver

import (
	"context"
	"testing"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	solved := testutil.ToFloat64(gamesTotal.WithLabelValues(DictionaryName, "solved"))
	unsolved := testutil.ToFloat64(gamesTotal.WithLabelValues(RandomName, "unsolved"))
	fallbacks := testutil.ToFloat64(fallbacksTotal.WithLabelValues(DictionaryName))
	scored := testutil.ToFloat64(guessesScored)

	d := load(t, "cloth", "dumpy", "block")
	_, err := New(NewDictionary(d, NewRand(1))).Solve(context.Background(), wordle.NewGame(W("block")))
	require.NoError(t, err)
	assert.Equal(t, solved+1, testutil.ToFloat64(gamesTotal.WithLabelValues(DictionaryName, "solved")))

	_, err = New(NewRandom(NewRand(1)), WithMaxTrial(2)).Solve(context.Background(), wordle.NewGame(W("block")))
	require.NoError(t, err)
	assert.Equal(t, unsolved+1, testutil.ToFloat64(gamesTotal.WithLabelValues(RandomName, "unsolved")))

	_, err = New(NewDictionary(load(t, "abcde"), NewRand(1)), WithMaxTrial(3), WithFallback(NewRandom(NewRand(1)))).
		Solve(context.Background(), wordle.NewGame(W("crane")))
	require.NoError(t, err)
	assert.Equal(t, fallbacks+2, testutil.ToFloat64(fallbacksTotal.WithLabelValues(DictionaryName)))

	_, err = NewRanker(WithWorkers(2)).Rank(context.Background(), d.Words())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, testutil.ToFloat64(guessesScored), scored+3)
}
