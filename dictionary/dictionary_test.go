package dictionary

import (
	"strings"
	"testing"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(d *Dictionary) []string {
	ret := []string{}
	for _, w := range d.Words() {
		ret = append(ret, w.String())
	}
	return ret
}

func toStrings(ws []wordle.Word) []string {
	ret := make([]string, len(ws))
	for i, w := range ws {
		ret[i] = w.String()
	}
	return ret
}

func TestDedup(t *testing.T) {
	assert.Equal(t, "aple", Dedup("apple"))
	assert.Equal(t, "train", Dedup("train"))
	assert.Equal(t, "alrm", Dedup("alarm"))
	assert.Equal(t, "", Dedup(""))
}

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader("apple\ntrain\nalarm\r\ncrane\ntrain\nabcdea\nab1de\nshort\n"))
	require.NoError(t, err)
	// abcdea has six letters but only five different ones
	assert.Equal(t, []string{"train", "crane", "abcde", "short"}, words(d))
	assert.Equal(t, 4, d.Len())
	assert.True(t, d.Contains(wordle.MustParseWord("crane")))
	assert.False(t, d.Contains(wordle.MustParseWord("apple")))
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Greater(t, d.Len(), 500)
	for _, w := range d.Words() {
		assert.True(t, w.Distinct(), w.String())
	}
	assert.True(t, d.Contains(wordle.MustParseWord("crane")))
	assert.True(t, d.Contains(wordle.MustParseWord("raise")))
	assert.Same(t, d, Default())
}

func constraints(secret string, guesses ...string) wordle.Constraints {
	g := wordle.NewGame(wordle.MustParseWord(secret))
	for _, guess := range guesses {
		g.Check(wordle.MustParseWord(guess))
	}
	return g.Constraints()
}

func TestFilterEmptyConstraints(t *testing.T) {
	d := Default()
	assert.Equal(t, d.Words(), d.Filter(constraints("crane")))
}

func TestFilter(t *testing.T) {
	d := Default()
	c := constraints("crane", "raise")
	matching := d.Filter(c)
	require.NotEmpty(t, matching)
	assert.Contains(t, toStrings(matching), "crane")
	assert.NotContains(t, toStrings(matching), "raise")
	for _, w := range matching {
		assert.True(t, c.Allows(w), w.String())
	}
	assert.Equal(t, Filter(d.Words(), c), matching)
}

func TestFilterKeepsLoadOrder(t *testing.T) {
	d, err := Load(strings.NewReader("trace\ncrane\nbrace\ngrace\ncrate\n"))
	require.NoError(t, err)
	c := constraints("grace", "moldy")
	assert.Equal(t, []string{"trace", "crane", "brace", "grace", "crate"}, toStrings(d.Filter(c)))
	c = constraints("grace", "brace")
	assert.Equal(t, []string{"trace", "grace"}, toStrings(d.Filter(c)))
}

func TestFilterIdempotent(t *testing.T) {
	d := Default()
	histories := [][]string{
		{},
		{"raise"},
		{"raise", "cloth"},
		{"ghost", "pudgy", "brave"},
		{"about", "crane", "crane"},
	}
	for _, secret := range []string{"crane", "ghost", "pilot"} {
		for _, guesses := range histories {
			c := constraints(secret, guesses...)
			once := d.Filter(c)
			twice := New(once).Filter(c)
			assert.Equal(t, once, twice, "%s %v", secret, guesses)
			assert.Equal(t, once, Filter(once, c))
		}
	}
}

func TestFilterNothingLeft(t *testing.T) {
	d, err := Load(strings.NewReader("crane\n"))
	require.NoError(t, err)
	c := constraints("crane", "crane")
	assert.Empty(t, d.Filter(c))
	assert.Empty(t, New(nil).Filter(c))
}

func TestNewDropsInvalidWords(t *testing.T) {
	var zero wordle.Word
	upper := wordle.Word{'C', 'r', 'a', 'n', 'e'}
	repeated := wordle.Word{'a', 'l', 'a', 'r', 'm'}
	d := New([]wordle.Word{zero, wordle.MustParseWord("crane"), upper, repeated, wordle.MustParseWord("crane")})
	assert.Equal(t, []string{"crane"}, words(d))
	assert.False(t, d.Contains(zero))
	assert.Equal(t, []string{"crane"}, toStrings(d.Filter(wordle.History{}.Constraints())))
}
