package render

import (
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/powellquiring/wordlebot/wordle"
	"github.com/stretchr/testify/assert"
)

func noColor(t *testing.T, off bool) {
	saved := color.NoColor
	color.NoColor = off
	t.Cleanup(func() { color.NoColor = saved })
}

func TestPlain(t *testing.T) {
	noColor(t, true)
	p, _ := wordle.Check(wordle.MustParseWord("train"), wordle.MustParseWord("raise"))
	assert.Equal(t, "y y y r r", Glyphs(p))
	assert.Equal(t, "raise", Letters(wordle.MustParseWord("raise"), p))
	r := wordle.GuessResult{Guess: wordle.MustParseWord("raise"), Trial: 1, Pattern: p}
	assert.Equal(t, "y y y r r: raise", Result(r))
}

func TestColor(t *testing.T) {
	if os.Getenv("NO_COLOR") != "" {
		t.Skip("NO_COLOR set")
	}
	noColor(t, false)
	g := Glyphs(wordle.AllCorrect)
	assert.Contains(t, g, glyph)
	assert.Contains(t, g, "\x1b[32m")
	assert.NotContains(t, g, "\x1b[33m")
	l := Letters(wordle.MustParseWord("crane"), wordle.NewPattern(wordle.Present, wordle.Absent, wordle.Absent, wordle.Absent, wordle.Absent))
	assert.Contains(t, l, "\x1b[33mc")

	r := wordle.GuessResult{Guess: wordle.MustParseWord("crane"), Trial: 1, Solved: true, Pattern: wordle.AllCorrect}
	assert.Contains(t, Result(r), "\x1b[32mc")
}
