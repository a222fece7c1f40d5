// Package render draws feedback for the console.
package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/powellquiring/wordlebot/wordle"
)

const glyph = "■"

var statusColors = map[wordle.LetterStatus]*color.Color{
	wordle.Absent:  color.New(color.FgHiBlack),
	wordle.Present: color.New(color.FgYellow),
	wordle.Correct: color.New(color.FgGreen),
}

// Glyphs draws a colored square per letter. Without color the r,y,g letters are
// used since plain squares would all look the same.
func Glyphs(p wordle.Pattern) string {
	if color.NoColor {
		return strings.Join(strings.Split(p.String(), ""), " ")
	}
	squares := make([]string, 0, wordle.Length)
	for _, s := range p.Statuses() {
		squares = append(squares, statusColors[s].Sprint(glyph))
	}
	return strings.Join(squares, " ")
}

// Letters draws the guess with each letter in the color of its status
func Letters(guess wordle.Word, p wordle.Pattern) string {
	if color.NoColor {
		return guess.String()
	}
	var b strings.Builder
	for i, s := range p.Statuses() {
		b.WriteString(statusColors[s].Sprint(string(guess[i])))
	}
	return b.String()
}

// Result is one line of a game, glyphs then the colored guess
func Result(r wordle.GuessResult) string {
	return Glyphs(r.Pattern) + ": " + Letters(r.Guess, r.Pattern)
}
