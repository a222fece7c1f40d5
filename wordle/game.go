package wordle

import (
	mapset "github.com/deckarep/golang-set"
)

// GuessResult is one trial of a game
type GuessResult struct {
	Guess   Word
	Trial   int // 1 based
	Solved  bool
	Pattern Pattern
}

// History of guesses in trial order
type History []GuessResult

// Record appends a guess with feedback from a game where the secret is not known,
// for example the feedback typed in from the online version.
func (h History) Record(guess Word, pattern Pattern) History {
	ret := make(History, len(h), len(h)+1)
	copy(ret, h)
	return append(ret, GuessResult{
		Guess:   guess,
		Trial:   len(h) + 1,
		Solved:  pattern == AllCorrect,
		Pattern: pattern,
	})
}

func (h History) Solved() bool {
	return len(h) > 0 && h[len(h)-1].Solved
}

// Constraints gathered from every trial in the history.
// Recomputed each time so they can never drift from the feedback.
func (h History) Constraints() Constraints {
	c := Constraints{Tried: mapset.NewThreadUnsafeSet()}
	var absent, known LetterSet
	for _, result := range h {
		for i, status := range result.Pattern.Statuses() {
			letter := result.Guess[i]
			switch status {
			case Correct:
				c.Correct[i] = letter
				known = known.Add(letter)
			case Present:
				c.Present = append(c.Present, letter)
				known = known.Add(letter)
			case Absent:
				absent = absent.Add(letter)
			}
		}
		c.Tried.Add(result.Guess)
	}
	c.Absent = absent &^ known
	return c
}

// Game against a known secret. Not safe for concurrent use.
type Game struct {
	secret  Word
	history History
}

func NewGame(secret Word) *Game {
	return &Game{secret: secret}
}

func (g *Game) Secret() Word {
	return g.secret
}

// Check scores the guess and appends it to the history
func (g *Game) Check(guess Word) GuessResult {
	pattern, solved := Check(g.secret, guess)
	result := GuessResult{
		Guess:   guess,
		Trial:   len(g.history) + 1,
		Solved:  solved,
		Pattern: pattern,
	}
	g.history = append(g.history, result)
	return result
}

// Submit is Check for a guess typed in by a person, nothing is recorded on error
func (g *Game) Submit(guess string) (GuessResult, error) {
	if _, _, err := CheckString(g.secret.String(), guess); err != nil {
		return GuessResult{}, err
	}
	return g.Check(MustParseWord(guess)), nil
}

// History returns a copy of the trials so far
func (g *Game) History() History {
	ret := make(History, len(g.history))
	copy(ret, g.history)
	return ret
}

func (g *Game) Trials() int {
	return len(g.history)
}

func (g *Game) Solved() bool {
	return g.history.Solved()
}

func (g *Game) Constraints() Constraints {
	return g.history.Constraints()
}
