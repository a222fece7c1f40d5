package wordle

import (
	mapset "github.com/deckarep/golang-set"
)

// Constraints on the secret derived from a History
type Constraints struct {
	Correct [Length]byte // letter known at each position, 0 when unknown
	Present []byte       // letters flagged present, one entry per flag so letters can repeat
	Absent  LetterSet    // letters not in the secret
	Tried   mapset.Set   // Word values already guessed
}

// PresentSet collapses the duplicates in Present
func (c Constraints) PresentSet() LetterSet {
	var ret LetterSet
	for _, letter := range c.Present {
		ret = ret.Add(letter)
	}
	return ret
}

func (c Constraints) KnownPositions() int {
	n := 0
	for _, letter := range c.Correct {
		if letter != 0 {
			n++
		}
	}
	return n
}

func (c Constraints) WasTried(w Word) bool {
	return c.Tried != nil && c.Tried.Contains(w)
}

// TriedWords in no particular order
func (c Constraints) TriedWords() []Word {
	if c.Tried == nil {
		return nil
	}
	ret := make([]Word, 0, c.Tried.Cardinality())
	for _, w := range c.Tried.ToSlice() {
		ret = append(ret, w.(Word))
	}
	return ret
}

// Empty when nothing is known yet
func (c Constraints) Empty() bool {
	return c.KnownPositions() == 0 && len(c.Present) == 0 && c.Absent == 0 && (c.Tried == nil || c.Tried.Cardinality() == 0)
}

// Allows reports whether w satisfies every constraint
func (c Constraints) Allows(w Word) bool {
	for _, letter := range c.Present {
		if !w.Contains(letter) {
			return false
		}
	}
	for _, letter := range w {
		if c.Absent.Has(letter) {
			return false
		}
	}
	for i, letter := range c.Correct {
		if letter != 0 && w[i] != letter {
			return false
		}
	}
	return !c.WasTried(w)
}
