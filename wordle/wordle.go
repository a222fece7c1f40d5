package wordle

import (
	"errors"
	"fmt"
	"strconv"
)

// Length is the number of letters in every word.
const Length = 5

// PatternCount is the number of distinct feedback patterns, 3^Length.
const PatternCount = 243

var (
	ErrLengthMismatch = errors.New("word length not matched")
	ErrInvalidLetter  = errors.New("word must be lowercase a-z")
	ErrInvalidPattern = errors.New("pattern must be 5 of g, y, r")
)

// Word is a five letter lowercase word
type Word [Length]byte

// LetterStatus is the feedback for one letter of a guess
type LetterStatus uint8

const (
	Absent LetterStatus = iota
	Present
	Correct
)

func (s LetterStatus) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return "LetterStatus(" + strconv.Itoa(int(s)) + ")"
}

// Pattern holds the status of each letter in base 3, position 0 is the most significant digit
type Pattern uint8

// AllCorrect is the pattern of a solved guess
const AllCorrect Pattern = PatternCount - 1

func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != Length {
		return w, fmt.Errorf("%q: %w", s, ErrLengthMismatch)
	}
	for i := range Length {
		if s[i] < 'a' || s[i] > 'z' {
			return w, fmt.Errorf("%q: %w", s, ErrInvalidLetter)
		}
		w[i] = s[i]
	}
	return w, nil
}

// MustParseWord is ParseWord for literals known to be valid
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	return string(w[:])
}

// Contains reports whether letter occurs anywhere in w
func (w Word) Contains(letter byte) bool {
	for _, l := range w {
		if l == letter {
			return true
		}
	}
	return false
}

// Distinct reports whether no letter of w repeats
func (w Word) Distinct() bool {
	var seen LetterSet
	for _, l := range w {
		if seen.Has(l) {
			return false
		}
		seen = seen.Add(l)
	}
	return true
}

func NewPattern(statuses ...LetterStatus) Pattern {
	if len(statuses) != Length {
		panic("pattern needs " + strconv.Itoa(Length) + " statuses, got " + strconv.Itoa(len(statuses)))
	}
	p := Pattern(0)
	for _, s := range statuses {
		p = p*3 + Pattern(s)
	}
	return p
}

// ParsePattern reads the r,y,g notation, for example rrygy
func ParsePattern(colors string) (Pattern, error) {
	if len(colors) != Length {
		return 0, fmt.Errorf("%q: %w", colors, ErrInvalidPattern)
	}
	p := Pattern(0)
	for i := range Length {
		p *= 3
		switch colors[i] {
		case 'r':
			p += Pattern(Absent)
		case 'y':
			p += Pattern(Present)
		case 'g':
			p += Pattern(Correct)
		default:
			return 0, fmt.Errorf("%q: %w", colors, ErrInvalidPattern)
		}
	}
	return p, nil
}

// Status of the letter at position i
func (p Pattern) Status(i int) LetterStatus {
	for range Length - 1 - i {
		p /= 3
	}
	return LetterStatus(p % 3)
}

func (p Pattern) Statuses() [Length]LetterStatus {
	var ret [Length]LetterStatus
	for i := Length - 1; i >= 0; i-- {
		ret[i] = LetterStatus(p % 3)
		p /= 3
	}
	return ret
}

func (p Pattern) String() string {
	if p >= PatternCount {
		panic("Can not parse Pattern: " + strconv.Itoa(int(p)))
	}
	ret := make([]byte, Length)
	for i, s := range p.Statuses() {
		switch s {
		case Absent:
			ret[i] = 'r'
		case Present:
			ret[i] = 'y'
		case Correct:
			ret[i] = 'g'
		}
	}
	return string(ret)
}

// Check scores guess against secret.
// Words in the dictionary never repeat a letter so a letter found anywhere in the
// secret is present, there is no need to count how many times it occurs.
func Check(secret, guess Word) (Pattern, bool) {
	p := Pattern(0)
	for i, letter := range guess {
		p *= 3
		if secret[i] == letter {
			p += Pattern(Correct)
		} else if secret.Contains(letter) {
			p += Pattern(Present)
		}
	}
	return p, secret == guess
}

// CheckString is Check for unvalidated input
func CheckString(secret, guess string) (Pattern, bool, error) {
	if len(secret) != len(guess) {
		return 0, false, fmt.Errorf("secret %d letters, guess %q: %w", len(secret), guess, ErrLengthMismatch)
	}
	s, err := ParseWord(secret)
	if err != nil {
		return 0, false, err
	}
	g, err := ParseWord(guess)
	if err != nil {
		return 0, false, err
	}
	p, solved := Check(s, g)
	return p, solved, nil
}
