// Package dictionary loads word lists and narrows them down to the words that
// satisfy the constraints gathered during a game.
//
// Only words with five different letters are kept. Each line of a word list is
// reduced to its distinct letters, first occurrence wins, and the result is kept
// when exactly five letters remain:
//
//	train -> train  kept
//	apple -> aple   dropped
//	alarm -> alrm   dropped
//
// The index keeps a bitset of words for every letter and for every letter at
// every position so a filter is a handful of intersections.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/powellquiring/wordlebot/wordle"
)

//go:embed words.txt
var embeddedWords string

type Dictionary struct {
	words []wordle.Word
	index map[wordle.Word]uint
	has   [26]*bitset.BitSet               // has['a'] words containing an a
	at    [wordle.Length][26]*bitset.BitSet // at[0]['a'] words whose first letter is an a
}

var (
	defaultOnce       sync.Once
	defaultDictionary *Dictionary
)

// Default is the word list compiled into the binary
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := Load(strings.NewReader(embeddedWords))
		if err != nil {
			panic("embedded word list: " + err.Error())
		}
		defaultDictionary = d
	})
	return defaultDictionary
}

// Dedup removes repeated letters keeping the first occurrence, apple -> aple
func Dedup(line string) string {
	var seen [256]bool
	ret := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		ret = append(ret, c)
	}
	return string(ret)
}

// ParseLine returns the dictionary word for one line of a word list
func ParseLine(line string) (wordle.Word, bool) {
	deduped := Dedup(strings.TrimSpace(line))
	if len(deduped) != wordle.Length {
		return wordle.Word{}, false
	}
	w, err := wordle.ParseWord(deduped)
	if err != nil {
		return wordle.Word{}, false
	}
	return w, true
}

// Load reads one word per line
func Load(r io.Reader) (*Dictionary, error) {
	words := []wordle.Word{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := ParseLine(sc.Text()); ok {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return New(words), nil
}

func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// New indexes the words, the order is kept. Repeated words and words that are not
// five distinct letters a-z are dropped.
func New(words []wordle.Word) *Dictionary {
	d := &Dictionary{index: make(map[wordle.Word]uint, len(words))}
	for _, w := range words {
		if _, err := wordle.ParseWord(w.String()); err != nil || !w.Distinct() {
			continue
		}
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = uint(len(d.words))
		d.words = append(d.words, w)
	}
	n := uint(len(d.words))
	for l := range 26 {
		d.has[l] = bitset.New(n)
		for i := range wordle.Length {
			d.at[i][l] = bitset.New(n)
		}
	}
	for w, word := range d.words {
		for i, letter := range word {
			d.has[letter-'a'].Set(uint(w))
			d.at[i][letter-'a'].Set(uint(w))
		}
	}
	return d
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words in load order, the caller must not modify the slice
func (d *Dictionary) Words() []wordle.Word {
	return d.words
}

func (d *Dictionary) Word(i int) wordle.Word {
	return d.words[i]
}

func (d *Dictionary) Contains(w wordle.Word) bool {
	_, ok := d.index[w]
	return ok
}

// Filter returns the words allowed by the constraints in load order
func (d *Dictionary) Filter(c wordle.Constraints) []wordle.Word {
	if len(d.words) == 0 {
		return []wordle.Word{}
	}
	matching := bitset.New(uint(len(d.words))).Complement()
	for _, letter := range c.PresentSet().Letters() {
		matching.InPlaceIntersection(d.has[letter-'a'])
	}
	for _, letter := range c.Absent.Letters() {
		matching.InPlaceDifference(d.has[letter-'a'])
	}
	for i, letter := range c.Correct {
		if letter != 0 {
			matching.InPlaceIntersection(d.at[i][letter-'a'])
		}
	}
	for _, w := range c.TriedWords() {
		if i, ok := d.index[w]; ok {
			matching.Clear(i)
		}
	}
	return d.collect(matching)
}

func (d *Dictionary) collect(matching *bitset.BitSet) []wordle.Word {
	indices := make([]uint, matching.Count())
	_, indices = matching.NextSetMany(0, indices)
	ret := make([]wordle.Word, len(indices))
	for i, index := range indices {
		ret[i] = d.words[index]
	}
	return ret
}

// Filter is the unindexed version of Dictionary.Filter for any list of words,
// the order of words is kept
func Filter(words []wordle.Word, c wordle.Constraints) []wordle.Word {
	ret := []wordle.Word{}
	for _, w := range words {
		if c.Allows(w) {
			ret = append(ret, w)
		}
	}
	return ret
}
