package solver

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/powellquiring/wordlebot/wordle"
)

// Buckets counts how many candidates give each pattern when guess is played
type Buckets [wordle.PatternCount]int

// ScoreFunc returns the expected information in bits of playing guess
type ScoreFunc func(guess wordle.Word, candidates []wordle.Word) float64

// Entropy in bits of the partition guess makes of the candidates, one bucket per pattern
func Entropy(guess wordle.Word, candidates []wordle.Word) float64 {
	var b Buckets
	for _, secret := range candidates {
		p, _ := wordle.Check(secret, guess)
		b[p]++
	}
	return b.Entropy(len(candidates))
}

// MaskEntropy gives the same result as Entropy by intersecting one candidate set per
// letter status for every one of the 243 patterns. It is much slower and is kept
// to check Entropy against.
func MaskEntropy(guess wordle.Word, candidates []wordle.Word) float64 {
	n := uint(len(candidates))
	var masks [wordle.Length][3]*bitset.BitSet
	for i := range wordle.Length {
		for s := range 3 {
			masks[i][s] = bitset.New(n)
		}
	}
	for c, secret := range candidates {
		for i, letter := range guess {
			switch {
			case secret[i] == letter:
				masks[i][wordle.Correct].Set(uint(c))
			case secret.Contains(letter):
				masks[i][wordle.Present].Set(uint(c))
			default:
				masks[i][wordle.Absent].Set(uint(c))
			}
		}
	}

	var b Buckets
	for p := wordle.Pattern(0); p < wordle.PatternCount; p++ {
		statuses := p.Statuses()
		matching := masks[0][statuses[0]].Clone()
		for i := 1; i < wordle.Length; i++ {
			matching.InPlaceIntersection(masks[i][statuses[i]])
		}
		b[p] = int(matching.Count())
	}
	return b.Entropy(len(candidates))
}

// Entropy of the buckets holding n words, summed in pattern order so every
// way of filling the buckets gives the same bits
func (b *Buckets) Entropy(n int) float64 {
	if n == 0 {
		return 0
	}
	h := 0.0
	for _, count := range b {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

// MaxEntropy is the most information one guess can give, every pattern equally likely
var MaxEntropy = math.Log2(wordle.PatternCount)
