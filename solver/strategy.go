package solver

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/powellquiring/wordlebot/dictionary"
	"github.com/powellquiring/wordlebot/wordle"
)

var (
	ErrNoCandidates    = errors.New("no candidates remaining")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

const (
	RandomName     = "random"
	DictionaryName = "dictionary"
	EntropyName    = "entropy"
)

// Names of the strategies NewStrategy knows
var Names = []string{RandomName, DictionaryName, EntropyName}

// Strategy picks the next guess for a game
type Strategy interface {
	Name() string
	ChooseGuess(ctx context.Context, game *wordle.Game) (wordle.Word, error)
}

// NewStrategy by name, ranker is only used by the entropy strategy and may be nil
func NewStrategy(name string, d *dictionary.Dictionary, rng *rand.Rand, ranker *Ranker) (Strategy, error) {
	switch name {
	case RandomName:
		return NewRandom(rng), nil
	case DictionaryName:
		return NewDictionary(d, rng), nil
	case EntropyName:
		if ranker == nil {
			ranker = NewRanker()
		}
		return NewEntropy(d, ranker), nil
	}
	return nil, fmt.Errorf("%q, want one of %v: %w", name, Names, ErrUnknownStrategy)
}

// NewRand is a reproducible source for the strategies
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random guesses random letters keeping the letters known to be in the right place.
// The guess may not be a word and there is no promise it ever finds the secret.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (s *Random) Name() string { return RandomName }

func (s *Random) ChooseGuess(ctx context.Context, game *wordle.Game) (wordle.Word, error) {
	var w wordle.Word
	for i := range w {
		w[i] = byte('a' + s.rng.IntN(26))
	}
	for i, letter := range game.Constraints().Correct {
		if letter != 0 {
			w[i] = letter
		}
	}
	return w, nil
}

// Dictionary guesses any word still possible
type Dictionary struct {
	dictionary *dictionary.Dictionary
	rng        *rand.Rand
}

func NewDictionary(d *dictionary.Dictionary, rng *rand.Rand) *Dictionary {
	return &Dictionary{dictionary: d, rng: rng}
}

func (s *Dictionary) Name() string { return DictionaryName }

func (s *Dictionary) ChooseGuess(ctx context.Context, game *wordle.Game) (wordle.Word, error) {
	candidates := s.dictionary.Filter(game.Constraints())
	if len(candidates) == 0 {
		return wordle.Word{}, ErrNoCandidates
	}
	return candidates[s.rng.IntN(len(candidates))], nil
}

// EntropyStrategy guesses the possible word that splits the possible words into the most
// even groups of feedback patterns
type EntropyStrategy struct {
	dictionary *dictionary.Dictionary
	ranker     *Ranker
}

func NewEntropy(d *dictionary.Dictionary, ranker *Ranker) *EntropyStrategy {
	return &EntropyStrategy{dictionary: d, ranker: ranker}
}

func (s *EntropyStrategy) Name() string { return EntropyName }

func (s *EntropyStrategy) ChooseGuess(ctx context.Context, game *wordle.Game) (wordle.Word, error) {
	return s.Suggest(ctx, game.Constraints())
}

// Suggest works from constraints alone, the secret does not need to be known
func (s *EntropyStrategy) Suggest(ctx context.Context, c wordle.Constraints) (wordle.Word, error) {
	candidates := s.dictionary.Filter(c)
	if c.WasTried(s.ranker.Opening()) {
		// an opening word outside the dictionary can leave every word possible
		return s.ranker.Best(ctx, candidates)
	}
	return s.ranker.BestGuess(ctx, candidates, s.dictionary.Words())
}
