// Package solver plays wordle against a known secret.
//
// A Strategy chooses each guess from the constraints the game has gathered so
// far. The entropy strategy scores every remaining candidate by the Shannon
// entropy of the feedback patterns it would produce against the remaining
// candidates and plays the best one; scoring is spread over a worker pool.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/rs/zerolog"
)

const DefaultMaxTrial = 100

// Outcome of a game, running out of trials is not an error
type Outcome struct {
	Solved  bool
	Trials  int
	History wordle.History
}

type Solver struct {
	strategy Strategy
	fallback Strategy
	maxTrial int
	report   func(wordle.GuessResult)
	log      zerolog.Logger
}

type Option func(*Solver)

func WithMaxTrial(n int) Option {
	return func(s *Solver) { s.maxTrial = n }
}

// WithFallback is asked for a guess when the strategy has no candidates left
func WithFallback(fallback Strategy) Option {
	return func(s *Solver) { s.fallback = fallback }
}

// WithReport is called after each trial
func WithReport(report func(wordle.GuessResult)) Option {
	return func(s *Solver) { s.report = report }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

func New(strategy Strategy, opts ...Option) *Solver {
	s := &Solver{
		strategy: strategy,
		maxTrial: DefaultMaxTrial,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Solver) Strategy() Strategy {
	return s.strategy
}

// Solve guesses until the game is solved or maxTrial guesses have been made.
// Guesses already in the game count against maxTrial.
func (s *Solver) Solve(ctx context.Context, game *wordle.Game) (Outcome, error) {
	log := s.log.With().Str("strategy", s.strategy.Name()).Logger()
	if game.Solved() {
		return outcome(game), nil
	}
	for trial := game.Trials() + 1; trial <= s.maxTrial; trial++ {
		if err := ctx.Err(); err != nil {
			return outcome(game), err
		}
		guess, err := s.strategy.ChooseGuess(ctx, game)
		if errors.Is(err, ErrNoCandidates) && s.fallback != nil {
			fallbacksTotal.WithLabelValues(s.strategy.Name()).Inc()
			log.Warn().Int("trial", trial).Str("fallback", s.fallback.Name()).Msg("no candidates")
			guess, err = s.fallback.ChooseGuess(ctx, game)
		}
		if err != nil {
			gamesTotal.WithLabelValues(s.strategy.Name(), "error").Inc()
			return outcome(game), fmt.Errorf("trial %d: %w", trial, err)
		}
		result := game.Check(guess)
		log.Debug().Int("trial", result.Trial).Str("guess", result.Guess.String()).Stringer("pattern", result.Pattern).Msg("checked")
		if s.report != nil {
			s.report(result)
		}
		if result.Solved {
			log.Info().Int("trials", result.Trial).Msg("solved")
			gamesTotal.WithLabelValues(s.strategy.Name(), "solved").Inc()
			trialsPerGame.WithLabelValues(s.strategy.Name()).Observe(float64(result.Trial))
			return outcome(game), nil
		}
	}
	log.Info().Int("max_trial", s.maxTrial).Msg("unsolved")
	gamesTotal.WithLabelValues(s.strategy.Name(), "unsolved").Inc()
	return outcome(game), nil
}

func outcome(game *wordle.Game) Outcome {
	return Outcome{
		Solved:  game.Solved(),
		Trials:  game.Trials(),
		History: game.History(),
	}
}
