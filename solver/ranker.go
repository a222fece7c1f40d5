package solver

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"time"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// DefaultOpening is played first instead of scoring the whole dictionary
const DefaultOpening = "raise"

type Score struct {
	Word    wordle.Word
	Entropy float64
}

// Ranker scores candidate guesses by entropy with a fixed pool of workers
type Ranker struct {
	workers  int
	opening  wordle.Word
	timeout  time.Duration
	score    ScoreFunc
	progress bool
	log      zerolog.Logger
}

type RankerOption func(*Ranker)

// WithWorkers sets the number of goroutines scoring guesses, default is the number of CPUs
func WithWorkers(n int) RankerOption {
	return func(r *Ranker) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithOpening(w wordle.Word) RankerOption {
	return func(r *Ranker) { r.opening = w }
}

// WithSearchTimeout bounds a ranking, when it expires the guesses scored so far are ranked
func WithSearchTimeout(d time.Duration) RankerOption {
	return func(r *Ranker) { r.timeout = d }
}

func WithScoreFunc(f ScoreFunc) RankerOption {
	return func(r *Ranker) { r.score = f }
}

// WithProgress shows a progress bar on stderr while scoring
func WithProgress(on bool) RankerOption {
	return func(r *Ranker) { r.progress = on }
}

func WithRankerLogger(l zerolog.Logger) RankerOption {
	return func(r *Ranker) { r.log = l }
}

func NewRanker(opts ...RankerOption) *Ranker {
	r := &Ranker{
		workers: runtime.NumCPU(),
		opening: wordle.MustParseWord(DefaultOpening),
		score:   Entropy,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Ranker) Opening() wordle.Word {
	return r.opening
}

func (r *Ranker) bar(n int) *progressbar.ProgressBar {
	if r.progress {
		return progressbar.Default(int64(n), "entropy")
	}
	return progressbar.DefaultSilent(int64(n))
}

// Rank scores every candidate as a guess against the candidates as secrets.
// Best first, equal scores keep the candidate order.
func (r *Ranker) Rank(ctx context.Context, candidates []wordle.Word) ([]Score, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	searchCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	scores := make([]Score, len(candidates))
	scored := make([]bool, len(candidates))
	bar := r.bar(len(candidates))
	workers := min(r.workers, len(candidates))
	g, gctx := errgroup.WithContext(searchCtx)
	for worker := range workers {
		g.Go(func() error {
			for i := worker; i < len(candidates); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				scores[i] = Score{Word: candidates[i], Entropy: r.score(candidates[i], candidates)}
				scored[i] = true
				guessesScored.Inc()
				_ = bar.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	_ = bar.Finish()
	status := "complete"
	if err != nil {
		status = "interrupted"
	}
	rankDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		partial := make([]Score, 0, len(scores))
		for i, s := range scores {
			if scored[i] {
				partial = append(partial, s)
			}
		}
		if len(partial) == 0 {
			return nil, err
		}
		r.log.Warn().Int("scored", len(partial)).Int("candidates", len(candidates)).Dur("timeout", r.timeout).Msg("entropy search timed out")
		scores = partial
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Entropy > scores[j].Entropy
	})
	r.log.Debug().Int("candidates", len(candidates)).Dur("elapsed", time.Since(start)).Str("best", scores[0].Word.String()).Float64("bits", scores[0].Entropy).Msg("ranked")
	return scores, nil
}

// Best is the first candidate with the highest entropy
func (r *Ranker) Best(ctx context.Context, candidates []wordle.Word) (wordle.Word, error) {
	scores, err := r.Rank(ctx, candidates)
	if err != nil {
		return wordle.Word{}, err
	}
	return scores[0].Word, nil
}

// BestGuess plays the opening word while nothing has been ruled out, the full
// dictionary is the most expensive list to score
func (r *Ranker) BestGuess(ctx context.Context, candidates, dictionary []wordle.Word) (wordle.Word, error) {
	if len(candidates) == 0 {
		return wordle.Word{}, ErrNoCandidates
	}
	if len(candidates) == len(dictionary) {
		return r.opening, nil
	}
	return r.Best(ctx, candidates)
}
