package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// rankDuration measures one entropy ranking pass.
	// Labels: status (complete, interrupted)
	rankDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wordlebot",
		Subsystem: "ranker",
		Name:      "duration_seconds",
		Help:      "Time to score every candidate as a guess",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"status"})

	guessesScored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wordlebot",
		Subsystem: "ranker",
		Name:      "guesses_scored_total",
		Help:      "Candidate guesses scored by entropy",
	})

	// gamesTotal counts finished games.
	// Labels: strategy, outcome (solved, unsolved, error)
	gamesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordlebot",
		Subsystem: "solver",
		Name:      "games_total",
		Help:      "Games played to the end",
	}, []string{"strategy", "outcome"})

	trialsPerGame = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wordlebot",
		Subsystem: "solver",
		Name:      "trials",
		Help:      "Trials used by solved games",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 10, 15, 25, 50, 100},
	}, []string{"strategy"})

	fallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordlebot",
		Subsystem: "solver",
		Name:      "fallbacks_total",
		Help:      "Guesses made by the fallback strategy after running out of candidates",
	}, []string{"strategy"})
)
