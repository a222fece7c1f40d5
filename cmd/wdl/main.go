package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/powellquiring/wordlebot/config"
	"github.com/powellquiring/wordlebot/dictionary"
	"github.com/powellquiring/wordlebot/render"
	"github.com/powellquiring/wordlebot/solver"
	"github.com/powellquiring/wordlebot/wordle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

// parsePairs turns guess pattern pairs from the command line into a history
func parsePairs(args []string) (wordle.History, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("must have pairs of guess pattern, got %d arguments", len(args))
	}
	history := wordle.History{}
	for i := 0; i < len(args); i += 2 {
		guess, err := wordle.ParseWord(args[i])
		if err != nil {
			return nil, fmt.Errorf("guess %q: %w", args[i], err)
		}
		pattern, err := wordle.ParsePattern(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("pattern %q, use r,y,g like rrggy: %w", args[i+1], err)
		}
		history = history.Record(guess, pattern)
	}
	return history, nil
}

// playWordle prints the next guess and the possible words for a game played elsewhere
func playWordle(ctx context.Context, globalConfig GlobalConfiguration, args []string) error {
	history, err := parsePairs(args)
	if err != nil {
		return err
	}
	if history.Solved() {
		fmt.Println("solved")
		return nil
	}
	c := history.Constraints()
	possible := globalConfig.dictionary.Filter(c)
	next, err := solver.NewEntropy(globalConfig.dictionary, globalConfig.ranker()).Suggest(ctx, c)
	if err != nil {
		return err
	}
	fmt.Print(next, ":")
	for _, word := range possible {
		fmt.Print(" ", word)
	}
	fmt.Println()
	return nil
}

// solveOne plays a single game and prints each trial, the first guesses are
// played as given before the strategy takes over
func solveOne(ctx context.Context, globalConfig GlobalConfiguration, secretString string, firstGuesses []string) (bool, error) {
	d := globalConfig.dictionary
	rng := solver.NewRand(globalConfig.config.SeedOrClock())
	var secret wordle.Word
	if secretString == "" {
		if d.Len() == 0 {
			return false, fmt.Errorf("pick a secret: %w", solver.ErrNoCandidates)
		}
		secret = d.Word(rng.IntN(d.Len()))
	} else {
		var err error
		if secret, err = wordle.ParseWord(secretString); err != nil {
			return false, fmt.Errorf("secret %q: %w", secretString, err)
		}
		if !d.Contains(secret) {
			globalConfig.log.Warn().Str("secret", secretString).Msg("secret not in dictionary, it can only be found by luck")
		}
	}
	s, err := globalConfig.solver(rng, func(r wordle.GuessResult) {
		fmt.Println(render.Result(r))
	})
	if err != nil {
		return false, err
	}
	game := wordle.NewGame(secret)
	for _, guess := range firstGuesses {
		if game.Solved() {
			break
		}
		r, err := game.Submit(guess)
		if err != nil {
			return false, fmt.Errorf("first guess: %w", err)
		}
		fmt.Println(render.Result(r))
	}
	out, err := s.Solve(ctx, game)
	if err != nil {
		return false, err
	}
	if out.Solved {
		fmt.Printf("solved %s in %d trials\n", secret, out.Trials)
	} else {
		fmt.Printf("unsolved after %d trials, secret was %s\n", out.Trials, secret)
	}
	return out.Solved, nil
}

func simulate(ctx context.Context, globalConfig GlobalConfiguration, secretStrings []string, metricsFile string) error {
	d := globalConfig.dictionary
	globalConfig.log = globalConfig.log.With().Str("run", uuid.NewString()).Logger()
	secrets := d.Words()
	if len(secretStrings) > 0 {
		secrets = make([]wordle.Word, 0, len(secretStrings))
		for _, secretString := range secretStrings {
			secret, err := wordle.ParseWord(secretString)
			if err != nil {
				return fmt.Errorf("secret %q: %w", secretString, err)
			}
			secrets = append(secrets, secret)
		}
	}

	type Game struct {
		Secret  wordle.Word
		Guesses wordle.History
	}
	var bar *progressbar.ProgressBar
	if globalConfig.config.Progress {
		bar = progressbar.Default(int64(len(secrets)), "games")
	} else {
		bar = progressbar.DefaultSilent(int64(len(secrets)))
	}
	// one bar at a time
	globalConfig.config.Progress = false
	s, err := globalConfig.solver(solver.NewRand(globalConfig.config.SeedOrClock()), nil)
	if err != nil {
		return err
	}

	sortedGames := make(map[int][]Game)
	unsolved := []Game{}
	start := time.Now()
	for _, secret := range secrets {
		out, err := s.Solve(ctx, wordle.NewGame(secret))
		if err != nil {
			return fmt.Errorf("secret %s: %w", secret, err)
		}
		_ = bar.Add(1)
		if !out.Solved {
			unsolved = append(unsolved, Game{secret, out.History})
			continue
		}
		sortedGames[out.Trials] = append(sortedGames[out.Trials], Game{secret, out.History})
	}
	_ = bar.Finish()
	fmt.Println("---------------------")

	// create slice of number of guesses
	keys := make([]int, 0, len(sortedGames))
	total := 0
	for k, games := range sortedGames {
		keys = append(keys, k)
		total += k * len(games)
	}
	sort.Ints(keys)

	printGame := func(game Game) {
		fmt.Print(game.Secret, ":")
		for _, r := range game.Guesses {
			fmt.Print(" ", r.Guess)
		}
		fmt.Println()
	}
	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		fmt.Println(numGuesses, len(games), " ---------------------")
		if globalConfig.verbose {
			for _, game := range games {
				printGame(game)
			}
		}
	}
	if len(unsolved) > 0 {
		fmt.Println("unsolved", len(unsolved), " ---------------------")
		for _, game := range unsolved {
			printGame(game)
		}
	}
	if solved := len(secrets) - len(unsolved); solved > 0 {
		fmt.Printf("strategy %s solved %d/%d average %.3f trials in %v\n",
			s.Strategy().Name(), solved, len(secrets), float64(total)/float64(solved), time.Since(start).Round(time.Millisecond))
	}
	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, prometheus.DefaultGatherer); err != nil {
			return err
		}
		globalConfig.log.Info().Str("file", metricsFile).Msg("metrics written")
	}
	return nil
}

func first(ctx context.Context, globalConfig GlobalConfiguration, top int) error {
	scores, err := globalConfig.ranker().Rank(ctx, globalConfig.dictionary.Words())
	if err != nil {
		return err
	}
	if top > 0 && top < len(scores) {
		scores = scores[:top]
	}
	for _, item := range scores {
		fmt.Printf("%s %.4f\n", item.Word, item.Entropy)
	}
	return nil
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

type GlobalConfiguration struct {
	config     config.Config
	dictionary *dictionary.Dictionary
	log        zerolog.Logger
	verbose    bool
}

func (g GlobalConfiguration) ranker() *solver.Ranker {
	return solver.NewRanker(
		solver.WithWorkers(g.config.Workers),
		solver.WithOpening(g.config.OpeningWord()),
		solver.WithSearchTimeout(g.config.SearchTimeout),
		solver.WithProgress(g.config.Progress),
		solver.WithRankerLogger(g.log),
	)
}

func (g GlobalConfiguration) solver(rng *rand.Rand, report func(wordle.GuessResult)) (*solver.Solver, error) {
	strategy, err := solver.NewStrategy(g.config.Strategy, g.dictionary, rng, g.ranker())
	if err != nil {
		return nil, err
	}
	opts := []solver.Option{
		solver.WithMaxTrial(g.config.MaxTrial),
		solver.WithLogger(g.log),
	}
	if report != nil {
		opts = append(opts, solver.WithReport(report))
	}
	if g.config.Fallback {
		opts = append(opts, solver.WithFallback(solver.NewRandom(rng)))
	}
	return solver.New(strategy, opts...), nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()
}

// loadDictionary reads path, or the built in list when path is empty, cut back
// to the first count words when count > 0
func loadDictionary(path string, count int) (*dictionary.Dictionary, error) {
	d := dictionary.Default()
	if path != "" {
		var err error
		if d, err = dictionary.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("dictionary %q has no five letter words with distinct letters: %w", path, solver.ErrNoCandidates)
	}
	if count > 0 && count < d.Len() {
		d = dictionary.New(d.Words()[:count])
	}
	return d, nil
}

// globalConfiguration layers the command line over the config file and environment
func globalConfiguration(cmd *cli.Command) (GlobalConfiguration, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return GlobalConfiguration{}, err
	}
	if cmd.IsSet("dictionary") {
		cfg.Dictionary = cmd.String("dictionary")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("opening") {
		cfg.Opening = cmd.String("opening")
	}
	if cmd.IsSet("search-timeout") {
		cfg.SearchTimeout = cmd.Duration("search-timeout")
	}
	if cmd.IsSet("progress") {
		cfg.Progress = cmd.Bool("progress")
	}
	if cmd.IsSet("strategy") {
		cfg.Strategy = cmd.String("strategy")
	}
	if cmd.IsSet("max-trial") {
		cfg.MaxTrial = cmd.Int("max-trial")
	}
	if cmd.IsSet("seed") {
		seed := cmd.Uint64("seed")
		cfg.Seed = &seed
	}
	if cmd.IsSet("fallback") {
		cfg.Fallback = cmd.Bool("fallback")
	}
	if err := cfg.Validate(); err != nil {
		return GlobalConfiguration{}, err
	}

	logger := newLogger(cfg.LogLevel)
	d, err := loadDictionary(cfg.Dictionary, cmd.Int("count"))
	if err != nil {
		return GlobalConfiguration{}, err
	}
	logger.Debug().Int("words", d.Len()).Str("strategy", cfg.Strategy).Msg("configured")
	return GlobalConfiguration{
		config:     cfg,
		dictionary: d,
		log:        logger,
		verbose:    cmd.Bool("verbose"),
	}, nil
}

// flags shared by the commands that play games
func gameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "strategy",
			Aliases: []string{"s"},
			Value:   solver.EntropyName,
			Usage:   "one of " + strings.Join(solver.Names, ", "),
		},
		&cli.IntFlag{
			Name:    "max-trial",
			Aliases: []string{"m"},
			Value:   solver.DefaultMaxTrial,
			Usage:   "give up after this many guesses",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for the random and dictionary strategies, default is the clock",
		},
		&cli.BoolFlag{
			Name:  "fallback",
			Usage: "guess random letters when the strategy runs out of candidates",
		},
	}
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	profile := false
	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "yaml config file",
			},
			&cli.StringFlag{
				Name:    "dictionary",
				Aliases: []string{"d"},
				Usage:   "word list file, one word per line, default is the built in list",
			},
			&cli.IntFlag{
				Name:    "count",
				Value:   0,
				Aliases: []string{"c"},
				Usage:   "number of words, 0 is all words",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "goroutines scoring guesses, 0 is one per CPU",
			},
			&cli.StringFlag{
				Name:  "opening",
				Usage: "first guess of the entropy strategy, default is 'raise'",
			},
			&cli.DurationFlag{
				Name:  "search-timeout",
				Usage: "stop scoring guesses after this long and use the best so far, 0 is no limit",
			},
			&cli.BoolFlag{
				Name:    "progress",
				Value:   false,
				Aliases: []string{"p"},
				Usage:   "show progress bar",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "list every game in the sim histogram",
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "solve one game, a random secret from the dictionary if none is given",
				ArgsUsage: "[secret]",
				Flags: append(gameFlags(), &cli.StringSliceFlag{
					Name:    "first",
					Aliases: []string{"f"},
					Usage:   "--first first1 --first first2 ... guesses to play before the strategy takes over",
				}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def, err := cpuProfile()
						if err != nil {
							return err
						}
						defer def()
					}
					if cmd.NArg() > 1 {
						return cli.Exit("at most one secret", 2)
					}
					globalConfig, err := globalConfiguration(cmd)
					if err != nil {
						return err
					}
					solved, err := solveOne(ctx, globalConfig, cmd.Args().First(), cmd.StringSlice("first"))
					if err != nil {
						return err
					}
					if !solved {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
			{
				Name: "sim",
				Usage: `sim [secret] ...
				Solve a game for each secret and print a histogram of the number of trials.
				If no secrets are provided solve every word in the dictionary. All words can
				be cut back by using the -count global flag for testing.
				`,
				ArgsUsage: "[secret...]",
				Flags: append(gameFlags(), &cli.StringFlag{
					Name:  "metrics-file",
					Usage: "write prometheus metrics in the text format to this file when done",
				}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def, err := cpuProfile()
						if err != nil {
							return err
						}
						defer def()
					}
					globalConfig, err := globalConfiguration(cmd)
					if err != nil {
						return err
					}
					return simulate(ctx, globalConfig, cmd.Args().Slice(), cmd.String("metrics-file"))
				},
			},
			{
				Name: "play",
				Usage: `play a game of wordle by entering pairs of [guess pattern]...
				https://www.nytimes.com/games/wordle/index.html
				pattern is r,y,g for each letter like rrggy
				`,
				ArgsUsage: "guess pattern [guess pattern]...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def, err := cpuProfile()
						if err != nil {
							return err
						}
						defer def()
					}
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess pattern", 1)
					}
					globalConfig, err := globalConfiguration(cmd)
					if err != nil {
						return err
					}
					return playWordle(ctx, globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "first",
				Usage: `first
				Sort first words by entropy against the whole dictionary
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Value: 20,
						Usage: "number of words to print, 0 is all",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def, err := cpuProfile()
						if err != nil {
							return err
						}
						defer def()
					}
					globalConfig, err := globalConfiguration(cmd)
					if err != nil {
						return err
					}
					return first(ctx, globalConfig, cmd.Int("top"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
