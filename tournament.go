package alphareversi

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/alphareversi/game"
)

// Tournament is the top level structure: two agents playing a series of games
// with alternating colours.
type Tournament struct {
	A, B *Agent

	conf   Config
	logger zerolog.Logger
}

// Summary aggregates the results of a tournament from A's point of view.
type Summary struct {
	Name   string
	Games  int
	Wins   int
	Losses int
	Draws  int

	MeanMargin float64 // pieces, A minus B
	StdMargin  float64
	AMoveTime  time.Duration // mean thinking time per move
	BMoveTime  time.Duration
	Elapsed    time.Duration

	Results []GameResult
}

// Score returns A's score with draws counting half.
func (s Summary) Score() float64 {
	if s.Games == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games)
}

// New creates a tournament. It panics if the configuration is not valid.
func New(conf Config, logger zerolog.Logger) *Tournament {
	if err := conf.Validate(); err != nil {
		panic(err.Error())
	}
	var rules game.Reversi
	return &Tournament{
		A:      NewAgent(conf.A, rules, logger),
		B:      NewAgent(conf.B, rules, logger),
		conf:   conf,
		logger: logger,
	}
}

// Run plays every game and summarises the results. Games run concurrently, each
// search stays on its own goroutine.
func (t *Tournament) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	t.A.resetStats()
	t.B.resetStats()
	t.logger.Info().
		Str("name", t.conf.Name).
		Int("games", t.conf.Games).
		Int("concurrency", t.conf.Concurrency).
		Msg("tournament started")

	g, ctx := errgroup.WithContext(ctx)
	var games = make(chan int)
	var results = make(chan GameResult)

	g.Go(func() error {
		defer close(games)
		for i := 0; i < t.conf.Games; i++ {
			select {
			case games <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < t.conf.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return t.playGames(ctx, games, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	collected := make([]GameResult, t.conf.Games)
	var n int
	for r := range results {
		collected[r.Index] = r
		n++
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if n != t.conf.Games {
		return Summary{}, errors.Errorf("played %d of %d games", n, t.conf.Games)
	}

	retVal := t.summarise(collected)
	retVal.Elapsed = time.Since(start)
	t.logger.Info().
		Int("wins", retVal.Wins).
		Int("losses", retVal.Losses).
		Int("draws", retVal.Draws).
		Float64("score", retVal.Score()).
		Float64("mean_margin", retVal.MeanMargin).
		Dur("elapsed", retVal.Elapsed).
		Msg("tournament finished")
	return retVal, nil
}

func (t *Tournament) playGames(ctx context.Context, games <-chan int, results chan<- GameResult) error {
	for i := range games {
		black, white := t.A, t.B
		if i%2 == 1 {
			black, white = t.B, t.A
		}
		arena := MakeArena(black, white, t.conf.RandomOpening, t.logger.With().Int("game", i).Logger())
		r, err := arena.Play(ctx)
		if err != nil {
			return errors.WithMessagef(err, "game %d", i)
		}
		r.Index = i
		select {
		case results <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (t *Tournament) summarise(results []GameResult) Summary {
	retVal := Summary{
		Name:    t.conf.Name,
		Games:   len(results),
		Results: results,
	}
	margins := make([]float64, len(results))
	for i, r := range results {
		margins[i] = float64(r.Margin(t.A.Name))
		switch {
		case r.Winner == game.Empty:
			retVal.Draws++
		case margins[i] > 0:
			retVal.Wins++
		default:
			retVal.Losses++
		}
	}
	retVal.MeanMargin, retVal.StdMargin = stat.MeanStdDev(margins, nil)
	retVal.AMoveTime = meanMoveTime(t.A)
	retVal.BMoveTime = meanMoveTime(t.B)
	return retVal
}

func meanMoveTime(a *Agent) time.Duration {
	a.Lock()
	defer a.Unlock()
	if a.Moves == 0 {
		return 0
	}
	return a.Thinking / time.Duration(a.Moves)
}
