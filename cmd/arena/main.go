package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alphareversi"
)

var (
	configFile  = flag.String("config", "", "tournament configuration (JSON)")
	gamesFlag   = flag.Int("games", 0, "override the number of games")
	concurrency = flag.Int("concurrency", 0, "override the number of games played at once")
	verbose     = flag.Bool("v", false, "log every move")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	conf := alphareversi.DefaultConfig()
	if *configFile != "" {
		var err error
		if conf, err = alphareversi.LoadConfig(*configFile); err != nil {
			log.Fatal().Err(err).Msg("error loading config")
		}
	}
	if *gamesFlag > 0 {
		conf.Games = *gamesFlag
	}
	if *concurrency > 0 {
		conf.Concurrency = *concurrency
	}
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := alphareversi.New(conf, log.Logger).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error when running tournament")
	}

	fmt.Printf("%s: %s vs %s\n", s.Name, conf.A.Name, conf.B.Name)
	fmt.Printf("games %d  wins %d  losses %d  draws %d  score %.3f\n", s.Games, s.Wins, s.Losses, s.Draws, s.Score())
	fmt.Printf("margin %.2f ± %.2f pieces\n", s.MeanMargin, s.StdMargin)
	fmt.Printf("time per move %v / %v, total %v\n", s.AMoveTime, s.BMoveTime, s.Elapsed)
}
