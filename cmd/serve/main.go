package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alphareversi/minimax"
	"github.com/alphareversi/server"
)

var (
	addr      = flag.String("addr", ":8080", "listen address")
	depthFlag = flag.Int("depth", minimax.DefaultMaxDepth, "default search depth in plies")
	timeout   = flag.Duration("timeout", 5*time.Second, "search timeout per request")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	conf := minimax.DefaultConfig()
	conf.MaxDepth = *depthFlag
	conf.Timeout = *timeout
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid search configuration")
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: server.New(conf, log.Logger).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", *addr).Int("depth", conf.MaxDepth).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
