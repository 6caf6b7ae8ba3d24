package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alphareversi/game"
	"github.com/alphareversi/minimax"
)

var (
	boardFile     = flag.String("board", "", "file containing a board, 8 rows of '.', 'X' and 'O'")
	positionsFile = flag.String("positions", "", "file with one \"<64 tiles> <player>\" position per line")
	playerFlag    = flag.String("player", "black", "player to move")
	depthFlag     = flag.Int("depth", minimax.DefaultMaxDepth, "search depth in plies")
	timeoutFlag   = flag.Duration("timeout", 0, "search timeout, 0 for none")
	dotFile       = flag.String("dot", "", "write the search tree in DOT format to this file")
	pngFile       = flag.String("png", "", "write the board with the chosen move to this PNG file")
	verbose       = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	conf := minimax.DefaultConfig()
	conf.MaxDepth = *depthFlag
	conf.Timeout = *timeoutFlag
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid search configuration")
	}
	engine := minimax.New(game.Reversi{}, conf, minimax.WithLogger(log.Logger))

	var err error
	if *positionsFile != "" {
		err = batch(engine, *positionsFile)
	} else {
		err = single(engine)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("selectmove failed")
	}
}

func single(engine *minimax.Engine) error {
	if *boardFile == "" {
		return errors.New("one of -board or -positions is required")
	}
	raw, err := os.ReadFile(*boardFile)
	if err != nil {
		return errors.WithStack(err)
	}
	b, err := game.ParseBoard(string(raw))
	if err != nil {
		return errors.WithMessage(err, *boardFile)
	}
	p, err := game.ParsePlayer(*playerFlag)
	if err != nil {
		return err
	}

	move, res := engine.Choose(b, p)
	fmt.Print(b)
	fmt.Printf("%v to move: %v (utility %v, %d nodes, %d cutoffs, %v)\n", p, move, res.Utility, res.Nodes, res.Cutoffs, res.Elapsed)

	if *dotFile != "" && res.Tree != nil {
		dot, err := res.Tree.Dot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*dotFile, []byte(dot), 0644); err != nil {
			return errors.WithStack(err)
		}
	}
	if *pngFile != "" {
		f, err := os.Create(*pngFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		if err := game.RenderPNG(f, b, move); err != nil {
			return err
		}
	}
	return nil
}

func batch(engine *minimax.Engine, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return errors.Errorf("%s:%d: expected board and player", filename, line)
		}
		b, err := game.ParseBoard(fields[0])
		if err != nil {
			return errors.WithMessagef(err, "%s:%d", filename, line)
		}
		p, err := game.ParsePlayer(fields[1])
		if err != nil {
			return errors.WithMessagef(err, "%s:%d", filename, line)
		}
		fmt.Printf("%s %v %v\n", fields[0], p, engine.SelectMove(b, p))
	}
	return errors.WithStack(scanner.Err())
}
