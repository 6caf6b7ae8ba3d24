// This command plays random games and writes the positions it passes through,
// one per line as "<64 tiles> <player>", for selectmove -positions to read.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/alphareversi/game"
)

var (
	numGameFlag  = flag.Int("num_game", 10, "number of games to play")
	everyFlag    = flag.Int("every", 4, "keep one position out of this many plies")
	positionPath = flag.String("path", "positions.txt", "file to append positions to")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *everyFlag < 1 {
		log.Fatal().Int("every", *everyFlag).Msg("every must be positive")
	}

	// If the file doesn't exist, create it, or append to the file
	f, err := os.OpenFile(*positionPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal().Err(err).Msg("open positions file")
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	var rules game.Reversi
	seen := make(map[string]struct{})
	for i := 0; i < *numGameFlag; i++ {
		b, p := game.NewBoard(), game.Black
		for ply := 0; !rules.Ended(b); ply++ {
			moves := rules.LegalMoves(b, p)
			if len(moves) == 0 {
				p = p.Opponent()
				continue
			}
			line := fmt.Sprintf("%s %v", b.Compact(), p)
			if _, ok := seen[line]; !ok && ply%*everyFlag == 0 {
				seen[line] = struct{}{}
				if _, err := fmt.Fprintln(w, line); err != nil {
					log.Fatal().Err(err).Msg("write position")
				}
			}
			b = rules.Apply(b, moves[frand.Intn(len(moves))], p)
			p = p.Opponent()
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("flush positions")
	}
	log.Info().Int("positions", len(seen)).Str("path", *positionPath).Msg("done")
}
