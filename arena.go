package alphareversi

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/alphareversi/game"
)

// GameResult is the record of one finished game.
type GameResult struct {
	Index  int
	Black  string // agent names
	White  string
	Winner game.Cell
	Board  game.Board
	Moves  []game.Move // game.NoMove marks a pass

	BlackPieces int
	WhitePieces int
	Elapsed     time.Duration
}

// Margin returns the piece difference from the point of view of the named agent.
func (r GameResult) Margin(agent string) int {
	if agent == r.White {
		return r.WhitePieces - r.BlackPieces
	}
	return r.BlackPieces - r.WhitePieces
}

// Ply is a single entry of the game record, reported as it is played.
type Ply struct {
	Number int
	Player game.Player
	Move   game.Move  // game.NoMove for a pass
	Board  game.Board // position after the move
}

// Arena represents a single game between two agents.
type Arena struct {
	rules        game.Reversi
	board        game.Board
	black, white *Agent

	// state
	currentPlayer game.Player
	moves         []game.Move
	logger        zerolog.Logger
	observer      func(Ply)

	randomOpening int
}

// MakeArena sets up a game from the starting position.
func MakeArena(black, white *Agent, randomOpening int, logger zerolog.Logger) Arena {
	return Arena{
		board:         game.NewBoard(),
		black:         black,
		white:         white,
		currentPlayer: game.Black,
		logger:        logger,
		randomOpening: randomOpening,
	}
}

// Observe registers f to be called after every ply, passes included. f runs on
// the goroutine playing the game.
func (a *Arena) Observe(f func(Ply)) { a.observer = f }

func (a *Arena) agent(p game.Player) *Agent {
	if p == game.Black {
		return a.black
	}
	return a.white
}

// Play plays the game to the end. A player without a legal move passes; the game
// ends when both sides pass in a row.
func (a *Arena) Play(ctx context.Context) (GameResult, error) {
	start := time.Now()
	var passes int
	for passes < 2 {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		legal := a.rules.LegalMoves(a.board, a.currentPlayer)
		var move game.Move
		switch {
		case len(legal) == 0:
			move = game.NoMove
		case len(a.moves) < a.randomOpening:
			move = legal[frand.Intn(len(legal))]
		default:
			move = a.agent(a.currentPlayer).Search(a.board, a.currentPlayer)
		}

		if move == game.NoMove {
			if len(legal) > 0 {
				return GameResult{}, errors.Errorf("%v passed with %d legal moves", a.currentPlayer, len(legal))
			}
			passes++
		} else {
			if !a.rules.Check(a.board, move, a.currentPlayer) {
				return GameResult{}, errors.Errorf("%v played illegal move %v\n%v", a.currentPlayer, move, a.board)
			}
			a.board = a.rules.Apply(a.board, move, a.currentPlayer)
			passes = 0
		}
		a.logger.Debug().Stringer("player", a.currentPlayer).Stringer("move", move).Msg("played")
		a.moves = append(a.moves, move)
		if a.observer != nil {
			a.observer(Ply{Number: len(a.moves), Player: a.currentPlayer, Move: move, Board: a.board})
		}
		a.switchPlayer()
	}

	winner := a.rules.Winner(a.board)
	a.black.record(winner, game.Black)
	a.white.record(winner, game.White)

	retVal := GameResult{
		Black:       a.black.Name,
		White:       a.white.Name,
		Winner:      winner,
		Board:       a.board,
		Moves:       a.moves,
		BlackPieces: a.rules.CountPieces(a.board, game.Black),
		WhitePieces: a.rules.CountPieces(a.board, game.White),
		Elapsed:     time.Since(start),
	}
	a.logger.Info().
		Str("black", retVal.Black).
		Str("white", retVal.White).
		Int("black_pieces", retVal.BlackPieces).
		Int("white_pieces", retVal.WhitePieces).
		Stringer("winner", winner).
		Msg("game over")
	return retVal, nil
}

// State returns the current board and the player to move.
func (a *Arena) State() (game.Board, game.Player) { return a.board, a.currentPlayer }

func (a *Arena) switchPlayer() {
	a.currentPlayer = a.currentPlayer.Opponent()
}
