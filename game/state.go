package game

import "fmt"

// Cell is the state of a single tile.
type Cell int8

const (
	Empty Cell = 0
	Black Cell = 1
	White Cell = -1
)

const (
	RowNum   = 8
	ColNum   = 8
	NumTiles = RowNum * ColNum
)

// Player is the side to move. Only Black and White are valid players.
type Player = Cell

// Opponent returns the other side.
func (c Cell) Opponent() Cell { return -c }

// IsPlayer returns true if c is Black or White.
func (c Cell) IsPlayer() bool { return c == Black || c == White }

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("Cell(%d)", int8(c))
}

// Move is a tile index in row-major order.
type Move int32

const (
	// NoMove is returned when the player to act has no legal move.
	NoMove Move = -1
)

// Corners are the four corner tiles.
var Corners = [4]Move{0, ColNum - 1, NumTiles - ColNum, NumTiles - 1}

// IsValid returns true if m addresses a tile on the board.
func (m Move) IsValid() bool { return m >= 0 && m < NumTiles }

// Row returns the zero based row of m.
func (m Move) Row() int { return int(m) / ColNum }

// Col returns the zero based column of m.
func (m Move) Col() int { return int(m) % ColNum }

// Board is a snapshot of every tile. It is an array so that assignment copies it.
type Board [NumTiles]Cell

// BoardManager owns the rules of the game. The search never re-validates its answers.
type BoardManager interface {
	// LegalMoves returns the moves p can make, in a stable order. Empty if none.
	LegalMoves(b Board, p Player) []Move
	// Apply returns the board after p places on m, with the resulting flips.
	Apply(b Board, m Move, p Player) Board
	// CountPieces counts the tiles owned by p.
	CountPieces(b Board, p Player) int
}
