package game

// directions are the eight (row, col) steps a line of flips can follow.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var _ BoardManager = Reversi{}

// Reversi implements BoardManager with the standard Othello rules.
// Legal moves are enumerated in row-major order.
type Reversi struct{}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	r, c := RowNum/2, ColNum/2
	b[(r-1)*ColNum+c-1] = White
	b[r*ColNum+c] = White
	b[(r-1)*ColNum+c] = Black
	b[r*ColNum+c-1] = Black
	return b
}

func onBoard(row, col int) bool { return row >= 0 && row < RowNum && col >= 0 && col < ColNum }

// flips returns the number of pieces p would flip in direction d by placing on m.
func flips(b *Board, m Move, p Player, d [2]int) int {
	row, col := m.Row()+d[0], m.Col()+d[1]
	var n int
	for onBoard(row, col) {
		switch b[row*ColNum+col] {
		case p.Opponent():
			n++
		case p:
			return n
		default:
			return 0
		}
		row, col = row+d[0], col+d[1]
	}
	return 0
}

// Check returns true if p may place on m.
func (Reversi) Check(b Board, m Move, p Player) bool {
	if !m.IsValid() || !p.IsPlayer() || b[m] != Empty {
		return false
	}
	for _, d := range directions {
		if flips(&b, m, p, d) > 0 {
			return true
		}
	}
	return false
}

func (r Reversi) LegalMoves(b Board, p Player) []Move {
	var moves []Move
	for m := Move(0); m < NumTiles; m++ {
		if r.Check(b, m, p) {
			moves = append(moves, m)
		}
	}
	return moves
}

// Apply places p on m and flips every bracketed line. Illegal moves return b unchanged.
func (r Reversi) Apply(b Board, m Move, p Player) Board {
	if !r.Check(b, m, p) {
		return b
	}
	for _, d := range directions {
		n := flips(&b, m, p, d)
		row, col := m.Row(), m.Col()
		for i := 0; i < n; i++ {
			row, col = row+d[0], col+d[1]
			b[row*ColNum+col] = p
		}
	}
	b[m] = p
	return b
}

func (Reversi) CountPieces(b Board, p Player) int {
	var n int
	for _, c := range b {
		if c == p {
			n++
		}
	}
	return n
}

// Ended returns true when neither side has a legal move.
func (r Reversi) Ended(b Board) bool {
	return len(r.LegalMoves(b, Black)) == 0 && len(r.LegalMoves(b, White)) == 0
}

// Winner returns the side with more pieces, or Empty on a draw.
func (r Reversi) Winner(b Board) Cell {
	black, white := r.CountPieces(b, Black), r.CountPieces(b, White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Empty
}
