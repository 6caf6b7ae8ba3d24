package game

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	emptyRune = '.'
	blackRune = 'X'
	whiteRune = 'O'
)

// ParseBoard reads a board written as 64 tiles in row-major order.
// '.' is empty, 'X' (or 'B') is black, 'O' (or 'W') is white. Whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	var i int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if i >= NumTiles {
			return b, errors.Errorf("board has more than %d tiles", NumTiles)
		}
		switch unicode.ToUpper(r) {
		case emptyRune, '-', '_':
			b[i] = Empty
		case blackRune, 'B', '*':
			b[i] = Black
		case whiteRune, 'W':
			b[i] = White
		default:
			return b, errors.Errorf("invalid tile %q at %d", r, i)
		}
		i++
	}
	if i != NumTiles {
		return b, errors.Errorf("board has %d tiles, expected %d", i, NumTiles)
	}
	return b, nil
}

// Compact returns the 64 character form accepted by ParseBoard.
func (b Board) Compact() string {
	var sb strings.Builder
	sb.Grow(NumTiles)
	for _, c := range b {
		sb.WriteRune(c.rune())
	}
	return sb.String()
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < RowNum; row++ {
		sb.WriteByte(byte('1' + row))
		for col := 0; col < ColNum; col++ {
			sb.WriteByte(' ')
			sb.WriteRune(b[row*ColNum+col].rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (c Cell) rune() rune {
	switch c {
	case Black:
		return blackRune
	case White:
		return whiteRune
	}
	return emptyRune
}

// String returns the move in algebraic form, e.g. "d3".
func (m Move) String() string {
	if !m.IsValid() {
		return "pass"
	}
	return string([]byte{byte('a' + m.Col()), byte('1' + m.Row())})
}

// ParseMove parses an algebraic coordinate such as "d3".
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" {
		return NoMove, nil
	}
	if len(s) != 2 {
		return NoMove, errors.Errorf("invalid move %q", s)
	}
	col, row := int(s[0]-'a'), int(s[1]-'1')
	if !onBoard(row, col) {
		return NoMove, errors.Errorf("move %q is off the board", s)
	}
	return Move(row*ColNum + col), nil
}

// ParsePlayer accepts "black"/"white" or their first letter, and the tile runes.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b", "x":
		return Black, nil
	case "white", "w", "o":
		return White, nil
	}
	return Empty, errors.Errorf("invalid player %q", s)
}
