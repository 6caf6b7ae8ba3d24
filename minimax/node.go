package minimax

import (
	"fmt"

	"github.com/alphareversi/game"
)

// Kind tells whose objective governs a ply.
type Kind uint8

const (
	Max Kind = iota
	Min
)

func (k Kind) String() string {
	switch k {
	case Max:
		return "MAX"
	case Min:
		return "MIN"
	}
	return "UNKNOWN KIND"
}

// Opposite returns the kind of the children of a node of kind k.
func (k Kind) Opposite() Kind {
	if k == Max {
		return Min
	}
	return Max
}

type Status uint8

const (
	Open     Status = iota // utility not yet defined
	Leaf                   // evaluated statically
	Valued                 // utility derived from every child
	Pruned                 // utility derived after a cut skipped later siblings
)

func (s Status) String() string {
	switch s {
	case Open:
		return "Open"
	case Leaf:
		return "Leaf"
	case Valued:
		return "Valued"
	case Pruned:
		return "Pruned"
	}
	return "UNKNOWN STATUS"
}

// Node is one ply of search state. It owns its board snapshot.
type Node struct {
	board   game.Board
	kind    Kind
	move    game.Move // move that led here, NoMove for the root
	depth   int
	utility float32
	status  Status

	id     naughty
	parent naughty // diagnostics only
}

func (n Node) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "{NodeID: %v, Kind: %v, Move: %v, Depth: %d, Utility: %v, Status: %v}",
		n.id, n.kind, n.move, n.depth, n.utility, n.status)
}

func (n Node) Board() game.Board { return n.board }
func (n Node) Kind() Kind         { return n.kind }
func (n Node) Move() game.Move    { return n.move }
func (n Node) Depth() int         { return n.depth }
func (n Node) Status() Status     { return n.status }
func (n Node) ID() int            { return int(n.id) }

// Utility returns the node's value and whether it has been defined yet.
func (n Node) Utility() (float32, bool) { return n.utility, n.status != Open }
