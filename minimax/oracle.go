package minimax

import (
	"github.com/chewxy/math32"

	"github.com/alphareversi/game"
)

// Generate builds the complete tree from board for player down to MaxDepth plies,
// without evaluating anything.
func (e *Engine) Generate(board game.Board, player game.Player) *Tree {
	s := e.newSearchState(board, player, e.MaxDepth)
	s.generate(s.tree.root(), 0)
	return s.tree
}

func (s *searchState) generate(n naughty, depth int) {
	if depth >= s.maxDepth {
		return
	}
	board := s.tree.nodes[n].board
	mover := s.mover(s.tree.nodes[n].kind)
	for _, m := range s.bm.LegalMoves(board, mover) {
		child := s.tree.addChild(n, s.bm.Apply(board, m, mover), m)
		s.generate(child, depth+1)
	}
}

// Reference computes the root utility by building the full tree first and then
// folding it bottom-up with plain minimax. It visits every node, so it is only
// meant to check Search.
func (e *Engine) Reference(board game.Board, player game.Player) Result {
	s := e.newSearchState(board, player, e.MaxDepth)
	root := s.tree.root()
	s.generate(root, 0)
	utility := s.propagate(root)
	return Result{
		Utility: utility,
		Nodes:   s.tree.Len(),
		Leaves:  s.leaves,
		Tree:    s.tree,
	}
}

func (s *searchState) propagate(n naughty) float32 {
	children := s.tree.children[n]
	if len(children) == 0 {
		return s.leaf(n)
	}

	isMax := s.tree.nodes[n].kind == Max
	value := math32.Inf(1)
	if isMax {
		value = math32.Inf(-1)
	}
	for _, kid := range children {
		utility := s.propagate(kid)
		if isMax {
			value = math32.Max(value, utility)
		} else {
			value = math32.Min(value, utility)
		}
	}

	node := s.tree.nodeFromNaughty(n)
	node.utility = value
	node.status = Valued
	return value
}
