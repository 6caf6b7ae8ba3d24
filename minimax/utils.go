package minimax

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/alphareversi/game"
)

// ErrIndexMismatch means the root's children were not generated from the same
// legal move list the caller holds. It is a bug, never a runtime condition.
var ErrIndexMismatch = errors.New("best child does not map onto the legal moves")

// SelectBestMove returns the index of the root child with the highest utility.
// Ties go to the earliest child. It returns -1 if the root has no children.
func SelectBestMove(t *Tree) int {
	root := t.root()
	if !root.isValid() {
		return -1
	}
	retVal := -1
	max := math32.Inf(-1)
	for i, kid := range t.children[root] {
		if u := t.nodes[kid].utility; u > max {
			max = u
			retVal = i
		}
	}
	return retVal
}

// resolve maps the index of the best root child back onto legal.
func resolve(t *Tree, best int, legal []game.Move) (game.Move, error) {
	children := t.children[t.root()]
	if len(children) != len(legal) {
		return game.NoMove, errors.Wrapf(ErrIndexMismatch, "root has %d children for %d legal moves", len(children), len(legal))
	}
	if best < 0 || best >= len(legal) {
		return game.NoMove, errors.Wrapf(ErrIndexMismatch, "index %d out of range [0, %d)", best, len(legal))
	}
	generated := make([]game.Move, len(children))
	for i, kid := range children {
		generated[i] = t.nodes[kid].move
	}
	if !slices.Equal(generated, legal) {
		return game.NoMove, errors.Wrapf(ErrIndexMismatch, "children were generated in order %v, legal moves are %v", generated, legal)
	}
	return legal[best], nil
}
