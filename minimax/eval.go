package minimax

import (
	"github.com/alphareversi/game"
	"gorgonia.org/vecf32"
)

// Weights scales each evaluation feature.
type Weights struct {
	Material  float32 `json:"material"`
	Mobility  float32 `json:"mobility"`
	Stability float32 `json:"stability"`
	Corners   float32 `json:"corners"`
}

func DefaultWeights() Weights {
	return Weights{
		Material:  1,
		Mobility:  2,
		Stability: 5,
		Corners:   3,
	}
}

func (w Weights) vector() []float32 {
	return []float32{w.Material, w.Mobility, w.Stability, w.Corners}
}

// Features are the signed differences (searching player minus opponent) the
// evaluation is built from.
//
// Stability only looks at the corners, so it is numerically identical to
// Corners. It stands in for an unflippable-disc count and carries no signal of
// its own until one exists.
type Features struct {
	Material  int `json:"material"`
	Mobility  int `json:"mobility"`
	Stability int `json:"stability"`
	Corners   int `json:"corners"`

	Pieces int `json:"pieces"` // pieces of both sides on the board
}

func (f Features) vector() []float32 {
	return []float32{float32(f.Material), float32(f.Mobility), float32(f.Stability), float32(f.Corners)}
}

// Evaluator scores leaf boards from a fixed player's perspective.
type Evaluator struct {
	bm      game.BoardManager
	weights Weights
}

func NewEvaluator(bm game.BoardManager, w Weights) Evaluator {
	return Evaluator{bm: bm, weights: w}
}

// Features extracts the evaluation features of b for p.
func (e Evaluator) Features(b game.Board, p game.Player) Features {
	opp := p.Opponent()
	mine, theirs := e.bm.CountPieces(b, p), e.bm.CountPieces(b, opp)
	corners := countCorners(b, p) - countCorners(b, opp)
	return Features{
		Material:  mine - theirs,
		Mobility:  len(e.bm.LegalMoves(b, p)) - len(e.bm.LegalMoves(b, opp)),
		Stability: countStable(b, p) - countStable(b, opp),
		Corners:   corners,
		Pieces:    mine + theirs,
	}
}

// Evaluate returns the utility of b for the searching player p. It depends on
// nothing but its arguments.
func (e Evaluator) Evaluate(b game.Board, p game.Player) float32 {
	f := e.Features(b, p)
	v := f.vector()
	vecf32.Mul(v, e.weights.vector())
	return vecf32.Sum(v) * PhaseMultiplier(f.Pieces)
}

// PhaseMultiplier weights the opening lightly and the endgame heavily.
func PhaseMultiplier(pieces int) float32 {
	switch {
	case pieces <= 20:
		return 0.5
	case pieces <= 40:
		return 1.0
	}
	return 1.5
}

func countCorners(b game.Board, p game.Player) (n int) {
	for _, m := range game.Corners {
		if b[m] == p {
			n++
		}
	}
	return
}

// countStable counts discs that can never be flipped. Only corners are detected.
func countStable(b game.Board, p game.Player) int { return countCorners(b, p) }
