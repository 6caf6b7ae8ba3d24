package minimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphareversi/game"
)

func TestPhaseMultiplier(t *testing.T) {
	cases := []struct {
		pieces int
		want   float32
	}{
		{0, 0.5},
		{4, 0.5},
		{20, 0.5},
		{21, 1},
		{40, 1},
		{41, 1.5},
		{64, 1.5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PhaseMultiplier(c.pieces), "pieces %d", c.pieces)
	}
}

func TestEvaluate(t *testing.T) {
	var rules game.Reversi
	e := NewEvaluator(rules, DefaultWeights())

	start := game.NewBoard()
	assert.Equal(t, float32(0), e.Evaluate(start, game.Black))
	assert.Equal(t, float32(0), e.Evaluate(start, game.White))

	// d3: black 4, white 1, both sides keep three replies
	d3 := rules.Apply(start, 19, game.Black)
	assert.Equal(t, Features{Material: 3, Pieces: 5}, e.Features(d3, game.Black))
	assert.Equal(t, float32(1.5), e.Evaluate(d3, game.Black))
	assert.Equal(t, float32(-1.5), e.Evaluate(d3, game.White))

	var full game.Board
	for i := range full {
		full[i] = game.Black
	}
	// (64 + 5*4 + 3*4) * 1.5
	assert.Equal(t, float32(144), e.Evaluate(full, game.Black))
	assert.Equal(t, float32(-144), e.Evaluate(full, game.White))

	b := mustBoard(t, singleMoveBoard)
	assert.Equal(t, Features{Material: 2, Mobility: -3, Stability: -3, Corners: -3, Pieces: 60}, e.Features(b, game.Black))
	assert.Equal(t, float32(-42), e.Evaluate(b, game.Black))
}

func TestEvaluateIsPure(t *testing.T) {
	e := NewEvaluator(game.Reversi{}, DefaultWeights())
	boards, players := positions(t, 50)
	require.NotEmpty(t, boards)
	for i, b := range boards {
		before := b
		first := e.Evaluate(b, players[i])
		assert.Equal(t, first, e.Evaluate(b, players[i]))
		assert.Equal(t, before, b)
	}
}

func TestStabilityMatchesCorners(t *testing.T) {
	e := NewEvaluator(game.Reversi{}, DefaultWeights())
	boards, players := positions(t, 60)
	for i, b := range boards {
		f := e.Features(b, players[i])
		assert.Equal(t, f.Corners, f.Stability)
	}
}

func TestEvaluateWeights(t *testing.T) {
	b := mustBoard(t, cornerBoard)
	after := game.Reversi{}.Apply(b, 63, game.Black)

	e := NewEvaluator(game.Reversi{}, Weights{Corners: 1})
	assert.Equal(t, float32(0.5), e.Evaluate(after, game.Black))

	e = NewEvaluator(game.Reversi{}, Weights{})
	assert.Equal(t, float32(0), e.Evaluate(after, game.Black))
}
