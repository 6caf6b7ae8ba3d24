package alphareversi

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphareversi/game"
)

func TestTournament(t *testing.T) {
	conf := DefaultConfig()
	conf.A = DefaultAgentConfig("two", 2)
	conf.B = DefaultAgentConfig("one", 1)
	conf.Games = 4
	conf.Concurrency = 2

	tour := New(conf, zerolog.Nop())
	s, err := tour.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, s.Games)
	assert.Equal(t, 4, s.Wins+s.Losses+s.Draws)
	require.Len(t, s.Results, 4)
	for i, r := range s.Results {
		assert.Equal(t, i, r.Index)
		if i%2 == 0 {
			assert.Equal(t, "two", r.Black)
		} else {
			assert.Equal(t, "two", r.White)
		}
	}
	// colours alternate and both engines are deterministic, so games 0/2 and 1/3 repeat
	assert.Equal(t, s.Results[0].Moves, s.Results[2].Moves)
	assert.Equal(t, s.Results[1].Moves, s.Results[3].Moves)
	assert.Equal(t, 0.5*float64(s.Results[0].Margin("two")+s.Results[1].Margin("two")), s.MeanMargin)

	assert.Equal(t, s.Wins, tour.A.Wins)
	assert.Equal(t, s.Losses, tour.B.Wins)
	assert.GreaterOrEqual(t, s.Score(), 0.0)
	assert.LessOrEqual(t, s.Score(), 1.0)
}

func TestTournamentRandom(t *testing.T) {
	conf := DefaultConfig()
	conf.A = DefaultAgentConfig("one", 1)
	conf.B = AgentConfig{Name: "coin", Kind: RandomAgent}
	conf.Games = 3
	conf.Concurrency = 3
	conf.RandomOpening = 2

	s, err := New(conf, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)
	var rules game.Reversi
	for _, r := range s.Results {
		assert.True(t, rules.Ended(r.Board))
	}
}

func TestTournamentCancelled(t *testing.T) {
	conf := DefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(conf, zerolog.Nop()).Run(ctx)
	assert.Error(t, err)
}

func TestNewPanicsOnInvalidConfig(t *testing.T) {
	conf := DefaultConfig()
	conf.Games = 0
	assert.Panics(t, func() { New(conf, zerolog.Nop()) })
}
