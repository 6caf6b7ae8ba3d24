package alphareversi

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/alphareversi/game"
	"github.com/alphareversi/minimax"
)

// An Agent is a player. It builds a fresh engine for every move, so one agent
// may play several games at once.
type Agent struct {
	Name string

	// Statistics
	Wins     int
	Loss     int
	Draw     int
	Moves    int
	Thinking time.Duration
	sync.Mutex

	conf     AgentConfig
	rules    game.BoardManager
	logger   zerolog.Logger
	searcher Searcher
}

// NewAgent creates an agent playing by rules.
func NewAgent(conf AgentConfig, rules game.BoardManager, logger zerolog.Logger) *Agent {
	return &Agent{
		Name:   conf.Name,
		conf:   conf,
		rules:  rules,
		logger: logger.With().Str("agent", conf.Name).Logger(),
	}
}

// NewSearcherAgent creates an agent that always asks s. s must be safe for
// concurrent use if the agent plays several games at once.
func NewSearcherAgent(name string, s Searcher) *Agent {
	return &Agent{
		Name:     name,
		conf:     AgentConfig{Name: name},
		logger:   zerolog.Nop(),
		searcher: s,
	}
}

// Searcher returns the move picker for the agent's kind.
func (a *Agent) Searcher() Searcher {
	if a.searcher != nil {
		return a.searcher
	}
	if a.conf.Kind == RandomAgent {
		return randomSearcher{a.rules}
	}
	return minimax.New(a.rules, a.conf.Search, minimax.WithLogger(a.logger))
}

// Search returns the agent's move for p on b, or game.NoMove to pass.
func (a *Agent) Search(b game.Board, p game.Player) game.Move {
	start := time.Now()
	s := a.Searcher()
	move := s.SelectMove(b, p)
	if el, ok := s.(ExecLogger); ok && a.conf.Search.Trace {
		a.logger.Debug().Str("log", el.Log()).Msg("execution log")
	}

	a.Lock()
	a.Moves++
	a.Thinking += time.Since(start)
	a.Unlock()
	return move
}

func (a *Agent) record(winner, side game.Cell) {
	a.Lock()
	defer a.Unlock()
	switch winner {
	case game.Empty:
		a.Draw++
	case side:
		a.Wins++
	default:
		a.Loss++
	}
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Moves = 0
	a.Thinking = 0
	a.Unlock()
}

var _ ExecLogger = (*minimax.Engine)(nil)

// randomSearcher plays a uniformly random legal move.
type randomSearcher struct {
	rules game.BoardManager
}

func (r randomSearcher) SelectMove(b game.Board, p game.Player) game.Move {
	moves := r.rules.LegalMoves(b, p)
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[frand.Intn(len(moves))]
}
