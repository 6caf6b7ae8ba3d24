package minimax

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"

	"github.com/alphareversi/game"
)

/*
Here lies the decision engine. node.go and tree.go handle the data structure stuff,
eval.go scores leaves and utils.go turns the searched tree back into a move.

Generation and pruning are interleaved: a child is only built once every earlier
sibling has been searched, so a cut skips building the rest.
*/

// Engine selects moves for one player at a time. It is not safe for concurrent use.
type Engine struct {
	Config
	bm     game.BoardManager
	eval   Evaluator
	logger zerolog.Logger

	lumberjack
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine that consults bm for every rule of the game.
func New(bm game.BoardManager, conf Config, opts ...Option) *Engine {
	retVal := &Engine{
		Config:     conf,
		bm:         bm,
		eval:       NewEvaluator(bm, conf.Weights),
		logger:     zerolog.Nop(),
		lumberjack: makeLumberJack(),
	}
	for _, opt := range opts {
		opt(retVal)
	}
	return retVal
}

// Result is the outcome of a search.
type Result struct {
	Utility float32 // utility of the root
	Nodes   int     // nodes visited, root included
	Leaves  int     // nodes evaluated statically
	Cutoffs int     // nodes at which later siblings were skipped
	Expired bool    // the timeout was hit
	Elapsed time.Duration

	Tree *Tree
}

type searchState struct {
	*Engine
	tree     *Tree
	player   game.Player // the searching player
	maxDepth int
	deadline time.Time

	nodes, leaves, cutoffs int
	expired                bool
}

func (e *Engine) newSearchState(board game.Board, player game.Player, maxDepth int) *searchState {
	s := &searchState{
		Engine:   e,
		tree:     newTree(defaultTreeCapacity),
		player:   player,
		maxDepth: maxDepth,
	}
	if e.Timeout > 0 {
		s.deadline = time.Now().Add(e.Timeout)
	}
	s.tree.alloc(board, Max, game.NoMove, nilNode)
	return s
}

// mover returns who acts at a node of kind k.
func (s *searchState) mover(k Kind) game.Player {
	if k == Max {
		return s.player
	}
	return s.player.Opponent()
}

func (s *searchState) isExpired() bool {
	if s.deadline.IsZero() {
		return false
	}
	if !s.expired && time.Now().After(s.deadline) {
		s.expired = true
	}
	return s.expired
}

// leaf evaluates n statically.
func (s *searchState) leaf(n naughty) float32 {
	node := s.tree.nodeFromNaughty(n)
	node.utility = s.eval.Evaluate(node.board, s.player)
	node.status = Leaf
	s.leaves++
	if s.Trace {
		s.log("leaf %v", node)
	}
	return node.utility
}

// Search runs the pruned search from board for player down to MaxDepth plies.
func (e *Engine) Search(board game.Board, player game.Player) Result {
	return e.search(board, player, e.MaxDepth)
}

func (e *Engine) search(board game.Board, player game.Player, maxDepth int) Result {
	start := time.Now()
	s := e.newSearchState(board, player, maxDepth)
	root := s.tree.root()
	utility := s.alphabeta(root, 0, math32.Inf(-1), math32.Inf(1))

	retVal := Result{
		Utility: utility,
		Nodes:   s.nodes,
		Leaves:  s.leaves,
		Cutoffs: s.cutoffs,
		Expired: s.expired,
		Elapsed: time.Since(start),
		Tree:    s.tree,
	}
	e.log("search player %v depth %d: utility %v nodes %d leaves %d cutoffs %d expired %v in %v",
		player, maxDepth, retVal.Utility, retVal.Nodes, retVal.Leaves, retVal.Cutoffs, retVal.Expired, retVal.Elapsed)
	return retVal
}

// alphabeta generates the children of n one at a time, searching each before the
// next is built, and stops as soon as the window closes.
func (s *searchState) alphabeta(n naughty, depth int, alpha, beta float32) float32 {
	s.nodes++
	if depth >= s.maxDepth || (depth > 0 && s.isExpired()) {
		return s.leaf(n)
	}

	// copies: the arena may grow while children are searched
	board := s.tree.nodes[n].board
	kind := s.tree.nodes[n].kind
	mover := s.mover(kind)

	moves := s.bm.LegalMoves(board, mover)
	if len(moves) == 0 {
		return s.leaf(n)
	}

	isMax := kind == Max
	status := Valued
	for i, m := range moves {
		child := s.tree.addChild(n, s.bm.Apply(board, m, mover), m)
		utility := s.alphabeta(child, depth+1, alpha, beta)
		if isMax {
			alpha = math32.Max(alpha, utility)
		} else {
			beta = math32.Min(beta, utility)
		}
		if beta <= alpha {
			if i < len(moves)-1 {
				status = Pruned
				s.cutoffs++
			}
			break
		}
	}

	node := s.tree.nodeFromNaughty(n)
	node.status = status
	if isMax {
		node.utility = alpha
	} else {
		node.utility = beta
	}
	if s.Trace {
		s.log("%v window [%v, %v]", node, alpha, beta)
	}
	return node.utility
}

// SelectMove returns the move for player on board, or game.NoMove when player
// has no legal move. With MaxDepth below 1 it still looks one ply ahead.
func (e *Engine) SelectMove(board game.Board, player game.Player) game.Move {
	move, _ := e.Choose(board, player)
	return move
}

// Choose is SelectMove that also returns the search it was based on. The
// result is empty when player has no legal move.
func (e *Engine) Choose(board game.Board, player game.Player) (game.Move, Result) {
	legal := e.bm.LegalMoves(board, player)
	if len(legal) == 0 {
		e.logger.Debug().Stringer("player", player).Msg("no moves available")
		e.log("no moves available for %v", player)
		return game.NoMove, Result{}
	}

	depth := e.MaxDepth
	if depth < 1 {
		depth = 1
	}
	res := e.search(board, player, depth)
	best := SelectBestMove(res.Tree)
	move, err := resolve(res.Tree, best, legal)
	if err != nil {
		e.logger.Error().Err(err).Stringer("player", player).Str("board", board.Compact()).Msg("cannot map best child to a move")
		panic(err)
	}

	e.logger.Debug().
		Stringer("player", player).
		Stringer("move", move).
		Float32("utility", res.Utility).
		Int("nodes", res.Nodes).
		Int("cutoffs", res.Cutoffs).
		Dur("elapsed", res.Elapsed).
		Msg("move selected")
	return move, res
}

// SelectMove searches maxDepth plies with the default weights.
func SelectMove(bm game.BoardManager, board game.Board, player game.Player, maxDepth int) game.Move {
	conf := DefaultConfig()
	conf.MaxDepth = maxDepth
	return New(bm, conf).SelectMove(board, player)
}
