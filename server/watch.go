package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/alphareversi"
	"github.com/alphareversi/game"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// watchRequest is the first message a watcher sends. A zero depth means the
// server's default depth.
type watchRequest struct {
	BlackDepth    int `json:"black_depth"`
	WhiteDepth    int `json:"white_depth"`
	RandomOpening int `json:"random_opening"`
}

type watchMessage struct {
	Type   string `json:"type"` // "ply", "result" or "error"
	Number int    `json:"number,omitempty"`
	Player string `json:"player,omitempty"`
	Coord  string `json:"coord,omitempty"`
	Board  string `json:"board,omitempty"`
	Winner string `json:"winner,omitempty"`
	Error  string `json:"error,omitempty"`

	BlackPieces int `json:"black_pieces"`
	WhitePieces int `json:"white_pieces"`
}

func (s *Server) agentConfig(name string, depth int) alphareversi.AgentConfig {
	conf := s.conf
	if depth != 0 {
		conf.MaxDepth = depth
	}
	return alphareversi.AgentConfig{Name: name, Kind: alphareversi.MinimaxAgent, Search: conf}
}

// handleWatch plays one engine against engine game and streams every ply over a
// websocket, followed by the result.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req watchRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid watch request")
		return
	}
	black, white := s.agentConfig("black", req.BlackDepth), s.agentConfig("white", req.WhiteDepth)
	conf := alphareversi.Config{A: black, B: white, Games: 1, Concurrency: 1, RandomOpening: req.RandomOpening}
	if err := conf.Validate(); err != nil {
		_ = conn.WriteJSON(watchMessage{Type: "error", Error: err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	logger := s.logger.With().Str("watch", r.RemoteAddr).Logger()
	arena := alphareversi.MakeArena(
		alphareversi.NewAgent(black, s.rules, logger),
		alphareversi.NewAgent(white, s.rules, logger),
		req.RandomOpening, logger)
	arena.Observe(func(p alphareversi.Ply) {
		msg := watchMessage{
			Type:        "ply",
			Number:      p.Number,
			Player:      p.Player.String(),
			Coord:       p.Move.String(),
			Board:       p.Board.Compact(),
			BlackPieces: s.rules.CountPieces(p.Board, game.Black),
			WhitePieces: s.rules.CountPieces(p.Board, game.White),
		}
		if err := conn.WriteJSON(msg); err != nil {
			logger.Debug().Err(err).Msg("watcher went away")
			cancel()
		}
	})

	res, err := arena.Play(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.Error().Err(err).Msg("watched game failed")
		_ = conn.WriteJSON(watchMessage{Type: "error", Error: err.Error()})
		return
	}
	_ = conn.WriteJSON(watchMessage{
		Type:        "result",
		Number:      len(res.Moves),
		Board:       res.Board.Compact(),
		Winner:      res.Winner.String(),
		BlackPieces: res.BlackPieces,
		WhitePieces: res.WhitePieces,
	})
}
