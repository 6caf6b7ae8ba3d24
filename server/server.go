package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/alphareversi/game"
	"github.com/alphareversi/minimax"
)

// Server answers move requests over HTTP. Every request gets its own engine.
type Server struct {
	rules  game.Reversi
	conf   minimax.Config
	logger zerolog.Logger
}

func New(conf minimax.Config, logger zerolog.Logger) *Server {
	return &Server{conf: conf, logger: logger}
}

type positionRequest struct {
	Board  string `json:"board"`
	Player string `json:"player"`
	Depth  *int   `json:"depth,omitempty"`
}

type moveResponse struct {
	Move    int      `json:"move"`
	Coord   string   `json:"coord"`
	Pass    bool     `json:"pass"`
	Legal   []string `json:"legal"`
	Board   string   `json:"board"` // position after the move
	Utility float32  `json:"utility"`
	Nodes   int      `json:"nodes"`
}

type evaluateResponse struct {
	Utility  float32          `json:"utility"`
	Features minimax.Features `json:"features"`
	Phase    float32          `json:"phase"`
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/api/move", s.handleMove)
	r.Post("/api/evaluate", s.handleEvaluate)
	r.Post("/api/render", s.handleRender)
	r.Get("/api/watch", s.handleWatch)
	return r
}

func (s *Server) decode(r *http.Request) (game.Board, game.Player, minimax.Config, error) {
	var payload positionRequest
	conf := s.conf
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return game.Board{}, game.Empty, conf, errors.Wrap(err, "invalid payload")
	}
	b, err := game.ParseBoard(payload.Board)
	if err != nil {
		return b, game.Empty, conf, err
	}
	p, err := game.ParsePlayer(payload.Player)
	if err != nil {
		return b, p, conf, err
	}
	if payload.Depth != nil {
		conf.MaxDepth = *payload.Depth
	}
	return b, p, conf, conf.Validate()
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	b, p, conf, err := s.decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	log := s.logger.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
	engine := minimax.New(s.rules, conf, minimax.WithLogger(log))
	legal := s.rules.LegalMoves(b, p)
	move, res := engine.Choose(b, p)

	resp := moveResponse{
		Move:  int(move),
		Coord: move.String(),
		Pass:  move == game.NoMove,
		Legal: make([]string, len(legal)),
		Board: b.Compact(),
	}
	for i, m := range legal {
		resp.Legal[i] = m.String()
	}
	if !resp.Pass {
		after := s.rules.Apply(b, move, p)
		resp.Board = after.Compact()
		resp.Utility = res.Utility
		resp.Nodes = res.Nodes
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	b, p, conf, err := s.decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	eval := minimax.NewEvaluator(s.rules, conf.Weights)
	f := eval.Features(b, p)
	writeJSON(w, http.StatusOK, evaluateResponse{
		Utility:  eval.Evaluate(b, p),
		Features: f,
		Phase:    minimax.PhaseMultiplier(f.Pieces),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	b, p, _, err := s.decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := game.RenderPNG(w, b, s.rules.LegalMoves(b, p)...); err != nil {
		s.logger.Error().Err(err).Msg("render failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
