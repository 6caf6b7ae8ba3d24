package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphareversi/game"
	"github.com/alphareversi/minimax"
)

func post(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newHandler() http.Handler {
	return New(minimax.DefaultConfig(), zerolog.Nop()).Handler()
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestMove(t *testing.T) {
	depth := 2
	rec := post(t, newHandler(), "/api/move", positionRequest{
		Board:  game.NewBoard().Compact(),
		Player: "black",
		Depth:  &depth,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp moveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 19, resp.Move)
	assert.Equal(t, "d3", resp.Coord)
	assert.False(t, resp.Pass)
	assert.Equal(t, []string{"d3", "c4", "f5", "e6"}, resp.Legal)
	assert.Equal(t, float32(-1), resp.Utility)
	assert.Equal(t, 15, resp.Nodes)

	after, err := game.ParseBoard(resp.Board)
	require.NoError(t, err)
	assert.Equal(t, 4, game.Reversi{}.CountPieces(after, game.Black))
}

func TestMovePass(t *testing.T) {
	rec := post(t, newHandler(), "/api/move", positionRequest{
		Board:  strings.Repeat("X", game.NumTiles),
		Player: "white",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp moveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Pass)
	assert.Equal(t, -1, resp.Move)
	assert.Equal(t, "pass", resp.Coord)
	assert.Empty(t, resp.Legal)
}

func TestMoveBadRequest(t *testing.T) {
	h := newHandler()
	depth := -3
	cases := []positionRequest{
		{Board: "XO", Player: "black"},
		{Board: game.NewBoard().Compact(), Player: "red"},
		{Board: game.NewBoard().Compact(), Player: "black", Depth: &depth},
	}
	for _, c := range cases {
		rec := post(t, h, "/api/move", c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluate(t *testing.T) {
	b := game.Reversi{}.Apply(game.NewBoard(), 19, game.Black)
	rec := post(t, newHandler(), "/api/evaluate", positionRequest{Board: b.Compact(), Player: "b"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp evaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float32(1.5), resp.Utility)
	assert.Equal(t, float32(0.5), resp.Phase)
	assert.Equal(t, minimax.Features{Material: 3, Pieces: 5}, resp.Features)
}

func TestRender(t *testing.T) {
	rec := post(t, newHandler(), "/api/render", positionRequest{Board: game.NewBoard().Compact(), Player: "w"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}
