package minimax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphareversi/game"
)

func TestTreeDot(t *testing.T) {
	e := newEngine(2)
	res := e.Search(game.NewBoard(), game.Black)

	dot, err := res.Tree.Dot()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "digraph tree"))
	assert.Equal(t, res.Tree.Len()-1, strings.Count(dot, "->"))
	assert.Contains(t, dot, `"d3"`)
	assert.Contains(t, dot, "MAX")
	assert.Contains(t, dot, "MIN")
}

func TestTreeGenerate(t *testing.T) {
	tr := newEngine(2).Generate(game.NewBoard(), game.Black)
	assert.Equal(t, 17, tr.Len())
	assert.Equal(t, 16, tr.countChildren(tr.root()))

	kids := tr.RootChildren()
	require.Len(t, kids, 4)
	for i, want := range []game.Move{19, 26, 37, 44} {
		assert.Equal(t, want, kids[i].Move())
		assert.Equal(t, Min, kids[i].Kind())
		_, ok := kids[i].Utility()
		assert.False(t, ok)
	}

	last := tr.Len() - 1
	path := tr.Path(last)
	require.Len(t, path, 2)
	assert.Equal(t, game.Move(44), path[0])
	assert.Nil(t, tr.Path(0))
}
