package game

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	b := NewBoard()
	img, err := Render(b, 19)
	require.NoError(t, err)
	assert.Equal(t, 2*margin+ColNum*tileSize, img.Bounds().Dx())

	center := func(m Move) color.RGBA {
		return img.RGBAAt(margin+m.Col()*tileSize+tileSize/2, margin+m.Row()*tileSize+tileSize/2)
	}
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, center(28))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, center(27))
	assert.Equal(t, markColor, center(19))
	assert.Equal(t, feltColor, center(0))
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, NewBoard()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2*margin+RowNum*tileSize, img.Bounds().Dy())
}
