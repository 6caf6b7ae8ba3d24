package game

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
)

const (
	tileSize  = 48
	margin    = 24
	discSides = 48
)

var (
	feltColor   = color.RGBA{0x1b, 0x6b, 0x3a, 0xff}
	gridColor   = color.RGBA{0x0b, 0x3d, 0x20, 0xff}
	markColor   = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	borderColor = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// RenderPNG draws b as a PNG image into w. Highlighted moves are marked with a dot.
func RenderPNG(w io.Writer, b Board, highlight ...Move) error {
	img, err := Render(b, highlight...)
	if err != nil {
		return err
	}
	return errors.WithStack(png.Encode(w, img))
}

// Render draws b with coordinate labels along the edges.
func Render(b Board, highlight ...Move) (*image.RGBA, error) {
	size := 2*margin + ColNum*tileSize
	img := image.NewRGBA(image.Rect(0, 0, size, 2*margin+RowNum*tileSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(borderColor), image.Point{}, draw.Src)
	board := image.Rect(margin, margin, margin+ColNum*tileSize, margin+RowNum*tileSize)
	draw.Draw(img, board, image.NewUniform(feltColor), image.Point{}, draw.Src)

	grid := image.NewUniform(gridColor)
	for i := 0; i <= ColNum; i++ {
		x := margin + i*tileSize
		draw.Draw(img, image.Rect(x-1, margin, x+1, board.Max.Y), grid, image.Point{}, draw.Src)
	}
	for i := 0; i <= RowNum; i++ {
		y := margin + i*tileSize
		draw.Draw(img, image.Rect(margin, y-1, board.Max.X, y+1), grid, image.Point{}, draw.Src)
	}

	for i, c := range b {
		if c == Empty {
			continue
		}
		fill := color.Black
		if c == White {
			fill = color.White
		}
		disc(img, Move(i), 0.42*tileSize, fill)
	}
	for _, m := range highlight {
		if m.IsValid() {
			disc(img, m, 0.12*tileSize, markColor)
		}
	}

	if err := labels(img); err != nil {
		return nil, err
	}
	return img, nil
}

// disc fills a polygonal circle centred on tile m.
func disc(dst *image.RGBA, m Move, radius float64, c color.Color) {
	bounds := dst.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	cx := float64(margin + m.Col()*tileSize + tileSize/2)
	cy := float64(margin + m.Row()*tileSize + tileSize/2)
	z.MoveTo(float32(cx+radius), float32(cy))
	for i := 1; i < discSides; i++ {
		theta := 2 * math.Pi * float64(i) / discSides
		z.LineTo(float32(cx+radius*math.Cos(theta)), float32(cy+radius*math.Sin(theta)))
	}
	z.ClosePath()
	z.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}

func labels(dst *image.RGBA) error {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return errors.Wrap(err, "parse font")
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(14)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)

	for col := 0; col < ColNum; col++ {
		pt := freetype.Pt(margin+col*tileSize+tileSize/2-4, margin-6)
		if _, err := ctx.DrawString(string(rune('a'+col)), pt); err != nil {
			return errors.WithStack(err)
		}
	}
	for row := 0; row < RowNum; row++ {
		pt := freetype.Pt(margin/2-4, margin+row*tileSize+tileSize/2+5)
		if _, err := ctx.DrawString(string(rune('1'+row)), pt); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
