package enclose

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/enclose/internal/grid"
)

// Colors used by Image.
var (
	BackgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ExteriorColor   = color.RGBA{0xee, 0xee, 0xee, 0xff}
	WallColor       = color.RGBA{0x33, 0x33, 0x33, 0xff}
	FilledColor     = color.RGBA{0x6c, 0xa6, 0xd9, 0xff}
	HighlightColor  = color.RGBA{0xe8, 0x5d, 0x3f, 0xff}
	CaptionColor    = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// captionPad is the gap in pixels around the caption line.
const captionPad = 2

// Image renders the compacted grid with one scale×scale block per cell.
// Compacted rows run down the image and columns run across it, so cells are
// drawn at equal size regardless of the raw interval widths.
//
// If highlight is non-nil and Found, cells covered by its rectangle are
// tinted and a caption with its area is drawn below the grid.
// A scale below 1 is treated as 1.
func (r *Region) Image(scale int, highlight *Result) *image.RGBA {
	scale = max(scale, 1)
	rows, cols := r.Rows(), r.Cols()

	var mark image.Rectangle
	if highlight != nil && highlight.Found {
		r1, c1 := r.Locate(highlight.A)
		r2, c2 := r.Locate(highlight.B)
		mark = image.Rect(min(c1, c2), min(r1, r2), max(c1, c2)+1, max(r1, r2)+1)
	}

	cells := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for row := range rows {
		for col := range cols {
			c := cellColor(r.cells.At(row, col))
			if (image.Point{X: col, Y: row}).In(mark) {
				c = mix(c, HighlightColor)
			}
			cells.SetRGBA(col, row, c)
		}
	}

	face := basicfont.Face7x13
	captionHeight := 0
	if !mark.Empty() {
		captionHeight = face.Metrics().Height.Ceil() + 2*captionPad
	}

	gridRect := image.Rect(0, 0, cols*scale, rows*scale)
	out := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale+captionHeight))
	xdraw.Draw(out, out.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, xdraw.Src)
	xdraw.NearestNeighbor.Scale(out, gridRect, cells, cells.Bounds(), xdraw.Src, nil)

	if captionHeight > 0 {
		d := &font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(CaptionColor),
			Face: face,
			Dot:  fixed.P(captionPad, gridRect.Max.Y+captionPad+face.Metrics().Ascent.Ceil()),
		}
		d.DrawString(fmt.Sprintf("area %d", highlight.Area))
	}
	return out
}

// SavePNG renders the region with Image and writes it to a PNG file.
func (r *Region) SavePNG(path string, scale int, highlight *Result) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.Image(scale, highlight))
}

func cellColor(c grid.Cell) color.RGBA {
	switch c {
	case grid.Wall:
		return WallColor
	case grid.Filled:
		return FilledColor
	default:
		return ExteriorColor
	}
}

// mix averages two opaque colors.
func mix(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 0xff,
	}
}
