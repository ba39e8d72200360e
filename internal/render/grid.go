package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is a single character cell of a text panel.
type Cell struct {
	Glyph byte
	FG    uint8 // palette index
	BG    uint8 // palette index
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a buffer of blank panel cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell. Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank panel background.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorText, BG: ColorPanel}
	}
}

// WriteString writes s starting at (x, y) on the panel background and
// returns the column after the last character. Runes past 255 become '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg uint8) int {
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x, y, byte(ch), fg, ColorPanel)
		x++
	}
	return x
}

// Bar draws a width-cell gauge filled in proportion to val/max.
func (b *CellBuffer) Bar(x, y, width int, val, max int64, fg uint8) {
	filled := 0
	if max > 0 && val > 0 {
		filled = int(int64(width) * min(val, max) / max)
	}
	for i := 0; i < width; i++ {
		if i < filled {
			b.Set(x+i, y, GlyphBlock, fg, ColorPanel)
		} else {
			b.Set(x+i, y, GlyphShade, ColorDim, ColorPanel)
		}
	}
}

// GridRenderer draws a CellBuffer onto an Ebitengine image.
type GridRenderer struct {
	Atlas   *FontAtlas
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer for the given atlas.
func NewGridRenderer(atlas *FontAtlas) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{Atlas: atlas, bgPixel: bgPixel}
}

// Draw renders the whole buffer with its top-left corner at (ox, oy).
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer, ox, oy float64) {
	var op ebiten.DrawImageOptions

	// One stretched pixel for the panel background
	op.GeoM.Scale(float64(buf.Cols*GlyphWidth), float64(buf.Rows*GlyphHeight))
	op.GeoM.Translate(ox, oy)
	op.ColorScale.ScaleWithColor(Palette[ColorPanel])
	screen.DrawImage(r.bgPixel, &op)

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := ox + float64(x*GlyphWidth)
			py := oy + float64(y*GlyphHeight)

			if cell.BG != ColorPanel {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(GlyphWidth, GlyphHeight)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}
