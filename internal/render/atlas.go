package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 8
	GlyphHeight = 16
	atlasCols   = 16
	atlasRows   = 16
)

// Glyph codes outside printable ASCII that the panels use.
const (
	GlyphBlock = 219 // █ full block, filled bar segment
	GlyphShade = 176 // ░ light shade, empty bar segment
	GlyphArrow = 16  // ► selection marker
)

// FontAtlas holds a 256-glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas renders printable ASCII with basicfont.Face7x13 and draws the
// few extra panel glyphs by hand.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, atlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % atlasCols) * GlyphWidth
		cy := (code / atlasCols) * GlyphHeight

		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, cx, cy, rune(code))
		case code == GlyphBlock:
			fillGlyph(img, cx, cy, func(x, y int) bool { return true })
		case code == GlyphShade:
			fillGlyph(img, cx, cy, func(x, y int) bool { return (x+y)%4 == 0 })
		case code == GlyphArrow:
			fillGlyph(img, cx, cy, func(x, y int) bool {
				half := 4 - x/2
				return y >= GlyphHeight/2-half && y <= GlyphHeight/2+half
			})
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % atlasCols) * GlyphWidth
		y := (code / atlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders one 7x13 basicfont character into its 8x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+13),
	}
	d.DrawString(string(r))
}

func fillGlyph(img *image.NRGBA, cellX, cellY int, on func(x, y int) bool) {
	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if on(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
