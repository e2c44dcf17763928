package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyphMasks holds one 8x16 bitmask per ASCII code point, one byte per
// row with bit N covering column N. The atlas is rasterised once at init
// from basicfont's 7x13 face so the per-frame glyph path is pure bit
// tests with no font machinery on it.
var glyphMasks [128][GlyphH]uint8

// Baseline row inside the 16px cell. Face7x13 has an 11px ascent and 2px
// descent, so baseline 12 leaves one blank row above and below.
const glyphBaseline = 12

func init() {
	cell := image.NewAlpha(image.Rect(0, 0, GlyphW, GlyphH))
	drawer := &font.Drawer{
		Dst:  cell,
		Src:  image.NewUniform(color.Alpha{A: 0xFF}),
		Face: basicfont.Face7x13,
	}
	for ch := 0x20; ch < 0x7f; ch++ {
		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		drawer.Dot = fixed.P(0, glyphBaseline)
		drawer.DrawString(string(rune(ch)))

		for row := 0; row < GlyphH; row++ {
			var bits uint8
			for col := 0; col < GlyphW; col++ {
				if cell.AlphaAt(col, row).A >= 0x80 {
					bits |= 1 << col
				}
			}
			glyphMasks[ch][row] = bits
		}
	}
	// Control characters and DEL stay blank.
}
