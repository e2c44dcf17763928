// Package render paints the viewer's screens into a fixed-size XRGB8888
// pixel buffer. Everything is immediate mode: each frame starts from a
// full clear and redraws from scratch, so there is no damage tracking and no
// state carried between frames beyond the caller's inputs.
package render

import (
	"image"
	"image/color"
)

// Drawer owns the framebuffer and provides the glyph and rectangle
// primitives the screen renderers are built from. Not safe for concurrent
// use; the core drives it from its single per-tick update.
type Drawer struct {
	pix []uint32
}

func NewDrawer() *Drawer {
	return &Drawer{pix: make([]uint32, ScreenW*ScreenH)}
}

// Pixels returns the backing buffer: ScreenW*ScreenH packed XRGB8888
// values in row-major order. The slice is owned by the Drawer and
// overwritten on every frame.
func (d *Drawer) Pixels() []uint32 { return d.pix }

// At returns the pixel at (x, y), or 0 outside the screen.
func (d *Drawer) At(x, y int) uint32 {
	if x < 0 || x >= ScreenW || y < 0 || y >= ScreenH {
		return 0
	}
	return d.pix[y*ScreenW+x]
}

// Clear fills the screen with the border color and the inner text area
// with the background color.
func (d *Drawer) Clear() {
	for i := range d.pix {
		d.pix[i] = ColBorder
	}
	d.FillRect(BorderCols*GlyphW, BorderRows*GlyphH,
		(TermCols-BorderCols)*GlyphW, (TermRows-BorderRows)*GlyphH, ColBG)
}

// FillRect fills [x0,x1) x [y0,y1), clipped to the screen.
func (d *Drawer) FillRect(x0, y0, x1, y1 int, col uint32) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > ScreenW {
		x1 = ScreenW
	}
	if y1 > ScreenH {
		y1 = ScreenH
	}
	for y := y0; y < y1; y++ {
		row := d.pix[y*ScreenW : (y+1)*ScreenW]
		for x := x0; x < x1; x++ {
			row[x] = col
		}
	}
}

// glyph draws one 8x16 glyph cell at pixel position (px, py), clipped.
// Bytes outside ASCII render as '?'.
func (d *Drawer) glyph(px, py int, ch byte, col uint32) {
	if ch >= 128 {
		ch = '?'
	}
	mask := &glyphMasks[ch]
	for row := 0; row < GlyphH; row++ {
		sy := py + row
		if sy < 0 || sy >= ScreenH {
			continue
		}
		bits := mask[row]
		if bits == 0 {
			continue
		}
		for colIdx := 0; colIdx < GlyphW; colIdx++ {
			if bits&(1<<colIdx) == 0 {
				continue
			}
			sx := px + colIdx
			if sx < 0 || sx >= ScreenW {
				continue
			}
			d.pix[sy*ScreenW+sx] = col
		}
	}
}

// Text draws a string at text-area cell coordinates (col, row are 0-based
// inside the bordered area). Anything past the text width is truncated.
func (d *Drawer) Text(col, row int, s string, color uint32) {
	scol := col + BorderCols
	srow := row + BorderRows
	for i := 0; i < len(s) && col+i < TextCols; i++ {
		d.glyph((scol+i)*GlyphW, srow*GlyphH, s[i], color)
	}
}

// TextInv draws a string over a full-width filled row, used for the TOC
// cursor bar.
func (d *Drawer) TextInv(col, row int, s string, fg, bg uint32) {
	scol := col + BorderCols
	srow := row + BorderRows
	px0 := scol * GlyphW
	py0 := srow * GlyphH
	d.FillRect(px0, py0, px0+TextCols*GlyphW, py0+GlyphH, bg)
	for i := 0; i < len(s) && col+i < TextCols; i++ {
		d.glyph((scol+i)*GlyphW, py0, s[i], fg)
	}
}

// HLine draws a full-width row of the given character.
func (d *Drawer) HLine(row int, ch byte, color uint32) {
	srow := row + BorderRows
	py := srow * GlyphH
	for i := 0; i < TextCols; i++ {
		d.glyph((BorderCols+i)*GlyphW, py, ch, color)
	}
}

// RGBA copies the buffer into a new image for hosts that want to encode or
// rescale the frame with the image packages.
func (d *Drawer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenW, ScreenH))
	for y := 0; y < ScreenH; y++ {
		for x := 0; x < ScreenW; x++ {
			px := d.pix[y*ScreenW+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(px >> 16),
				G: uint8(px >> 8),
				B: uint8(px),
				A: 0xFF,
			})
		}
	}
	return img
}
