package render

import (
	"strings"
	"testing"

	"github.com/retrofab/emupages/internal/content"
)

func TestClearTwoTone(t *testing.T) {
	d := NewDrawer()
	d.Clear()

	// Corners are border; the center of the text area is background.
	corners := [][2]int{{0, 0}, {ScreenW - 1, 0}, {0, ScreenH - 1}, {ScreenW - 1, ScreenH - 1}}
	for _, c := range corners {
		if got := d.At(c[0], c[1]); got != ColBorder {
			t.Errorf("corner (%d,%d) = %#x, expected border color", c[0], c[1], got)
		}
	}
	if got := d.At(ScreenW/2, ScreenH/2); got != ColBG {
		t.Errorf("center = %#x, expected background color", got)
	}
}

func TestFillRectClips(t *testing.T) {
	d := NewDrawer()
	d.FillRect(-50, -50, ScreenW+50, 10, ColTitle) // must not panic
	if d.At(0, 0) != ColTitle {
		t.Error("clipped fill should still cover in-bounds pixels")
	}
}

func TestTextTruncatesAtTextWidth(t *testing.T) {
	long := strings.Repeat("M", TextCols+40)

	a := NewDrawer()
	a.Clear()
	a.Text(0, 5, long, ColFG)

	b := NewDrawer()
	b.Clear()
	b.Text(0, 5, long[:TextCols], ColFG)

	if !equalPixels(a.Pixels(), b.Pixels()) {
		t.Error("text beyond the column budget should be dropped, not drawn")
	}

	// Nothing may leak into the right border.
	for y := 0; y < ScreenH; y++ {
		if a.At(ScreenW-1, y) != ColBorder {
			t.Fatalf("border pixel overwritten at y=%d", y)
		}
	}
}

func TestTextOffsetTruncation(t *testing.T) {
	// A string starting mid-row still stops at the same absolute column.
	d := NewDrawer()
	d.Clear()
	d.Text(TextCols-2, 5, "WWWW", ColFG)

	ref := NewDrawer()
	ref.Clear()
	ref.Text(TextCols-2, 5, "WW", ColFG)

	if !equalPixels(d.Pixels(), ref.Pixels()) {
		t.Error("offset text should truncate at the text-area edge")
	}
}

func TestTextInvFillsFullRow(t *testing.T) {
	d := NewDrawer()
	d.Clear()
	d.TextInv(0, 4, " > X", ColCursorFG, ColHighlight)

	// The bar spans the whole text width even past the string.
	py := (4 + BorderRows) * GlyphH
	rightEdge := (BorderCols+TextCols)*GlyphW - 1
	if got := d.At(rightEdge, py); got != ColHighlight {
		t.Errorf("right edge of cursor bar = %#x, expected highlight fill", got)
	}
}

func TestHLineSpansTextArea(t *testing.T) {
	d := NewDrawer()
	d.Clear()
	d.HLine(3, '-', ColDim)
	if !containsColor(d, ColDim) {
		t.Error("rule line should draw dim glyphs")
	}
}

func TestGlyphsOutsideASCIIFallBack(t *testing.T) {
	a := NewDrawer()
	a.Clear()
	a.Text(0, 0, "\xfe\xff", ColFG)

	b := NewDrawer()
	b.Clear()
	b.Text(0, 0, "??", ColFG)

	if !equalPixels(a.Pixels(), b.Pixels()) {
		t.Error("bytes outside ASCII should render as '?'")
	}
}

func TestMascotFadeEndpoints(t *testing.T) {
	base := NewDrawer()
	base.Clear()

	faded := NewDrawer()
	faded.Clear()
	faded.Mascot(ScreenW/2, ScreenH/2-40, 0)
	if !equalPixels(base.Pixels(), faded.Pixels()) {
		t.Error("alpha 0 should blend fully into the background")
	}

	opaque := NewDrawer()
	opaque.Clear()
	opaque.Mascot(ScreenW/2, ScreenH/2-40, 255)
	if !containsColor(opaque, 0xFF3A2E20) {
		t.Error("alpha 255 should draw the sprite's exact colors")
	}
}

func TestMascotClipsOffscreen(t *testing.T) {
	d := NewDrawer()
	d.Clear()
	d.Mascot(-MascotW, -MascotH, 255) // must not panic
	d.Mascot(ScreenW+MascotW, ScreenH+MascotH, 255)
}

func TestTOCHighlightsCursorRow(t *testing.T) {
	d := NewDrawer()
	d.TOC(0, 0)
	if !containsColor(d, ColHighlight) {
		t.Error("TOC should draw the cursor highlight bar")
	}
	if !containsColor(d, ColTitle) {
		t.Error("TOC should draw the white title")
	}
}

func TestTOCScrollIndicators(t *testing.T) {
	listRows := ContentRows - 3
	if content.Count() <= listRows {
		t.Skip("catalog fits in one window; no indicators to test")
	}

	top := NewDrawer()
	top.TOC(0, 0)
	scrolled := NewDrawer()
	scrolled.TOC(listRows, 1)
	if equalPixels(top.Pixels(), scrolled.Pixels()) {
		t.Error("scrolled TOC should differ from the top window")
	}
}

func TestPageRendersStyles(t *testing.T) {
	// Find a page with an H2 heading; the generated catalog always has one.
	pageIdx := -1
	for i := 0; i < content.Count(); i++ {
		for _, ln := range content.At(i).Lines {
			if ln.Style == content.H2 {
				pageIdx = i
				break
			}
		}
		if pageIdx >= 0 {
			break
		}
	}
	if pageIdx < 0 {
		t.Fatal("catalog has no H2 line to render")
	}

	d := NewDrawer()
	d.Page(pageIdx, 0)
	if !containsColor(d, ColH2) {
		t.Error("page view should color H2 headings")
	}
	if !containsColor(d, ColTitle) {
		t.Error("page view should draw the header in white")
	}
}

func TestPageDeterministic(t *testing.T) {
	a := NewDrawer()
	b := NewDrawer()
	a.Page(0, 0)
	b.TOC(0, 0) // dirty the buffer with a different screen first
	b.Page(0, 0)
	if !equalPixels(a.Pixels(), b.Pixels()) {
		t.Error("page render must not depend on previous frame contents")
	}
}
