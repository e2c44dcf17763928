package render

// Screen geometry. The terminal grid is 80x30 glyph cells; a two-column,
// one-row border frames a 76x28 text area.
const (
	ScreenW = 640
	ScreenH = 480
	GlyphW  = 8
	GlyphH  = 16

	TermCols = ScreenW / GlyphW
	TermRows = ScreenH / GlyphH

	BorderCols = 2
	BorderRows = 1
	TextCols   = TermCols - 2*BorderCols
	TextRows   = TermRows - 2*BorderRows

	HeaderRow    = 0
	ContentStart = 2
	FooterRow    = 27
	ContentRows  = 25
)

// C64-inspired blue palette, packed XRGB8888.
const (
	ColBorder    = 0xFF6C5EB5 // medium blue, outer border
	ColBG        = 0xFF4039A4 // C64 blue, main background
	ColFG        = 0xFFA0A0E0 // light lavender, body text
	ColTitle     = 0xFFFFFFFF // white, page titles
	ColHighlight = 0xFF70E070 // green, selected item
	ColH2        = 0xFFE0E050 // yellow, H2 headings
	ColH3        = 0xFFC8C8E0 // bright lavender, H3 headings
	ColDim       = 0xFF7070C0 // dimmed blue, footer hints
	ColCursorFG  = 0xFF2020A0 // dark blue text on the green cursor bar
	ColBar       = 0xFF924A40 // tape-loading red, progress bar
)
