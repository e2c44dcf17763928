package render

// Boot sequence timeline (frame-counted at 60 fps):
//
//	Phase 1, frames 0-359: C64 BASIC prompt. Banner and RAM line appear
//	  instantly, READY. at 10, the LOAD command types at 4 frames/char
//	  from 20 with a blinking caret, SEARCHING at 110, LOADING at 230,
//	  READY. at 340, RUN types from 345.
//	Phase 2, frames 360-559: mascot fades in over 60 frames, segmented
//	  loading bar fills, status line appears.
//	Phase 3, frame 560 on: hold the completed screen.
//
// Rendering is a pure function of the frame counter, so any frame can be
// drawn (and tested) in isolation.

const (
	bootPhase2Start = 360
	bootPhase3Start = 560

	typeCadence = 4 // frames per typed character
	caretPeriod = 30
)

const (
	bootBanner    = "**** COMMODORE 64 BASIC V2 ****"
	bootRAMLine   = "64K RAM SYSTEM  38911 BASIC BYTES FREE"
	bootLoadCmd   = "LOAD \"EMUVR\",8,1"
	bootRunCmd    = "RUN"
	bootSearching = "SEARCHING FOR EMUVR"
	bootLoading   = "LOADING"
	bootReady     = "READY."
	bootStatus    = "LOADING EMUVR WIKI..."
)

type bootPhase struct {
	start  int
	render func(d *Drawer, frame int)
}

// Ordered phase table; the last entry catches everything from its start on.
var bootPhases = []bootPhase{
	{0, (*Drawer).bootBasicPhase},
	{bootPhase2Start, (*Drawer).bootLoadingPhase},
	{bootPhase3Start, (*Drawer).bootHoldPhase},
}

// Boot renders the boot animation for the given frame counter.
func (d *Drawer) Boot(frame int) {
	d.Clear()
	for i := len(bootPhases) - 1; i >= 0; i-- {
		if frame >= bootPhases[i].start {
			bootPhases[i].render(d, frame)
			return
		}
	}
}

// typedChars returns how many characters of an n-char command are visible
// when typing started at frame start.
func typedChars(frame, start, n int) int {
	if frame < start {
		return 0
	}
	chars := (frame - start) / typeCadence
	if chars > n {
		chars = n
	}
	return chars
}

// caretVisible alternates in 30-frame windows, starting visible.
func caretVisible(frame int) bool {
	return (frame/caretPeriod)%2 == 0
}

// barProgress maps a phase-2 local frame to bar fill in [0, 256].
func barProgress(pf int) int {
	p := (pf - 30) * 256 / 150
	if p < 0 {
		p = 0
	}
	if p > 256 {
		p = 256
	}
	return p
}

// caret draws the block cursor at a text cell when its blink window is on.
func (d *Drawer) caret(col, row, frame int) {
	if !caretVisible(frame) {
		return
	}
	px := (col + BorderCols) * GlyphW
	py := (row + BorderRows) * GlyphH
	d.FillRect(px, py, px+GlyphW, py+GlyphH, ColFG)
}

func centerCol(s string) int { return (TextCols - len(s)) / 2 }

func (d *Drawer) bootBasicPhase(frame int) {
	d.Text(centerCol(bootBanner), 1, bootBanner, ColTitle)
	if frame >= 2 {
		d.Text(centerCol(bootRAMLine), 3, bootRAMLine, ColFG)
	}
	if frame >= 10 {
		d.Text(0, 5, bootReady, ColFG)
	}

	if frame >= 20 {
		chars := typedChars(frame, 20, len(bootLoadCmd))
		d.Text(0, 6, bootLoadCmd[:chars], ColFG)
		if chars < len(bootLoadCmd) {
			d.caret(chars, 6, frame)
		} else if frame < 100 {
			d.caret(len(bootLoadCmd), 6, frame)
		}
	}

	if frame >= 110 {
		d.Text(0, 8, bootSearching, ColFG)
	}
	if frame >= 230 {
		d.Text(0, 9, bootLoading, ColFG)
	}
	if frame >= 340 {
		d.Text(0, 11, bootReady, ColFG)
	}
	if frame >= 345 {
		chars := typedChars(frame, 345, len(bootRunCmd))
		d.Text(0, 12, bootRunCmd[:chars], ColFG)
		d.caret(chars, 12, frame)
	}
}

func (d *Drawer) bootLoadingPhase(frame int) {
	pf := frame - bootPhase2Start

	fade := pf * 255 / 60
	if fade > 255 {
		fade = 255
	}
	d.bootMascotScreen(fade, barProgress(pf), pf > 20)
}

func (d *Drawer) bootHoldPhase(frame int) {
	d.bootMascotScreen(255, 256, true)
}

// bootMascotScreen lays out the shared phase 2/3 screen: mascot in the
// upper half, loading bar below, status line above the bar.
func (d *Drawer) bootMascotScreen(fade, progress int, showStatus bool) {
	mascotCY := ScreenH/2 - 40
	d.Mascot(ScreenW/2, mascotCY, fade)

	barCY := mascotCY + MascotH/2 + 55
	d.loadingBar(barCY, progress)

	if showStatus {
		row := (barCY-20)/GlyphH - BorderRows
		if row >= 0 && row < TextRows {
			d.Text(centerCol(bootStatus), row, bootStatus, ColDim)
		}
	}
}

// loadingBar draws the bordered, 20-segment tape-loading bar centered
// horizontally with its middle at cy. progress is 0..256.
func (d *Drawer) loadingBar(cy, progress int) {
	const (
		barW     = 320
		barH     = 12
		segments = 20
	)
	x0 := (ScreenW - barW) / 2
	y0 := cy - barH/2

	d.FillRect(x0-2, y0-2, x0+barW+2, y0+barH+2, ColDim)
	d.FillRect(x0, y0, x0+barW, y0+barH, ColBG)

	filled := barW * progress / 256
	segW := barW / segments
	for i := 0; i < segments && i*segW < filled; i++ {
		sx := x0 + i*segW
		sw := segW - 1 // 1px gap between segments
		if sx+sw > x0+filled {
			sw = x0 + filled - sx
		}
		if sw > 0 {
			d.FillRect(sx, y0+1, sx+sw, y0+barH-1, ColBar)
		}
	}
}
