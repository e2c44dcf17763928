package render

import (
	"fmt"

	"github.com/retrofab/emupages/internal/content"
)

// Page renders one wiki page at the given scroll offset.
func (d *Drawer) Page(pageIdx, scroll int) {
	d.Clear()

	page := content.At(pageIdx)

	header := fmt.Sprintf("<< %-60s [%d/%d]", page.Title, pageIdx+1, content.Count())
	d.Text(0, HeaderRow, header, ColTitle)
	d.HLine(1, '=', ColDim)

	maxScroll := len(page.Lines) - ContentRows
	if maxScroll < 0 {
		maxScroll = 0
	}

	for i := 0; i < ContentRows; i++ {
		lineIdx := scroll + i
		if lineIdx >= len(page.Lines) {
			break
		}
		line := page.Lines[lineIdx]
		switch line.Style {
		case content.H2:
			d.Text(0, ContentStart+i, fmt.Sprintf("== %s ==", line.Text), ColH2)
		case content.H3:
			d.Text(0, ContentStart+i, fmt.Sprintf("--- %s ---", line.Text), ColH3)
		default:
			d.Text(1, ContentStart+i, line.Text, ColFG)
		}
	}

	d.HLine(FooterRow-1, '-', ColDim)
	if scroll > 0 {
		d.Text(TextCols-3, 1, "[^]", ColDim)
	}
	if scroll < maxScroll {
		d.Text(TextCols-3, FooterRow-1, "[v]", ColDim)
	}
	d.Text(1, FooterRow, "[UP/DN] SCROLL  [B] BACK  [L/R] PG DN/UP  [<//>] PREV/NEXT", ColDim)
}
