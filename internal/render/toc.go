package render

import (
	"fmt"

	"github.com/retrofab/emupages/internal/content"
)

const tocTitle = "**** THE EMU PAGES ****"

// TOC renders the table of contents with the cursor row highlighted.
// cursor and scroll are assumed in range; drawing clamps anyway.
func (d *Drawer) TOC(cursor, scroll int) {
	d.Clear()

	d.Text(centerCol(tocTitle), 0, tocTitle, ColTitle)
	d.Text(1, 2, fmt.Sprintf("%d WIKI PAGES LOADED. READY.", content.Count()), ColFG)
	d.HLine(3, '-', ColDim)

	listRows := ContentRows - 3 // rows 4 .. FooterRow-2
	for i := 0; i < listRows && scroll+i < content.Count(); i++ {
		pageIdx := scroll + i
		row := 4 + i
		title := content.At(pageIdx).Title
		if pageIdx == cursor {
			d.TextInv(0, row, fmt.Sprintf(" > %-73s", title), ColCursorFG, ColHighlight)
		} else {
			d.Text(0, row, "   "+title, ColFG)
		}
	}

	d.HLine(FooterRow-1, '-', ColDim)
	if scroll > 0 {
		d.Text(TextCols-3, 3, "[^]", ColDim)
	}
	if scroll+listRows < content.Count() {
		d.Text(TextCols-3, FooterRow-1, "[v]", ColDim)
	}
	d.Text(1, FooterRow, "[UP/DN] SELECT  [A] OPEN  [LEFT/RIGHT] PREV/NEXT", ColDim)
}
