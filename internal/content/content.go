// Package content holds the wiki catalog the viewer presents.
//
// The catalog is fixed at build time: wiki_data.go is generated by
// tools/wikigen from the live wiki and committed, so the core never touches
// the network or the filesystem at runtime.
package content

// LineStyle selects the color and decoration a line is drawn with.
type LineStyle int

const (
	Body LineStyle = iota
	H2
	H3
)

// Line is one pre-wrapped row of page text. Text is at most LineWidth
// columns; wrapping happens in wikigen, never at render time.
type Line struct {
	Text  string
	Style LineStyle
}

// Page is one wiki article, flattened to styled lines.
type Page struct {
	Title string
	Lines []Line
}

// LineWidth is the column budget wikigen wraps text to. The renderer
// truncates anything longer rather than wrapping again.
const LineWidth = 74

// Count returns the number of pages in the catalog.
func Count() int { return len(pages) }

// At returns the page at index i, clamped into range. The catalog is never
// empty (wikigen always emits at least the landing page), so At is total.
func At(i int) *Page {
	if i < 0 {
		i = 0
	}
	if i >= len(pages) {
		i = len(pages) - 1
	}
	return &pages[i]
}

// Titles returns the page titles in catalog order.
func Titles() []string {
	out := make([]string, len(pages))
	for i := range pages {
		out[i] = pages[i].Title
	}
	return out
}
