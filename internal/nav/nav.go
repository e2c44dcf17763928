// Package nav owns the viewer's navigation state: boot countdown, table of
// contents cursor and page scrolling. One Machine instance is driven once
// per host tick; it never touches the renderer.
package nav

import "github.com/retrofab/emupages/internal/input"

// Mode is the current top-level view.
type Mode int

const (
	ModeBoot Mode = iota
	ModeTOC
	ModePage
)

func (m Mode) String() string {
	switch m {
	case ModeBoot:
		return "boot"
	case ModeTOC:
		return "toc"
	case ModePage:
		return "page"
	default:
		return "unknown"
	}
}

// BootFrames is how long the boot sequence runs before the table of
// contents appears on its own (10 seconds at 60 fps; any button skips).
const BootFrames = 600

// State is the complete navigation state. All index fields are kept in
// range by the transition functions; out-of-range values never escape.
type State struct {
	Mode        Mode
	BootTimer   int
	TOCCursor   int
	TOCScroll   int
	CurrentPage int
	PageScroll  int
}

// Catalog supplies the bounds the machine clamps against.
type Catalog interface {
	PageCount() int
	LineCount(page int) int
}

// Machine turns per-tick button state into navigation transitions.
type Machine struct {
	State   State
	Tracker RepeatTracker

	catalog     Catalog
	contentRows int
	listRows    int
}

// New returns a machine in boot mode. contentRows is the number of
// scrollable text rows the page view shows; the TOC list gets three fewer
// (title, summary and separator take the difference).
func New(catalog Catalog, contentRows int) *Machine {
	return &Machine{
		catalog:     catalog,
		contentRows: contentRows,
		listRows:    contentRows - 3,
	}
}

// Reset returns all navigation state to initial values, as on game load.
func (m *Machine) Reset() {
	m.State = State{}
	m.Tracker.Clear()
}

// Tick performs the single per-frame update: it samples the held buttons,
// advances auto-repeat, and applies the handler for the current mode.
func (m *Machine) Tick(state input.StateFunc) {
	var held [input.ButtonCount]bool
	if state != nil {
		for b := input.Button(0); b < input.ButtonCount; b++ {
			held[b] = state(0, b)
		}
	}

	switch m.State.Mode {
	case ModeBoot:
		m.State = m.tickBoot(held)
	case ModeTOC:
		m.State = m.tickTOC(m.Tracker.Advance(held))
	case ModePage:
		m.State = m.tickPage(m.Tracker.Advance(held))
	}
}

func (m *Machine) tickBoot(held [input.ButtonCount]bool) State {
	s := m.State
	s.BootTimer++

	any := false
	for _, h := range held {
		if h {
			any = true
			break
		}
	}
	if s.BootTimer >= BootFrames || any {
		s.Mode = ModeTOC
		// A skip press must not carry over as a held repeat in the TOC.
		m.Tracker.Clear()
	}
	return s
}

func (m *Machine) tickTOC(act [input.ButtonCount]bool) State {
	s := m.State
	count := m.catalog.PageCount()
	if count <= 0 {
		return s
	}

	if act[input.Up] {
		if s.TOCCursor > 0 {
			s.TOCCursor--
		}
		s = m.clampTOCWindow(s)
	}
	if act[input.Down] {
		if s.TOCCursor < count-1 {
			s.TOCCursor++
		}
		s = m.clampTOCWindow(s)
	}
	if act[input.L] {
		s.TOCCursor -= m.listRows
		if s.TOCCursor < 0 {
			s.TOCCursor = 0
		}
		s.TOCScroll = s.TOCCursor
	}
	if act[input.R] {
		s.TOCCursor += m.listRows
		if s.TOCCursor > count-1 {
			s.TOCCursor = count - 1
		}
		s = m.clampTOCWindow(s)
	}
	if act[input.A] || act[input.Right] {
		return m.openPage(s, s.TOCCursor)
	}
	if act[input.Left] {
		// Quick-prev shortcut: step the cursor up one and open that page
		// in a single action. Deliberately asymmetric with Right.
		if s.TOCCursor > 0 {
			s.TOCCursor--
		}
		s = m.clampTOCWindow(s)
		return m.openPage(s, s.TOCCursor)
	}
	return s
}

func (m *Machine) tickPage(act [input.ButtonCount]bool) State {
	s := m.State
	count := m.catalog.PageCount()
	if count <= 0 {
		return s
	}

	maxScroll := m.catalog.LineCount(s.CurrentPage) - m.contentRows
	if maxScroll < 0 {
		maxScroll = 0
	}

	if act[input.Up] && s.PageScroll > 0 {
		s.PageScroll--
	}
	if act[input.Down] && s.PageScroll < maxScroll {
		s.PageScroll++
	}
	if act[input.L] {
		s.PageScroll += m.contentRows
		if s.PageScroll > maxScroll {
			s.PageScroll = maxScroll
		}
	}
	if act[input.R] {
		s.PageScroll -= m.contentRows
		if s.PageScroll < 0 {
			s.PageScroll = 0
		}
	}
	if act[input.Left] {
		s.CurrentPage = (s.CurrentPage - 1 + count) % count
		s.PageScroll = 0
	}
	if act[input.Right] {
		s.CurrentPage = (s.CurrentPage + 1) % count
		s.PageScroll = 0
	}
	if act[input.B] || act[input.Start] {
		s.Mode = ModeTOC
		s.TOCCursor = s.CurrentPage
		s = m.clampTOCWindow(s)
	}
	return s
}

// openPage transitions to the page view at the given index.
func (m *Machine) openPage(s State, page int) State {
	s.Mode = ModePage
	s.CurrentPage = page
	s.PageScroll = 0
	return s
}

// clampTOCWindow restores the invariant scroll <= cursor < scroll+listRows.
func (m *Machine) clampTOCWindow(s State) State {
	if s.TOCCursor < s.TOCScroll {
		s.TOCScroll = s.TOCCursor
	}
	if s.TOCCursor >= s.TOCScroll+m.listRows {
		s.TOCScroll = s.TOCCursor - m.listRows + 1
	}
	return s
}
