package nav

import (
	"testing"

	"github.com/retrofab/emupages/internal/input"
)

// fakeCatalog implements Catalog with uniform page lengths.
type fakeCatalog struct {
	pages int
	lines []int
}

func (c fakeCatalog) PageCount() int { return c.pages }
func (c fakeCatalog) LineCount(page int) int {
	if page < 0 || page >= len(c.lines) {
		return 0
	}
	return c.lines[page]
}

func stateFor(buttons ...input.Button) input.StateFunc {
	return func(port int, btn input.Button) bool {
		if port != 0 {
			return false
		}
		for _, b := range buttons {
			if b == btn {
				return true
			}
		}
		return false
	}
}

// press delivers a single press-and-release of the given buttons.
func press(m *Machine, buttons ...input.Button) {
	m.Tick(stateFor(buttons...))
	m.Tick(stateFor())
}

const testContentRows = 25

func newTestMachine(pages int, lines ...int) *Machine {
	if len(lines) == 0 {
		lines = make([]int, pages)
		for i := range lines {
			lines[i] = 10
		}
	}
	m := New(fakeCatalog{pages: pages, lines: lines}, testContentRows)
	m.State.Mode = ModeTOC
	return m
}

func TestBootTimesOut(t *testing.T) {
	m := New(fakeCatalog{pages: 3, lines: []int{10, 10, 10}}, testContentRows)

	for i := 0; i < BootFrames-1; i++ {
		m.Tick(nil)
		if m.State.Mode != ModeBoot {
			t.Fatalf("left boot mode early at frame %d", i+1)
		}
	}
	m.Tick(nil)
	if m.State.Mode != ModeTOC {
		t.Fatalf("mode = %v after %d frames, expected toc", m.State.Mode, BootFrames)
	}
}

func TestBootSkipClearsRepeat(t *testing.T) {
	m := New(fakeCatalog{pages: 3, lines: []int{10, 10, 10}}, testContentRows)

	m.Tick(nil)
	m.Tick(stateFor(input.Down))
	if m.State.Mode != ModeTOC {
		t.Fatalf("button press should skip boot, mode = %v", m.State.Mode)
	}

	// The skip press was cleared: keeping Down held must register as a
	// fresh press in the TOC and move the cursor exactly once.
	m.Tick(stateFor(input.Down))
	if m.State.TOCCursor != 1 {
		t.Errorf("cursor = %d after held-over Down, expected 1", m.State.TOCCursor)
	}
	m.Tick(stateFor(input.Down))
	if m.State.TOCCursor != 1 {
		t.Errorf("cursor = %d on second held frame, expected still 1 (no repeat yet)", m.State.TOCCursor)
	}
}

func TestTOCCursorClamped(t *testing.T) {
	m := newTestMachine(3)

	press(m, input.Up)
	if m.State.TOCCursor != 0 {
		t.Errorf("Up at top: cursor = %d, expected 0", m.State.TOCCursor)
	}
	for i := 0; i < 10; i++ {
		press(m, input.Down)
	}
	if m.State.TOCCursor != 2 {
		t.Errorf("Down past end: cursor = %d, expected 2", m.State.TOCCursor)
	}
}

func TestTOCWindowInvariant(t *testing.T) {
	const pages = 100
	m := newTestMachine(pages)
	listRows := testContentRows - 3

	seq := []input.Button{
		input.Down, input.Down, input.R, input.R, input.R,
		input.Up, input.L, input.Down, input.R, input.R,
		input.R, input.R, input.R, input.Up, input.Up, input.L,
	}
	for _, b := range seq {
		press(m, b)
		s := m.State
		if s.TOCCursor < 0 || s.TOCCursor >= pages {
			t.Fatalf("cursor %d out of range after %v", s.TOCCursor, b)
		}
		if s.TOCScroll > s.TOCCursor || s.TOCCursor >= s.TOCScroll+listRows {
			t.Fatalf("window invariant broken after %v: scroll=%d cursor=%d rows=%d",
				b, s.TOCScroll, s.TOCCursor, listRows)
		}
	}
}

func TestTOCPageStepSnapsScroll(t *testing.T) {
	m := newTestMachine(100)
	listRows := testContentRows - 3

	press(m, input.R)
	if m.State.TOCCursor != listRows {
		t.Errorf("R step: cursor = %d, expected %d", m.State.TOCCursor, listRows)
	}
	press(m, input.L)
	if m.State.TOCCursor != 0 || m.State.TOCScroll != 0 {
		t.Errorf("L step back: cursor=%d scroll=%d, expected 0/0", m.State.TOCCursor, m.State.TOCScroll)
	}
}

func TestOpenAndBackScenario(t *testing.T) {
	// PageCount 3, titles A B C: Down twice, Confirm, then Back.
	m := newTestMachine(3)

	press(m, input.Down)
	press(m, input.Down)
	if m.State.TOCCursor != 2 {
		t.Fatalf("cursor = %d after two Downs, expected 2", m.State.TOCCursor)
	}

	press(m, input.A)
	if m.State.Mode != ModePage || m.State.CurrentPage != 2 || m.State.PageScroll != 0 {
		t.Fatalf("after confirm: mode=%v page=%d scroll=%d, expected page view of page 2",
			m.State.Mode, m.State.CurrentPage, m.State.PageScroll)
	}

	press(m, input.B)
	if m.State.Mode != ModeTOC || m.State.TOCCursor != 2 {
		t.Fatalf("after back: mode=%v cursor=%d, expected toc with cursor 2", m.State.Mode, m.State.TOCCursor)
	}
	listRows := testContentRows - 3
	s := m.State
	if s.TOCScroll > s.TOCCursor || s.TOCCursor >= s.TOCScroll+listRows {
		t.Errorf("back did not restore the scroll window: scroll=%d cursor=%d", s.TOCScroll, s.TOCCursor)
	}
}

func TestTOCLeftShortcutOpensPreviousPage(t *testing.T) {
	m := newTestMachine(3)

	press(m, input.Down)
	press(m, input.Down)
	press(m, input.Left)
	if m.State.Mode != ModePage {
		t.Fatalf("Left shortcut should open a page, mode = %v", m.State.Mode)
	}
	if m.State.CurrentPage != 1 {
		t.Errorf("Left shortcut opened page %d, expected 1 (cursor moved up then opened)", m.State.CurrentPage)
	}
	if m.State.PageScroll != 0 {
		t.Errorf("page scroll = %d, expected 0", m.State.PageScroll)
	}
}

func TestTOCRightConfirmEquivalence(t *testing.T) {
	a := newTestMachine(5)
	b := newTestMachine(5)
	press(a, input.Down)
	press(b, input.Down)

	press(a, input.A)
	press(b, input.Right)
	if a.State != b.State {
		t.Errorf("A and Right should open identically: %+v vs %+v", a.State, b.State)
	}
}

func TestPageScrollClamped(t *testing.T) {
	// 40 lines, 25 content rows: max_scroll = 15. A page step clamps
	// immediately, so the scroll offset never leaves [0, max_scroll].
	m := newTestMachine(1, 40)
	m.State = State{Mode: ModePage, CurrentPage: 0}

	press(m, input.L)
	if m.State.PageScroll != 15 {
		t.Errorf("first page step: scroll = %d, expected clamp to 15", m.State.PageScroll)
	}
	press(m, input.L)
	if m.State.PageScroll != 15 {
		t.Errorf("page step at bottom: scroll = %d, expected to stay 15", m.State.PageScroll)
	}
	press(m, input.R)
	if m.State.PageScroll != 0 {
		t.Errorf("page step back: scroll = %d, expected 0", m.State.PageScroll)
	}
	press(m, input.R)
	if m.State.PageScroll != 0 {
		t.Errorf("page step at top: scroll = %d, expected to stay 0", m.State.PageScroll)
	}
}

func TestPageLineScrollBounds(t *testing.T) {
	m := newTestMachine(1, 30)
	m.State = State{Mode: ModePage, CurrentPage: 0}

	press(m, input.Up)
	if m.State.PageScroll != 0 {
		t.Errorf("Up at top: scroll = %d, expected 0", m.State.PageScroll)
	}
	for i := 0; i < 20; i++ {
		press(m, input.Down)
	}
	if m.State.PageScroll != 5 {
		t.Errorf("Down past end: scroll = %d, expected max 5", m.State.PageScroll)
	}
}

func TestShortPageNeverScrolls(t *testing.T) {
	m := newTestMachine(1, 10)
	m.State = State{Mode: ModePage, CurrentPage: 0}

	press(m, input.Down)
	press(m, input.L)
	if m.State.PageScroll != 0 {
		t.Errorf("short page scrolled to %d, expected 0", m.State.PageScroll)
	}
}

func TestCyclicPageNavigation(t *testing.T) {
	m := newTestMachine(4)
	m.State = State{Mode: ModePage, CurrentPage: 0}

	press(m, input.Left)
	if m.State.CurrentPage != 3 {
		t.Errorf("Left from page 0: page = %d, expected 3", m.State.CurrentPage)
	}
	press(m, input.Right)
	if m.State.CurrentPage != 0 {
		t.Errorf("Right from last page: page = %d, expected wrap to 0", m.State.CurrentPage)
	}
}

func TestCyclingResetsScroll(t *testing.T) {
	m := newTestMachine(2, 40, 40)
	m.State = State{Mode: ModePage, CurrentPage: 0, PageScroll: 12}

	press(m, input.Right)
	if m.State.PageScroll != 0 {
		t.Errorf("page change kept scroll %d, expected 0", m.State.PageScroll)
	}
}

func TestReset(t *testing.T) {
	m := newTestMachine(3)
	press(m, input.Down)
	press(m, input.A)

	m.Reset()
	if m.State != (State{}) {
		t.Errorf("Reset left state %+v, expected zero value", m.State)
	}
	if m.State.Mode != ModeBoot {
		t.Errorf("Reset mode = %v, expected boot", m.State.Mode)
	}
}

func TestUnmappedButtonsIgnored(t *testing.T) {
	m := newTestMachine(3)
	before := m.State
	press(m, input.X, input.Y, input.Select, input.L2, input.R2, input.L3, input.R3)
	if m.State != before {
		t.Errorf("unmapped buttons changed state: %+v -> %+v", before, m.State)
	}
}
