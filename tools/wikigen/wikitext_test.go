package main

import (
	"strings"
	"testing"

	"github.com/retrofab/emupages/internal/content"
)

func TestStripInlineMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"'''bold''' and ''italic''", "bold and italic"},
		{"[[Controls]]", "Controls"},
		{"[[Controls|the controls page]]", "the controls page"},
		{"[[#anchor|Jump here]]", "Jump here"},
		{"[[#anchor|Link]]", ""},
		{"see [https://example.com/x the site] now", "see the site now"},
		{"bare https://example.com/path link", "bare link"},
		{"{{Note|ignore me}}text", "text"},
		{"a<br/>b", "a / b"},
		{"<span class=\"x\">kept</span>", "kept"},
		{"&amp; &lt; &gt; &quot; &#42;", `& < > " *`},
		{"too    many   spaces", "too many spaces"},
	}
	for _, c := range cases {
		if got := stripInlineMarkup(c.in); got != c.want {
			t.Errorf("stripInlineMarkup(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeASCII(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\u201Cquoted\u201D", `"quoted"`},
		{"it\u2019s", "it's"},
		{"a \u2013 b \u2014 c", "a - b -- c"},
		{"go \u2192 there", "go -> there"},
		{"\u2615 coffee", " coffee"},
		{"plain ascii", "plain ascii"},
	}
	for _, c := range cases {
		if got := normalizeASCII(c.in); got != c.want {
			t.Errorf("normalizeASCII(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestParseHeading(t *testing.T) {
	cases := []struct {
		in    string
		level int
		text  string
		ok    bool
	}{
		{"== Setup ==", 2, "Setup", true},
		{"===Advanced===", 3, "Advanced", true},
		{"==== Deep ====", 4, "Deep", true},
		{"= Single =", 0, "", false},
		{"== unbalanced", 0, "", false},
		{"====", 0, "", false},
		{"plain text", 0, "", false},
	}
	for _, c := range cases {
		level, text, ok := parseHeading(c.in)
		if level != c.level || text != c.text || ok != c.ok {
			t.Errorf("parseHeading(%q) = (%d, %q, %v), expected (%d, %q, %v)",
				c.in, level, text, ok, c.level, c.text, c.ok)
		}
	}
}

func TestToLinesHeadingsAndBullets(t *testing.T) {
	wikitext := "== Section ==\nSome text.\n* first\n** nested\n# one\n# two\n=== Sub ===\ndone"
	lines := ToLines(wikitext)

	var h2, h3 int
	texts := make([]string, 0, len(lines))
	for _, l := range lines {
		texts = append(texts, l.Text)
		switch l.Style {
		case content.H2:
			h2++
		case content.H3:
			h3++
		}
	}
	if h2 != 1 || h3 != 1 {
		t.Errorf("heading counts h2=%d h3=%d, expected 1 and 1", h2, h3)
	}

	joined := strings.Join(texts, "\n")
	for _, want := range []string{"  - first", "    - nested", "  1. one", "  2. two"} {
		if !strings.Contains(joined, want) {
			t.Errorf("output missing %q:\n%s", want, joined)
		}
	}
}

func TestToLinesH4RendersAsH3(t *testing.T) {
	lines := ToLines("==== Fine Print ====\nbody")
	found := false
	for _, l := range lines {
		if l.Text == "Fine Print" {
			found = true
			if l.Style != content.H3 {
				t.Errorf("level-4 heading style = %v, expected H3", l.Style)
			}
		}
	}
	if !found {
		t.Fatal("heading line not emitted")
	}
}

func TestToLinesWrapsToWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)
	lines := ToLines(long)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(lines))
	}
	for _, l := range lines {
		if len(l.Text) > content.LineWidth {
			t.Errorf("line exceeds width: %d chars: %q", len(l.Text), l.Text)
		}
	}
}

func TestToLinesNumberingResetsAfterHeading(t *testing.T) {
	lines := ToLines("# one\n# two\n== Next ==\n# one again")
	joined := ""
	for _, l := range lines {
		joined += l.Text + "\n"
	}
	if !strings.Contains(joined, "  1. one again") {
		t.Errorf("numbered list should restart after a heading:\n%s", joined)
	}
}

func TestToLinesCollapsesBlankRuns(t *testing.T) {
	lines := ToLines("a\n\n\n\n\nb")
	blanks := 0
	for _, l := range lines {
		if l.Text == "" {
			blanks++
		}
	}
	if blanks > 2 {
		t.Errorf("%d blank lines survived, expected at most 2", blanks)
	}
	if lines[0].Text == "" || lines[len(lines)-1].Text == "" {
		t.Error("leading/trailing blanks should be stripped")
	}
}

func TestWordWrap(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"alpha beta gamma", 10, []string{"alpha beta", "gamma"}},
		// The continuation after the first break keeps the original
		// indent; later continuations get the extra two columns.
		{"  - bullet text that wraps", 15, []string{"  - bullet text", "  that wraps"}},
		{"  - aaaa bbbb cccc dddd eeee", 12, []string{"  - aaaa", "  bbbb cccc", "    dddd", "    eeee"}},
	}
	for _, c := range cases {
		got := wordWrap(c.in, c.width)
		if len(got) != len(c.want) {
			t.Errorf("wordWrap(%q, %d) = %q, expected %q", c.in, c.width, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("wordWrap(%q, %d)[%d] = %q, expected %q", c.in, c.width, i, got[i], c.want[i])
			}
		}
	}
}

func TestFlattenTable(t *testing.T) {
	table := "{|\n|+ Caption\n! Name || Value\n|-\n| foo || 42\n|}"
	out := flattenTable(table)
	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, "[Caption]") {
		t.Errorf("caption missing:\n%s", joined)
	}
	if !strings.Contains(joined, "foo:") || !strings.Contains(joined, "Value: 42") {
		t.Errorf("labelled row missing:\n%s", joined)
	}
}

func TestExtractSection(t *testing.T) {
	page := "intro\n== First ==\nalpha\n=== Detail ===\nbeta\n== Second ==\ngamma"

	sec := ExtractSection(page, "First")
	if !strings.Contains(sec, "alpha") || !strings.Contains(sec, "beta") {
		t.Errorf("section should span subsections:\n%s", sec)
	}
	if strings.Contains(sec, "gamma") {
		t.Errorf("section leaked past next heading:\n%s", sec)
	}

	if sec := ExtractSection(page, "Detail"); !strings.Contains(sec, "beta") || strings.Contains(sec, "gamma") {
		t.Errorf("subsection extraction wrong:\n%s", sec)
	}

	if sec := ExtractSection(page, "Missing_Section"); sec != "" {
		t.Errorf("missing fragment should return empty, got %q", sec)
	}
}

func TestOrderPages(t *testing.T) {
	titles := []string{"Zeta", "Controls", "FAQ", "Alpha"}
	redirects := map[string]Redirect{
		"Hotkeys": {Target: "Controls", Fragment: "Hotkeys"},
	}
	got := OrderPages(titles, redirects)
	want := []string{"Controls", "Hotkeys", "FAQ", "Alpha", "Zeta"}
	if len(got) != len(want) {
		t.Fatalf("OrderPages = %q, expected %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OrderPages = %q, expected %q", got, want)
		}
	}
}

func TestGenerateSourceCompilesShape(t *testing.T) {
	pages := []content.Page{
		{Title: "The Emu Pages", Lines: LandingPage(1, "2026-01-01")},
		{Title: "Only Page", Lines: []content.Line{{Text: "hello", Style: content.Body}}},
	}
	src, err := GenerateSource(pages, "2026-01-01")
	if err != nil {
		t.Fatalf("GenerateSource: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		"package content",
		`const BuildDate = "2026-01-01"`,
		"// Code generated by tools/wikigen. DO NOT EDIT.",
		`Title: "Only Page"`,
		`{"hello", Body}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}
