package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/retrofab/emupages/internal/content"
)

// The flattener turns MediaWiki wikitext into the pre-wrapped styled lines
// the content package carries. Wrapping happens here, once, at generation
// time; the renderer only ever truncates.

var (
	reMagicWords   = regexp.MustCompile(`__[A-Z]+__`)
	reHTMLComment  = regexp.MustCompile(`(?s)<!--.*?-->`)
	reFileLink     = regexp.MustCompile(`(?i)\[\[(File|Image):[^\]]*\]\]`)
	reCategoryLink = regexp.MustCompile(`(?i)\[\[Category:[^\]]*\]\]`)
	reCollapsible  = regexp.MustCompile(`(?i)<div[^>]*class="mw-collapsible[^"]*"[^>]*data-expandtext="([^"]*)"[^>]*>`)
	reDivTag       = regexp.MustCompile(`(?i)</?div[^>]*>`)
	reTemplate     = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	reTable        = regexp.MustCompile(`(?s)\{\|.*?\|\}`)
	reTablePlace   = regexp.MustCompile(`^__TABLE_(\d+)__$`)

	reBreakTag    = regexp.MustCompile(`(?i)<br\s*/?>`)
	reHTMLTag     = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	reBoldItalic  = regexp.MustCompile(`'{2,3}`)
	reAnchorLink  = regexp.MustCompile(`\[\[#[^|\]]*\|Link\]\]`)
	reAnchorStar  = regexp.MustCompile(`\[\[#[^|\]]*\|\s*\*\s*\]\]`)
	reAnchorDisp  = regexp.MustCompile(`\[\[#[^|\]]*\|([^\]]+)\]\]`)
	rePipedLink   = regexp.MustCompile(`\[\[[^|\]]*\|([^\]]+)\]\]`)
	rePlainLink   = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	reExtLinkText = regexp.MustCompile(`\[https?://[^\s\]]+ ([^\]]+)\]`)
	reExtLinkBare = regexp.MustCompile(`\[https?://[^\]]+\]`)
	reBareURL     = regexp.MustCompile(`https?://\S+`)
	reNumEntity   = regexp.MustCompile(`&#(x?[0-9a-fA-F]+);`)
	reMultiSpace  = regexp.MustCompile(`  +`)

	reBullet3   = regexp.MustCompile(`^\*\*\*\s*(.*)`)
	reBullet2   = regexp.MustCompile(`^\*\*\s*(.*)`)
	reBullet1   = regexp.MustCompile(`^\*\s*(.*)`)
	reNumbered2 = regexp.MustCompile(`^##\*?\s*(.*)`)
	reNumbered1 = regexp.MustCompile(`^#\s*(.*)`)
	reDefList   = regexp.MustCompile(`^;(.+?):\s*(.*)`)
)

// asciiReplacements maps the Unicode the wiki actually uses onto ASCII the
// glyph set can draw. Anything not listed and not ASCII is dropped.
var asciiReplacements = map[rune]string{
	'‘': "'", '’': "'", '“': `"`, '”': `"`,
	'´': "'", '`': "'",
	'–': "-", '—': "--", '‒': "-",
	' ': " ", ' ': " ", ' ': " ",
	'←': "<-", '→': "->", '↑': "^", '↓': "v", '⇒': "=>",
	'✖': "X", '⬤': "O", '◼': "[]", '▲': `/\`,
	'•': "-", '…': "...", '×': "x",
	'✔': "[x]", '✘': "[ ]",
	'★': "*", '☆': "*",
	'©': "(c)", '®': "(R)", '™': "(TM)",
	'½': "1/2", '¼': "1/4", '¾': "3/4",
	'☰': "#",
}

func normalizeASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			b.WriteRune(r)
			continue
		}
		if rep, ok := asciiReplacements[r]; ok {
			b.WriteString(rep)
		}
	}
	return b.String()
}

func stripInlineMarkup(text string) string {
	// Templates may nest one level inside another, so strip repeatedly.
	for i := 0; i < 3; i++ {
		text = reTemplate.ReplaceAllString(text, "")
	}

	text = reBreakTag.ReplaceAllString(text, " / ")
	text = reHTMLTag.ReplaceAllString(text, "")
	text = reBoldItalic.ReplaceAllString(text, "")

	text = reAnchorLink.ReplaceAllString(text, "")
	text = reAnchorStar.ReplaceAllString(text, "")
	text = reAnchorDisp.ReplaceAllString(text, "$1")
	text = rePipedLink.ReplaceAllString(text, "$1")
	text = rePlainLink.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "]]", "")

	text = reExtLinkText.ReplaceAllString(text, "$1")
	text = reExtLinkBare.ReplaceAllString(text, "")
	text = reBareURL.ReplaceAllString(text, "")

	text = reNumEntity.ReplaceAllStringFunc(text, decodeNumEntity)
	text = strings.NewReplacer(
		"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&nbsp;", " ",
	).Replace(text)

	text = reMultiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func decodeNumEntity(entity string) string {
	m := reNumEntity.FindStringSubmatch(entity)
	if m == nil {
		return "?"
	}
	var code int
	var err error
	if strings.HasPrefix(m[1], "x") {
		_, err = fmt.Sscanf(m[1][1:], "%x", &code)
	} else {
		_, err = fmt.Sscanf(m[1], "%d", &code)
	}
	if err != nil || code <= 0 || code > 0x10FFFF {
		return "?"
	}
	return string(rune(code))
}

// parseHeading recognises a "== Heading ==" line and reports its level.
func parseHeading(line string) (level int, text string, ok bool) {
	trimmed := strings.TrimSpace(line)
	lead := 0
	for lead < len(trimmed) && trimmed[lead] == '=' {
		lead++
	}
	trail := 0
	for trail < len(trimmed)-lead && trimmed[len(trimmed)-1-trail] == '=' {
		trail++
	}
	if lead < 2 || trail < 2 || lead+trail >= len(trimmed) {
		return 0, "", false
	}
	if lead > trail {
		lead = trail
	}
	inner := strings.TrimSpace(trimmed[lead : len(trimmed)-lead])
	if inner == "" {
		return 0, "", false
	}
	return lead, inner, true
}

// headingStyle maps heading levels onto the two heading styles the viewer
// draws. Level 4 and deeper render like level 3.
func headingStyle(level int) content.LineStyle {
	if level == 2 {
		return content.H2
	}
	return content.H3
}

// ToLines converts wikitext into the styled, wrapped line list a Page
// carries.
func ToLines(wikitext string) []content.Line {
	text := normalizeASCII(wikitext)
	text = reMagicWords.ReplaceAllString(text, "")
	text = reHTMLComment.ReplaceAllString(text, "")
	text = reFileLink.ReplaceAllString(text, "")
	text = reCategoryLink.ReplaceAllString(text, "")

	// Collapsible sections become plain level-3 headings.
	text = reCollapsible.ReplaceAllString(text, "\n=== $1 ===\n")
	text = reDivTag.ReplaceAllString(text, "")

	for i := 0; i < 3; i++ {
		text = reTemplate.ReplaceAllString(text, "")
	}

	// Lift tables out before line processing, then splice their flattened
	// form back in at the placeholder.
	var tables []string
	text = reTable.ReplaceAllStringFunc(text, func(tbl string) string {
		tables = append(tables, tbl)
		return fmt.Sprintf("\n__TABLE_%d__\n", len(tables)-1)
	})

	var out []content.Line
	numCounter := 0

	appendWrapped := func(s string, style content.LineStyle) {
		for _, w := range wordWrap(s, content.LineWidth) {
			out = append(out, content.Line{Text: w, Style: style})
		}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, " \t")

		if m := reTablePlace.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			var idx int
			fmt.Sscanf(m[1], "%d", &idx)
			out = append(out, content.Line{})
			for _, tl := range flattenTable(tables[idx]) {
				appendWrapped(tl, content.Body)
			}
			out = append(out, content.Line{})
			continue
		}

		if level, heading, ok := parseHeading(line); ok {
			out = append(out, content.Line{})
			out = append(out, content.Line{Text: stripInlineMarkup(heading), Style: headingStyle(level)})
			out = append(out, content.Line{})
			numCounter = 0
			continue
		}

		line = stripInlineMarkup(line)

		if strings.TrimSpace(line) == "" {
			out = append(out, content.Line{})
			numCounter = 0
			continue
		}

		switch {
		case reBullet3.MatchString(line):
			appendWrapped("      - "+reBullet3.FindStringSubmatch(line)[1], content.Body)
		case reBullet2.MatchString(line):
			appendWrapped("    - "+reBullet2.FindStringSubmatch(line)[1], content.Body)
		case reBullet1.MatchString(line):
			appendWrapped("  - "+reBullet1.FindStringSubmatch(line)[1], content.Body)
		case reNumbered2.MatchString(line):
			appendWrapped("    - "+reNumbered2.FindStringSubmatch(line)[1], content.Body)
		case reNumbered1.MatchString(line):
			numCounter++
			appendWrapped(fmt.Sprintf("  %d. %s", numCounter, reNumbered1.FindStringSubmatch(line)[1]), content.Body)
		case reDefList.MatchString(line):
			m := reDefList.FindStringSubmatch(line)
			appendWrapped(m[1]+": "+m[2], content.Body)
		default:
			appendWrapped(line, content.Body)
		}
	}

	return tidyBlankLines(out)
}

// tidyBlankLines collapses runs of three or more blank lines to two and
// strips blanks from both ends.
func tidyBlankLines(lines []content.Line) []content.Line {
	var cleaned []content.Line
	blanks := 0
	for _, l := range lines {
		if l.Text == "" && l.Style == content.Body {
			blanks++
			if blanks <= 2 {
				cleaned = append(cleaned, l)
			}
			continue
		}
		blanks = 0
		cleaned = append(cleaned, l)
	}
	for len(cleaned) > 0 && cleaned[0].Text == "" {
		cleaned = cleaned[1:]
	}
	for len(cleaned) > 0 && cleaned[len(cleaned)-1].Text == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}
	return cleaned
}

var reCellSplit = regexp.MustCompile(`\|\|`)

// flattenTable renders a wiki table as indented label/value text lines.
func flattenTable(tableText string) []string {
	var headers []string
	type tableRow struct {
		caption string
		cells   []string
	}
	var rows []tableRow
	var currentRow []string
	inHeader := false

	flushRow := func() {
		if len(currentRow) == 0 {
			return
		}
		if inHeader {
			headers = currentRow
		} else {
			rows = append(rows, tableRow{cells: currentRow})
		}
		currentRow = nil
	}

	for _, raw := range strings.Split(strings.TrimSpace(tableText), "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "{|"), strings.HasPrefix(line, "|}"):
			continue
		case strings.HasPrefix(line, "|+"):
			if caption := stripInlineMarkup(line[2:]); caption != "" {
				rows = append(rows, tableRow{caption: caption})
			}
		case strings.HasPrefix(line, "|-"):
			flushRow()
			inHeader = false
		case strings.HasPrefix(line, "!"):
			inHeader = true
			for _, cell := range reCellSplit.Split(strings.TrimLeft(line, "!"), -1) {
				cell = stripInlineMarkup(cell)
				// Remaining pipes separate style attributes from content.
				if i := strings.Index(cell, "|"); i >= 0 {
					cell = cell[i+1:]
				}
				currentRow = append(currentRow, strings.TrimSpace(cell))
			}
		case strings.HasPrefix(line, "|"):
			for _, cell := range reCellSplit.Split(strings.TrimLeft(line, "|"), -1) {
				cleaned := stripInlineMarkup(cell)
				if i := strings.Index(cleaned, "|"); i >= 0 {
					attr := cleaned[:i]
					if strings.Contains(attr, "=") || strings.HasPrefix(strings.TrimSpace(attr), "class") {
						cleaned = cleaned[i+1:]
					}
				}
				currentRow = append(currentRow, strings.TrimSpace(cleaned))
			}
		}
	}
	flushRow()

	var out []string
	for _, row := range rows {
		if row.caption != "" {
			out = append(out, "  ["+row.caption+"]", "")
			continue
		}
		if len(headers) == 0 {
			out = append(out, "  "+strings.Join(row.cells, " | "))
			continue
		}
		label := row.cells[0]
		if label == "" {
			label = "(unnamed)"
		}
		out = append(out, "  "+label+":")
		for i, cell := range row.cells[1:] {
			if cell == "" {
				continue
			}
			if i+1 < len(headers) {
				out = append(out, "    "+headers[i+1]+": "+cell)
			} else {
				out = append(out, "    "+cell)
			}
		}
		out = append(out, "")
	}
	return out
}

// wordWrap breaks a line at word boundaries to the given width, preserving
// the original indentation and indenting continuations two further columns.
func wordWrap(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	stripped := strings.TrimLeft(text, " \t")
	indent := text[:len(text)-len(stripped)]
	contIndent := indent + "  "
	if indent == "" {
		contIndent = "  "
	}

	var lines []string
	remaining := text
	first := true
	for len(remaining) > width {
		breakAt := strings.LastIndex(remaining[:width+1], " ")
		minBreak := len(contIndent)
		if first {
			minBreak = len(indent)
		}
		if breakAt <= minBreak {
			breakAt = width
		}
		lines = append(lines, strings.TrimRight(remaining[:breakAt], " "))
		rest := strings.TrimLeft(remaining[breakAt:], " ")
		if first {
			remaining = indent + rest
		} else {
			remaining = contIndent + rest
		}
		first = false
	}
	if strings.TrimSpace(remaining) != "" {
		lines = append(lines, remaining)
	}
	return lines
}

// ExtractSection pulls one heading's section out of a page, from the
// heading matching fragment down to the next heading of equal or higher
// level. Used for redirect pages that point at a section.
func ExtractSection(wikitext, fragment string) string {
	target := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(fragment, "_", " ")))

	var result []string
	capturing := false
	captureLevel := 0

	for _, line := range strings.Split(wikitext, "\n") {
		level, heading, ok := parseHeading(line)
		if ok {
			clean := strings.ToLower(stripInlineMarkup(heading))
			if capturing {
				if level <= captureLevel {
					break
				}
				result = append(result, line)
			} else if clean == target {
				capturing = true
				captureLevel = level
				result = append(result, line)
			}
			continue
		}
		if capturing {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
