package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/retrofab/emupages/internal/content"
)

// preferredOrder is the wiki sidebar navigation order. Pages not listed
// here are appended alphabetically; section-redirect pages follow their
// parent.
var preferredOrder = []string{
	"Updates",
	"Installation Guide",
	"How To Play",
	"Controls",
	"Customization",
	"Netplay",
	"Light Guns",
	"Room Saving",
	"Playing Videos and Music",
	"DOSBox Games",
	"Adding DOSBox Games",
	"Keyboard and Mouse Input For Games",
	"Settings",
	"FAQ",
	"Troubleshooting",
}

// excludedPages are never included; the generated landing page replaces the
// wiki's front page.
var excludedPages = map[string]bool{"Main Page": true}

// OrderPages arranges content pages in sidebar order, slotting each
// section-redirect page directly after its parent and appending everything
// unlisted alphabetically.
func OrderPages(contentTitles []string, sectionRedirects map[string]Redirect) []string {
	remaining := make(map[string]bool, len(contentTitles))
	for _, t := range contentTitles {
		remaining[t] = true
	}

	children := make(map[string][]string)
	for redir, r := range sectionRedirects {
		children[r.Target] = append(children[r.Target], redir)
	}
	for _, c := range children {
		sort.Strings(c)
	}

	var ordered []string
	add := func(title string) {
		ordered = append(ordered, title)
		delete(remaining, title)
		ordered = append(ordered, children[title]...)
	}

	for _, title := range preferredOrder {
		if remaining[title] {
			add(title)
		}
	}
	rest := make([]string, 0, len(remaining))
	for title := range remaining {
		rest = append(rest, title)
	}
	sort.Strings(rest)
	for _, title := range rest {
		add(title)
	}
	return ordered
}

// LandingPage builds the synthetic first page with the controls summary and
// a build footer. The blank run pushes the footer toward the bottom of a
// screenful.
func LandingPage(pageCount int, buildDate string) []content.Line {
	lines := []content.Line{
		{Text: "Welcome to the EmuVR Wiki", Style: content.H2},
		{},
		{Text: "Webhead wanted the wiki to be more", Style: content.Body},
		{Text: "accessible in-game. So naturally someone", Style: content.Body},
		{Text: "built a Commodore 64 that reads it to you.", Style: content.Body},
		{},
		{Text: "Every page from emuvr.net/wiki is baked", Style: content.Body},
		{Text: "right into this core. No internet needed.", Style: content.Body},
		{Text: "Just load it up and read.", Style: content.Body},
		{},
		{},
		{Text: "Controls", Style: content.H2},
		{},
		{Text: "  D-Pad Up/Down    Move cursor / scroll", Style: content.Body},
		{Text: "  A                Open page", Style: content.Body},
		{Text: "  B / Start        Back to contents", Style: content.Body},
		{Text: "  D-Pad Left/Right Previous / next page", Style: content.Body},
		{Text: "  L / R Shoulder   Page down / page up", Style: content.Body},
	}
	for i := 0; i < 16; i++ {
		lines = append(lines, content.Line{})
	}
	lines = append(lines, content.Line{
		Text: fmt.Sprintf("The Emu Pages  -  %d pages  -  %s", pageCount, buildDate),
	})
	return lines
}

func styleName(s content.LineStyle) string {
	switch s {
	case content.H2:
		return "H2"
	case content.H3:
		return "H3"
	default:
		return "Body"
	}
}

// GenerateSource renders the catalog as the content package's data file and
// gofmt-formats it.
func GenerateSource(pages []content.Page, buildDate string) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by tools/wikigen. DO NOT EDIT.\n")
	b.WriteString("//\n")
	b.WriteString("// Source: https://www.emuvr.net/wiki (flattened to 74-column styled lines).\n\n")
	b.WriteString("package content\n\n")
	b.WriteString("// BuildDate records when the catalog was generated.\n")
	fmt.Fprintf(&b, "const BuildDate = %q\n\n", buildDate)

	b.WriteString("var pages = []Page{\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "\t{\n\t\tTitle: %q,\n\t\tLines: []Line{\n", p.Title)
		for _, l := range p.Lines {
			text := sanitizeLine(l.Text)
			fmt.Fprintf(&b, "\t\t\t{%q, %s},\n", text, styleName(l.Style))
		}
		b.WriteString("\t\t},\n\t},\n")
	}
	b.WriteString("}\n")

	return format.Source(b.Bytes())
}

// sanitizeLine keeps the generated file strictly printable ASCII within the
// column budget whatever the flattener let through.
func sanitizeLine(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > content.LineWidth {
		out = out[:content.LineWidth]
	}
	return out
}
