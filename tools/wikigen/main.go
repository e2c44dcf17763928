// Command wikigen regenerates the built-in wiki catalog. It discovers every
// page on the wiki through the MediaWiki API, fetches the wikitext via
// Special:Export, flattens it to styled 74-column lines, and writes the
// content package's data file.
//
// The output is committed, so the viewer itself never needs the network.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/retrofab/emupages/internal/content"
)

func main() {
	var (
		apiURL    string
		exportURL string
		output    string
		delay     time.Duration
	)

	root := &cobra.Command{
		Use:   "wikigen",
		Short: "Regenerate the built-in wiki catalog from the live wiki",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "wikigen"})
			return generate(cmd.Context(), logger, apiURL, exportURL, output, delay)
		},
	}

	root.Flags().StringVar(&apiURL, "api", "https://www.emuvr.net/w/api.php", "MediaWiki API endpoint")
	root.Flags().StringVar(&exportURL, "export", "https://www.emuvr.net/wiki/Special:Export", "Special:Export base URL")
	root.Flags().StringVar(&output, "output", "internal/content/wiki_data.go", "generated file path")
	root.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "pause between page fetches")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func generate(ctx context.Context, logger *log.Logger, apiURL, exportURL, output string, delay time.Duration) error {
	client := NewClient(apiURL, exportURL)
	buildDate := time.Now().UTC().Format("2006-01-02")

	logger.Info("discovering pages")
	allTitles, err := client.DiscoverAllPages(ctx)
	if err != nil {
		return fmt.Errorf("discover pages: %w", err)
	}
	logger.Info("discovered", "pages", len(allTitles))

	redirects, err := client.ResolveRedirects(ctx, allTitles)
	if err != nil {
		return fmt.Errorf("resolve redirects: %w", err)
	}

	// Redirects with a fragment become their own page built from the
	// target's section; plain aliases are dropped since the target is
	// already in the catalog.
	sectionRedirects := make(map[string]Redirect)
	var contentTitles []string
	for _, title := range allTitles {
		if excludedPages[title] {
			continue
		}
		r, isRedirect := redirects[title]
		switch {
		case !isRedirect:
			contentTitles = append(contentTitles, title)
		case r.Fragment != "":
			sectionRedirects[title] = r
			logger.Info("section redirect", "from", title, "to", r.Target+"#"+r.Fragment)
		default:
			logger.Debug("alias skipped", "from", title, "to", r.Target)
		}
	}

	logger.Info("fetching", "content", len(contentTitles), "sections", len(sectionRedirects))

	wikitextByTitle := make(map[string]string)
	pageByTitle := make(map[string]content.Page)
	for _, title := range contentTitles {
		displayTitle, wikitext, err := client.FetchPage(ctx, title)
		if err != nil {
			logger.Error("fetch failed", "title", title, "err", err)
			pageByTitle[title] = content.Page{
				Title: title,
				Lines: []content.Line{{Text: "(Page content unavailable)"}},
			}
			continue
		}
		wikitextByTitle[title] = wikitext
		lines := ToLines(wikitext)
		pageByTitle[title] = content.Page{Title: displayTitle, Lines: lines}
		logger.Info("fetched", "title", displayTitle, "lines", len(lines))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	for _, title := range sortedKeys(sectionRedirects) {
		r := sectionRedirects[title]
		section := ExtractSection(wikitextByTitle[r.Target], r.Fragment)
		if section == "" {
			logger.Error("section not found", "title", title, "target", r.Target, "fragment", r.Fragment)
			pageByTitle[title] = content.Page{
				Title: title,
				Lines: []content.Line{{Text: "(Section content unavailable)"}},
			}
			continue
		}
		pageByTitle[title] = content.Page{Title: title, Lines: ToLines(section)}
	}

	wikiPageCount := len(contentTitles) + len(sectionRedirects)
	pages := []content.Page{{
		Title: "The Emu Pages",
		Lines: LandingPage(wikiPageCount, buildDate),
	}}
	for _, title := range OrderPages(contentTitles, sectionRedirects) {
		if p, ok := pageByTitle[title]; ok {
			pages = append(pages, p)
		}
	}

	src, err := GenerateSource(pages, buildDate)
	if err != nil {
		return fmt.Errorf("generate source: %w", err)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	total := 0
	for _, p := range pages {
		total += len(p.Lines)
	}
	logger.Info("done", "pages", len(pages), "lines", total, "output", output)
	return nil
}

func sortedKeys(m map[string]Redirect) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
