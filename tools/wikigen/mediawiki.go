package main

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "EmuPages/1.0"

// Redirect describes where a redirect page points. Fragment is set when the
// redirect targets a section heading rather than a whole page.
type Redirect struct {
	Target   string
	Fragment string
}

// Client talks to a MediaWiki instance through its API and Special:Export.
type Client struct {
	APIURL    string
	ExportURL string
	HTTP      *http.Client
}

func NewClient(apiURL, exportURL string) *Client {
	return &Client{
		APIURL:    apiURL,
		ExportURL: exportURL,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) apiQuery(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api query: status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// DiscoverAllPages lists every content page title in the main namespace,
// following API pagination.
func (c *Client) DiscoverAllPages(ctx context.Context) ([]string, error) {
	var titles []string
	cont := ""
	for {
		params := url.Values{}
		params.Set("action", "query")
		params.Set("list", "allpages")
		params.Set("aplimit", "500")
		params.Set("apnamespace", "0")
		if cont != "" {
			params.Set("apcontinue", cont)
		}

		var data struct {
			Continue struct {
				APContinue string `json:"apcontinue"`
			} `json:"continue"`
			Query struct {
				AllPages []struct {
					Title string `json:"title"`
				} `json:"allpages"`
			} `json:"query"`
		}
		if err := c.apiQuery(ctx, params, &data); err != nil {
			return nil, err
		}
		for _, p := range data.Query.AllPages {
			titles = append(titles, p.Title)
		}
		if data.Continue.APContinue == "" {
			break
		}
		cont = data.Continue.APContinue
	}
	return titles, nil
}

// ResolveRedirects asks the API which of the given titles are redirects and
// where they point. The API accepts up to 50 titles per query.
func (c *Client) ResolveRedirects(ctx context.Context, titles []string) (map[string]Redirect, error) {
	redirects := make(map[string]Redirect)
	const batchSize = 50
	for i := 0; i < len(titles); i += batchSize {
		end := i + batchSize
		if end > len(titles) {
			end = len(titles)
		}

		params := url.Values{}
		params.Set("action", "query")
		params.Set("titles", strings.Join(titles[i:end], "|"))
		params.Set("redirects", "1")

		var data struct {
			Query struct {
				Redirects []struct {
					From       string `json:"from"`
					To         string `json:"to"`
					ToFragment string `json:"tofragment"`
				} `json:"redirects"`
			} `json:"query"`
		}
		if err := c.apiQuery(ctx, params, &data); err != nil {
			return nil, err
		}
		for _, r := range data.Query.Redirects {
			redirects[r.From] = Redirect{Target: r.To, Fragment: r.ToFragment}
		}
	}
	return redirects, nil
}

// exportDump mirrors the MediaWiki XML export schema, reduced to the fields
// the pipeline reads.
type exportDump struct {
	Page struct {
		Title    string `xml:"title"`
		Revision struct {
			Text string `xml:"text"`
		} `xml:"revision"`
	} `xml:"page"`
}

// FetchPage downloads one page's wikitext via Special:Export. The returned
// title is the page's display title, which may differ in case from the
// requested one.
func (c *Client) FetchPage(ctx context.Context, title string) (string, string, error) {
	urlTitle := strings.ReplaceAll(title, " ", "_")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ExportURL+"/"+url.PathEscape(urlTitle), nil)
	if err != nil {
		return title, "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return title, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return title, "", fmt.Errorf("export %s: status %s", title, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return title, "", err
	}

	var dump exportDump
	if err := xml.Unmarshal(body, &dump); err != nil {
		return title, "", fmt.Errorf("export %s: %w", title, err)
	}
	if dump.Page.Title == "" {
		return title, "", fmt.Errorf("export %s: no page element", title)
	}
	return dump.Page.Title, dump.Page.Revision.Text, nil
}
