package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jarias/webtools/internal/model"
)

// ResultParser turns a search results page into candidate entries. The
// markup of the upstream page changes without notice, so the extraction
// rules live behind this boundary and can be swapped without touching the
// formatting or error handling around them.
type ResultParser interface {
	Parse(page string) ([]model.SearchResult, error)
}

// DuckDuckGoParser extracts results from the HTML-only DuckDuckGo endpoint.
// Each hit is a block whose class contains "results_links"; inside it the
// title, displayed URL and snippet carry dedicated result__* classes. The
// snippet may nest emphasis tags around partial matches.
type DuckDuckGoParser struct{}

func (DuckDuckGoParser) Parse(page string) ([]model.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("could not parse results page: %w", err)
	}

	var results []model.SearchResult
	doc.Find("div[class*='results_links']").Each(func(_ int, frag *goquery.Selection) {
		// Each field is extracted independently; a fragment survives as
		// long as it has a title.
		title := CleanText(frag.Find("a.result__a").First().Text())
		if title == "" {
			return
		}
		results = append(results, model.SearchResult{
			Title:   title,
			URL:     CleanText(frag.Find(".result__url").First().Text()),
			Snippet: CleanText(frag.Find(".result__snippet").First().Text()),
		})
	})
	return results, nil
}

// CleanText collapses whitespace runs to a single space and trims the ends.
// Tag stripping and entity decoding already happened during text extraction.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
