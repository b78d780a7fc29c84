package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Article is the extracted summary of a linked news page, shown when the
// user opens an article from the news list without leaving the terminal.
type Article struct {
	Title       string
	Description string
	SiteName    string
}

// Fetcher retrieves and summarizes article pages.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher with a browser-like user agent. News sites
// routinely reject the default Go client string.
func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; StockWellness/1.0)")
	return &Fetcher{client: client}
}

// Fetch downloads the article page and extracts title, description and
// site name from its metadata, falling back to visible content.
func (f *Fetcher) Fetch(ctx context.Context, articleURL string) (*Article, error) {
	if strings.TrimSpace(articleURL) == "" {
		return nil, fmt.Errorf("article url cannot be empty")
	}

	resp, err := f.client.R().SetContext(ctx).Get(articleURL)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("HTTP error %d when fetching article", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse article html: %w", err)
	}

	art := &Article{
		Title:       firstMeta(doc, "og:title", "twitter:title"),
		Description: firstMeta(doc, "og:description", "twitter:description", "description"),
		SiteName:    firstMeta(doc, "og:site_name"),
	}

	if art.Title == "" {
		art.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if art.Description == "" {
		doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(s.Text())
			if len(text) >= 80 {
				art.Description = text
				return false
			}
			return true
		})
	}

	if art.Title == "" && art.Description == "" {
		return nil, fmt.Errorf("no readable content found")
	}
	return art, nil
}

// firstMeta returns the first non-empty meta tag content among the given
// names, checking both property= and name= attributes.
func firstMeta(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		for _, attr := range []string{"property", "name"} {
			sel := doc.Find(fmt.Sprintf(`meta[%s=%q]`, attr, name))
			if content, ok := sel.First().Attr("content"); ok {
				if trimmed := strings.TrimSpace(content); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}
