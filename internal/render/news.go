package render

import (
	"github.com/stockwellness/stockwellness/internal/models"
)

// NewsPager holds the paging state for the global-news region: a page
// index clamped to the valid range for the item count and page size.
type NewsPager struct {
	items    []models.NewsArticle
	pageSize int
	page     int
}

func NewNewsPager(items []models.NewsArticle, pageSize int) *NewsPager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &NewsPager{items: items, pageSize: pageSize}
}

// PageCount is ceil(items/pageSize); zero when there are no items.
func (p *NewsPager) PageCount() int {
	if len(p.items) == 0 {
		return 0
	}
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// Page is the current zero-based page index.
func (p *NewsPager) Page() int { return p.page }

// SetPage moves to the given page, clamped to [0, PageCount-1].
func (p *NewsPager) SetPage(i int) {
	last := p.PageCount() - 1
	if last < 0 {
		last = 0
	}
	if i < 0 {
		i = 0
	}
	if i > last {
		i = last
	}
	p.page = i
}

func (p *NewsPager) Next() { p.SetPage(p.page + 1) }
func (p *NewsPager) Prev() { p.SetPage(p.page - 1) }

// HasPrev reports whether the previous control is enabled.
func (p *NewsPager) HasPrev() bool { return p.page > 0 }

// HasNext reports whether the next control is enabled.
func (p *NewsPager) HasNext() bool { return p.page < p.PageCount()-1 }

// Items returns the articles on the current page.
func (p *NewsPager) Items() []models.NewsArticle {
	if len(p.items) == 0 {
		return nil
	}
	start := p.page * p.pageSize
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// renderGlobalNews shows the current page of global news with its paging
// controls. Zero items render a single empty-state line and no controls.
func (r *Renderer) renderGlobalNews(res *models.AnalysisResult) error {
	var items []models.NewsArticle
	if res.Analysis != nil && res.Analysis.RAGContext != nil {
		items = res.Analysis.RAGContext.GlobalNews
	}

	r.news = NewNewsPager(items, r.pageSize)
	return r.RenderNewsPage()
}

// RenderNewsPage redraws the global-news region for the pager's current
// page. The interactive session calls it again after next/prev.
func (r *Renderer) RenderNewsPage() error {
	r.sectionTitle("🌍 Global Context")

	if r.news == nil || r.news.PageCount() == 0 {
		r.println(mutedStyle.Render("No recent global news data available."))
		return nil
	}

	for i, article := range r.news.Items() {
		if i > 0 {
			r.stagger()
		}
		r.printf("%s\n", cellValueStyle.Render(article.Title))
		if article.Description != "" {
			r.printf("%s\n", article.Description)
		}
		r.printf("%s\n", mutedStyle.Render(article.Source+" • "+FormatDate(article.PublishedAt)))
		r.printf("%s\n\n", linkStyle.Render(article.URL))
	}

	prev, next := "◀ prev", "next ▶"
	if !r.news.HasPrev() {
		prev = mutedStyle.Render(prev)
	}
	if !r.news.HasNext() {
		next = mutedStyle.Render(next)
	}
	r.printf("%s  page %d/%d  %s\n", prev, r.news.Page()+1, r.news.PageCount(), next)
	return nil
}
