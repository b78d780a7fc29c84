package render

import (
	"fmt"

	"github.com/stockwellness/stockwellness/internal/models"
)

// CitationSources concatenates the global-news items with any
// supplementary article list, in that order.
func CitationSources(res *models.AnalysisResult) []models.NewsArticle {
	var all []models.NewsArticle
	if res.Analysis != nil && res.Analysis.RAGContext != nil {
		all = append(all, res.Analysis.RAGContext.GlobalNews...)
	}
	all = append(all, res.NewsArticles...)
	return all
}

// FormatCitation renders one numbered reference line.
func FormatCitation(n int, a models.NewsArticle) string {
	return fmt.Sprintf("%d. %s. (%s). %s. Retrieved from %s",
		n, a.Source, FormatDate(a.PublishedAt), a.Title, a.URL)
}

// renderReferences shows every cited source as a numbered citation.
func (r *Renderer) renderReferences(res *models.AnalysisResult) error {
	r.sectionTitle("🔖 References")

	sources := CitationSources(res)
	if len(sources) == 0 {
		r.println(mutedStyle.Render("No reference sources available."))
		return nil
	}

	for i, src := range sources {
		if i > 0 {
			r.stagger()
		}
		r.println(FormatCitation(i+1, src))
	}
	return nil
}
