package render

import (
	"math"
	"strconv"

	"github.com/stockwellness/stockwellness/internal/books"
	"github.com/stockwellness/stockwellness/internal/models"
)

// PreviewLimit is the maximum length of a literature text preview.
const PreviewLimit = 200

// TruncatePreview cuts a text preview to PreviewLimit characters, marking
// the cut with an ellipsis. Shorter previews pass through untouched.
func TruncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= PreviewLimit {
		return s
	}
	return string(runes[:PreviewLimit]) + "..."
}

// RelevancePercent converts a 0-1 relevance score to a whole percentage.
func RelevancePercent(score float64) int {
	return int(math.Round(score * 100))
}

// renderLiterature shows the investment-literature excerpts backing the
// analysis.
func (r *Renderer) renderLiterature(res *models.AnalysisResult) error {
	r.sectionTitle("📚 Investment Literature")

	var sources []models.LiteratureSource
	if res.Analysis != nil && res.Analysis.RAGContext != nil {
		sources = res.Analysis.RAGContext.Sources
	}
	if len(sources) == 0 {
		r.println(mutedStyle.Render("No investment literature context available."))
		return nil
	}

	for i, src := range sources {
		if i > 0 {
			r.stagger()
		}
		r.printf("%s %s\n", books.Icon(src.Book), cellValueStyle.Render(src.Book))
		if src.Chapter != "" {
			r.printf("  Chapter: %s\n", src.Chapter)
		}
		if src.Page != "" {
			r.printf("  Page: %s\n", src.Page)
		}
		r.printf("  %s\n", TruncatePreview(src.TextPreview))
		r.printf("  %s\n\n", relevanceStyle.Render(strconv.Itoa(RelevancePercent(src.RelevanceScore))+"% relevant"))
	}
	return nil
}
