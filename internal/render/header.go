package render

import (
	"errors"
	"fmt"

	"github.com/stockwellness/stockwellness/internal/models"
)

// renderHeader shows the company name and the generation timestamp.
// Either one missing faults the region and leaves it unrendered.
func (r *Renderer) renderHeader(res *models.AnalysisResult) error {
	if res.CompanyData == nil || res.CompanyData.Name == "" {
		return errors.New("company name missing")
	}

	ts, err := FormatTimestamp(res.GeneratedAt)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("📊 %s — Investment Story", res.CompanyData.Name)
	r.println(headerStyle.Render(title))
	r.println(mutedStyle.Render("Generated " + ts))
	return nil
}
