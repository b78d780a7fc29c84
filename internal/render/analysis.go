package render

import (
	"github.com/stockwellness/stockwellness/internal/models"
)

// renderDetailedAnalysis shows key factors, risks and the fundamentals
// cells. Lists are staggered item by item; empty lists always render a
// single placeholder item.
func (r *Renderer) renderDetailedAnalysis(res *models.AnalysisResult) error {
	var factors, risks []string
	if res.Analysis != nil {
		factors = res.Analysis.KeyFactors
		risks = res.Analysis.Risks
	}

	r.sectionTitle("🔑 Key Factors")
	r.renderList(factors, "No key factors data available")

	r.sectionTitle("⚠ Risk Factors")
	r.renderList(risks, "No risk factors data available")

	r.sectionTitle("🏛 Fundamentals")
	r.renderFundamentals(res.CompanyData)
	return nil
}

func (r *Renderer) renderList(items []string, placeholder string) {
	if len(items) == 0 {
		r.printf("  • %s\n", mutedStyle.Render(placeholder))
		return
	}
	for i, item := range items {
		if i > 0 {
			r.stagger()
		}
		r.printf("  • %s\n", item)
	}
}

// FundamentalCell is one labeled value in the fundamentals grid.
type FundamentalCell struct {
	Label string
	Value string
}

// FundamentalCells builds the fixed six-cell fundamentals set. Nil company
// data yields a single placeholder cell.
func FundamentalCells(c *models.CompanyData) []FundamentalCell {
	if c == nil {
		return []FundamentalCell{{Label: "", Value: "No company data available"}}
	}

	price := "N/A"
	if c.CurrentPrice.IsSet() {
		price = "$" + c.CurrentPrice.Display()
	}

	return []FundamentalCell{
		{Label: "Market Cap", Value: FormatMarketCap(c.MarketCap)},
		{Label: "P/E Ratio", Value: c.PERatio.Display()},
		{Label: "Forward P/E", Value: c.ForwardPE.Display()},
		{Label: "Price to Book", Value: c.PriceToBook.Display()},
		{Label: "Dividend Yield", Value: c.DividendYield.Display()},
		{Label: "Current Price", Value: price},
	}
}

func (r *Renderer) renderFundamentals(c *models.CompanyData) {
	for i, cell := range FundamentalCells(c) {
		if i > 0 {
			r.stagger()
		}
		if cell.Label == "" {
			r.printf("  %s\n", mutedStyle.Render(cell.Value))
			continue
		}
		r.printf("  %-15s %s\n", cellLabelStyle.Render(cell.Label), cellValueStyle.Render(cell.Value))
	}
}
