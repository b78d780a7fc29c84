package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockwellness/stockwellness/internal/models"
)

var recommendationColors = map[string]lipgloss.Color{
	"BUY":  colorBuy,
	"HOLD": colorHold,
	"SELL": colorSell,
}

// AccentFor maps a recommendation value to its accent color. Unrecognized
// values get HOLD's amber.
func AccentFor(recommendation string) lipgloss.Color {
	if c, ok := recommendationColors[recommendation]; ok {
		return c
	}
	return colorHold
}

// ConfidenceAngle maps a 0-100 confidence score linearly onto a 0-360
// degree indicator. Out-of-range scores clamp.
func ConfidenceAngle(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score * 360 / 100
}

// renderRecommendation shows the recommendation badge, rationale, price
// target and the confidence indicator. A string-encoded analysis section
// that failed to decode faults here, not globally.
func (r *Renderer) renderRecommendation(res *models.AnalysisResult) error {
	if res.AnalysisErr != nil {
		return res.AnalysisErr
	}
	a := res.Analysis

	recommendation := a.Recommendation
	if recommendation == "" {
		recommendation = "N/A"
	}
	rationale := a.Rationale
	if rationale == "" {
		rationale = "No rationale available"
	}
	target := a.PriceTarget
	if target == "" {
		target = "N/A"
	}

	badge := badgeStyle.Background(AccentFor(a.Recommendation)).Render(recommendation)

	r.sectionTitle("🎯 Recommendation")
	r.println(badge)
	r.println(rationale)
	r.printf("Price target: %s\n", target)
	r.printf("Confidence: %.0f/100 %s\n", a.ConfidenceScore, confidenceGauge(a.ConfidenceScore))
	return nil
}

// confidenceGauge draws a coarse ring of the confidence angle.
func confidenceGauge(score float64) string {
	const segments = 12
	filled := int(ConfidenceAngle(score) / 360 * segments)
	return mutedStyle.Render("[" + strings.Repeat("●", filled) + strings.Repeat("○", segments-filled) + "]")
}
