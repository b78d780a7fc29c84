package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stockwellness/stockwellness/internal/models"
)

func mustParse(t *testing.T, body string) *models.AnalysisResult {
	t.Helper()
	res, err := models.ParseResult([]byte(body))
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	return res
}

func faultRegions(faults []RegionError) map[string]bool {
	out := map[string]bool{}
	for _, f := range faults {
		out[f.Region] = true
	}
	return out
}

func TestRenderFullPayload(t *testing.T) {
	res := mustParse(t, `{
		"company_data": {"name": "Apple Inc.", "current_price": 189.5, "market_cap": 2850000000000},
		"analysis": {
			"recommendation": "BUY",
			"confidence_score": 82,
			"rationale": "Strong services growth.",
			"price_target": "$210",
			"key_factors": ["services momentum"],
			"risks": ["china exposure"],
			"rag_context": {
				"global_news": [{"title": "Fed holds rates", "description": "No change.", "source": "Reuters", "url": "https://example.com/fed", "published_at": "2025-06-01T00:00:00Z"}],
				"sources": [{"book": "The Intelligent Investor", "chapter": "8", "page": "204", "text_preview": "Mr. Market...", "relevance_score": 0.87}]
			}
		},
		"generated_at": "2025-06-01T12:34:56Z"
	}`)

	var buf bytes.Buffer
	faults := New(&buf).Render(res)
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}

	out := buf.String()
	for _, want := range []string{
		"Apple Inc.",
		"Jun 1, 2025, 12:34 PM",
		"BUY",
		"Strong services growth.",
		"$210",
		"services momentum",
		"china exposure",
		"$2.9T",
		"Fed holds rates",
		"The Intelligent Investor",
		"87% relevant",
		"1. Reuters. (Jun 1, 2025). Fed holds rates. Retrieved from https://example.com/fed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderEmptyFactorsGetOnePlaceholder(t *testing.T) {
	res := mustParse(t, `{"analysis": {"key_factors": [], "risks": []}}`)

	var buf bytes.Buffer
	New(&buf).Render(res)

	out := buf.String()
	if got := strings.Count(out, "No key factors data available"); got != 1 {
		t.Errorf("key-factors placeholder appears %d times, want exactly 1", got)
	}
	if got := strings.Count(out, "No risk factors data available"); got != 1 {
		t.Errorf("risk-factors placeholder appears %d times, want exactly 1", got)
	}
}

func TestRenderHeaderFaultIsIsolated(t *testing.T) {
	res := mustParse(t, `{"analysis": {"recommendation": "SELL", "rationale": "Overvalued."}}`)

	var buf bytes.Buffer
	faults := New(&buf).Render(res)

	regions := faultRegions(faults)
	if !regions["header"] {
		t.Error("missing company data should fault the header region")
	}
	if regions["recommendation"] || regions["global_news"] || regions["references"] {
		t.Errorf("header fault leaked into siblings: %v", faults)
	}
	if !strings.Contains(buf.String(), "Overvalued.") {
		t.Error("recommendation region should still render after a header fault")
	}
}

func TestRenderMalformedAnalysisFaultsRecommendationOnly(t *testing.T) {
	res := mustParse(t, `{
		"company_data": {"name": "Acme"},
		"analysis": "{broken",
		"generated_at": "2025-06-01T00:00:00Z"
	}`)

	var buf bytes.Buffer
	faults := New(&buf).Render(res)

	regions := faultRegions(faults)
	if !regions["recommendation"] {
		t.Error("undecodable analysis string should fault the recommendation region")
	}
	if regions["detailed_analysis"] || regions["literature"] {
		t.Errorf("decode fault leaked into siblings: %v", faults)
	}
	// Sibling regions degrade to placeholders instead.
	if !strings.Contains(buf.String(), "No key factors data available") {
		t.Error("detailed analysis should render placeholders")
	}
}

func TestRenderMissingCompanyDataPlaceholderCell(t *testing.T) {
	res := mustParse(t, `{"analysis": {}}`)

	var buf bytes.Buffer
	New(&buf).Render(res)

	if !strings.Contains(buf.String(), "No company data available") {
		t.Error("missing company data should render the placeholder cell")
	}
}

func TestRenderChartPlaceholders(t *testing.T) {
	cases := []string{
		`{"analysis": {}}`,
		`{"analysis": {}, "price_chart": "{broken"}`,
		`{"analysis": {}, "price_chart": "{\"data\": []}"}`,
	}
	for _, body := range cases {
		var buf bytes.Buffer
		faults := New(&buf).Render(mustParse(t, body))
		if faultRegions(faults)["price_chart"] {
			t.Errorf("chart region must never fault, body %s", body)
		}
		if !strings.Contains(buf.String(), chartPlaceholder) {
			t.Errorf("expected chart placeholder for body %s", body)
		}
	}
}

func TestRenderChartPlotsSeries(t *testing.T) {
	res := mustParse(t, `{
		"analysis": {},
		"price_chart": "{\"data\": [{\"name\": \"AAPL\", \"x\": [\"2025-01-01\", \"2025-01-02\", \"2025-01-03\"], \"y\": [180.1, 182.4, 181.9]}], \"layout\": {\"title\": \"AAPL 6-Month Price History\"}}"
	}`)

	var buf bytes.Buffer
	faults := New(&buf).Render(res)
	if faultRegions(faults)["price_chart"] {
		t.Fatalf("chart render faulted: %v", faults)
	}
	if strings.Contains(buf.String(), chartPlaceholder) {
		t.Error("a decodable chart payload should plot, not placeholder")
	}
	if !strings.Contains(buf.String(), "AAPL") {
		t.Error("plot caption missing")
	}
}

func TestRenderNewsEmptyState(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Render(mustParse(t, `{"analysis": {}}`))

	out := buf.String()
	if !strings.Contains(out, "No recent global news data available.") {
		t.Error("missing news empty state")
	}
	if strings.Contains(out, "page 1/") {
		t.Error("paging controls must not render with zero items")
	}
}

func TestRenderReferencesCombineSupplementaryArticles(t *testing.T) {
	res := mustParse(t, `{
		"analysis": {"rag_context": {"global_news": [{"title": "A", "source": "Reuters", "url": "u1", "published_at": "2025-06-01T00:00:00Z"}]}},
		"news_articles": [{"title": "B", "source": "Bloomberg", "url": "u2", "published_at": "2025-06-02T00:00:00Z"}]
	}`)

	var buf bytes.Buffer
	New(&buf).Render(res)

	out := buf.String()
	if !strings.Contains(out, "1. Reuters. (Jun 1, 2025). A. Retrieved from u1") {
		t.Error("first citation missing or out of order")
	}
	if !strings.Contains(out, "2. Bloomberg. (Jun 2, 2025). B. Retrieved from u2") {
		t.Error("supplementary article citation missing")
	}
}

func TestRenderNewsPagerStateExposed(t *testing.T) {
	res := mustParse(t, `{"analysis": {"rag_context": {"global_news": [
		{"title": "1"}, {"title": "2"}, {"title": "3"}, {"title": "4"}, {"title": "5"}
	]}}}`)

	var buf bytes.Buffer
	r := New(&buf)
	r.Render(res)

	p := r.NewsPager()
	if p == nil {
		t.Fatal("pager should exist after rendering news")
	}
	if p.PageCount() != 3 {
		t.Errorf("page count = %d, want 3", p.PageCount())
	}

	buf.Reset()
	p.Next()
	if err := r.RenderNewsPage(); err != nil {
		t.Fatalf("RenderNewsPage: %v", err)
	}
	if !strings.Contains(buf.String(), "page 2/3") {
		t.Errorf("expected page 2/3 after Next, got: %s", buf.String())
	}
}
