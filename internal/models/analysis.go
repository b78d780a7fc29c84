package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoAnalysis is the global decode fault: the payload arrived without its
// analysis section, so there is nothing worth rendering.
var ErrNoAnalysis = errors.New("invalid data structure received: analysis section missing")

// AnalysisResult is one decoded /analyze response. Every field is optional;
// the renderer degrades per region rather than rejecting the whole payload.
type AnalysisResult struct {
	CompanyData  *CompanyData
	Analysis     *Analysis
	NewsArticles []NewsArticle
	GeneratedAt  string

	// AnalysisErr records a failed decode of a string-encoded analysis
	// section. It is a regional fault for the recommendation region, not
	// a global one: the section was present, just malformed.
	AnalysisErr error

	priceChart json.RawMessage
	chartData  json.RawMessage
}

type wireResult struct {
	CompanyData  *CompanyData    `json:"company_data"`
	Analysis     json.RawMessage `json:"analysis"`
	PriceChart   json.RawMessage `json:"price_chart"`
	ChartData    json.RawMessage `json:"chart_data"`
	NewsArticles []NewsArticle   `json:"news_articles"`
	GeneratedAt  string          `json:"generated_at"`
}

// Analysis is the recommendation block of a result. The backend sometimes
// returns it as a JSON-serialized string instead of an object; ParseResult
// accepts both forms.
type Analysis struct {
	Recommendation  string      `json:"recommendation"`
	ConfidenceScore float64     `json:"confidence_score"`
	Rationale       string      `json:"rationale"`
	PriceTarget     string      `json:"price_target"`
	KeyFactors      []string    `json:"key_factors"`
	Risks           []string    `json:"risks"`
	RAGContext      *RAGContext `json:"rag_context"`
}

// RAGContext bundles the retrieval-augmented supporting material.
type RAGContext struct {
	GlobalNews []NewsArticle      `json:"global_news"`
	Sources    []LiteratureSource `json:"sources"`
}

type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

type LiteratureSource struct {
	Book           string     `json:"book"`
	Chapter        FlexString `json:"chapter"`
	Page           FlexString `json:"page"`
	TextPreview    string     `json:"text_preview"`
	RelevanceScore float64    `json:"relevance_score"`
}

type CompanyData struct {
	Name          string `json:"name"`
	CurrentPrice  Metric `json:"current_price"`
	MarketCap     Metric `json:"market_cap"`
	PERatio       Metric `json:"pe_ratio"`
	ForwardPE     Metric `json:"forward_pe"`
	PriceToBook   Metric `json:"price_to_book"`
	DividendYield Metric `json:"dividend_yield"`
}

// ParseResult decodes one /analyze response body into a validated
// AnalysisResult. A body without an analysis section is rejected with
// ErrNoAnalysis; a present-but-undecodable analysis section is kept as a
// regional fault on the result instead.
func ParseResult(data []byte) (*AnalysisResult, error) {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}

	if isAbsent(w.Analysis) {
		return nil, ErrNoAnalysis
	}

	r := &AnalysisResult{
		CompanyData:  w.CompanyData,
		NewsArticles: w.NewsArticles,
		GeneratedAt:  w.GeneratedAt,
		priceChart:   w.PriceChart,
		chartData:    w.ChartData,
	}

	analysis, err := decodeAnalysis(w.Analysis)
	if err != nil {
		r.AnalysisErr = err
	} else {
		r.Analysis = analysis
	}
	return r, nil
}

// ChartPayload returns the serialized chart spec, preferring the legacy
// price_chart key over chart_data. Nil when neither is present.
func (r *AnalysisResult) ChartPayload() json.RawMessage {
	if !isAbsent(r.priceChart) {
		return r.priceChart
	}
	if !isAbsent(r.chartData) {
		return r.chartData
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || string(raw) == "null"
}

// decodeAnalysis unwraps the string-encoded form of the analysis section
// before decoding the object itself.
func decodeAnalysis(raw json.RawMessage) (*Analysis, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("unquote analysis string: %w", err)
		}
		raw = []byte(inner)
	}

	var a Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode analysis object: %w", err)
	}
	return &a, nil
}

// FlexString accepts either a JSON string or a JSON number and keeps the
// textual form. Chapter and page references arrive in both shapes.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string { return string(f) }

// Metric is one fundamentals value off the wire. The backend emits numbers,
// numeric strings, free text like "N/A", or null for the same field
// depending on data availability, so a Metric keeps whatever arrived and
// exposes the decimal view only when the value is actually numeric.
type Metric struct {
	set  bool
	num  bool
	dec  decimal.Decimal
	text string
}

// NewMetric builds a numeric metric. Mostly for tests and the quote
// preview, which produce values locally instead of off the wire.
func NewMetric(d decimal.Decimal) Metric {
	return Metric{set: true, num: true, dec: d}
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*m = Metric{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "n/a") {
			*m = Metric{}
			return nil
		}
		if d, err := decimal.NewFromString(s); err == nil {
			*m = Metric{set: true, num: true, dec: d, text: s}
			return nil
		}
		*m = Metric{set: true, text: s}
		return nil
	}

	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*m = Metric{set: true, num: true, dec: d}
	return nil
}

func (m Metric) MarshalJSON() ([]byte, error) {
	switch {
	case !m.set:
		return []byte("null"), nil
	case m.num:
		return []byte(m.dec.String()), nil
	default:
		return json.Marshal(m.text)
	}
}

// IsSet reports whether any value arrived for the metric.
func (m Metric) IsSet() bool { return m.set }

// Decimal returns the numeric view of the metric.
func (m Metric) Decimal() (decimal.Decimal, bool) {
	return m.dec, m.set && m.num
}

// Display renders the metric for a fundamentals cell, falling back to
// "N/A" when nothing usable arrived.
func (m Metric) Display() string {
	switch {
	case !m.set:
		return "N/A"
	case m.num:
		return m.dec.String()
	default:
		return m.text
	}
}
