package render

import (
	"bytes"
	"encoding/json"

	"github.com/guptarohit/asciigraph"

	"github.com/stockwellness/stockwellness/internal/models"
)

const chartPlaceholder = "Price chart unavailable"

type chartSpec struct {
	Data   []chartTrace   `json:"data"`
	Layout map[string]any `json:"layout"`
}

type chartTrace struct {
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
}

// renderPriceChart plots the first trace of the chart payload. A missing
// payload, decode failure or empty series renders the fixed placeholder
// instead; this region never faults.
func (r *Renderer) renderPriceChart(res *models.AnalysisResult) error {
	r.sectionTitle("📈 Price History")

	raw := res.ChartPayload()
	if raw == nil {
		r.println(mutedStyle.Render(chartPlaceholder))
		return nil
	}

	spec, err := decodeChartSpec(raw)
	if err != nil || len(spec.Data) == 0 || len(spec.Data[0].Y) < 2 {
		r.println(mutedStyle.Render(chartPlaceholder))
		return nil
	}

	trace := spec.Data[0]
	opts := []asciigraph.Option{
		asciigraph.Height(10),
		asciigraph.Width(64),
		asciigraph.Precision(2),
	}
	if caption := chartCaption(spec, trace); caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}

	r.println(asciigraph.Plot(trace.Y, opts...))
	return nil
}

// decodeChartSpec accepts both the serialized-string and embedded-object
// forms of the plotting payload.
func decodeChartSpec(raw json.RawMessage) (*chartSpec, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		raw = []byte(inner)
	}

	var spec chartSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func chartCaption(spec *chartSpec, trace chartTrace) string {
	if trace.Name != "" {
		return trace.Name
	}
	switch title := spec.Layout["title"].(type) {
	case string:
		return title
	case map[string]any:
		if text, ok := title["text"].(string); ok {
			return text
		}
	}
	return ""
}
