package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockwellness/stockwellness/internal/models"
)

var (
	trillion = decimal.New(1, 12)
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
)

// FormatMarketCap renders a market capitalization at a fixed magnitude
// scale: $x.xT / $x.xB / $x.xM, or a thousands-grouped dollar figure below
// a million. Non-numeric input renders as "N/A".
func FormatMarketCap(m models.Metric) string {
	d, ok := m.Decimal()
	if !ok {
		return "N/A"
	}

	switch {
	case d.GreaterThanOrEqual(trillion):
		return "$" + d.Div(trillion).StringFixed(1) + "T"
	case d.GreaterThanOrEqual(billion):
		return "$" + d.Div(billion).StringFixed(1) + "B"
	case d.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(1) + "M"
	default:
		return "$" + groupThousands(d)
	}
}

// groupThousands renders the integer part with comma separators.
func groupThousands(d decimal.Decimal) string {
	s := d.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// timeFormats covers the timestamp shapes the backend has been seen to
// emit.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, f := range timeFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %q", s)
}

// FormatTimestamp renders a generation timestamp for the story header.
// An unparseable timestamp is an error so the header region can fault.
func FormatTimestamp(s string) (string, error) {
	t, err := parseTime(s)
	if err != nil {
		return "", err
	}
	return t.Format("Jan 2, 2006, 3:04 PM"), nil
}

// FormatDate renders a publish date for news and citations. Dates that do
// not parse pass through verbatim rather than faulting a whole region.
func FormatDate(s string) string {
	t, err := parseTime(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}
