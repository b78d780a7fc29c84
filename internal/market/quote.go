package market

import (
	"fmt"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/stockwellness/stockwellness/internal/ticker"
)

// Quote is a point-in-time market snapshot used for the quick preview
// before a full analysis run.
type Quote struct {
	Symbol        string
	Name          string
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
}

// fetchQuote is stubbed in tests.
var fetchQuote = quote.Get

// Lookup resolves a symbol to a local market quote. It doubles as the
// existence pre-check: an unknown symbol returns an error without ever
// involving the analysis backend.
func Lookup(symbol string) (*Quote, error) {
	symbol = ticker.Normalize(symbol)
	if err := ticker.Validate(symbol); err != nil {
		return nil, err
	}

	q, err := fetchQuote(symbol)
	if err != nil {
		return nil, fmt.Errorf("quote lookup for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}

	return fromFinanceQuote(symbol, q), nil
}

func fromFinanceQuote(symbol string, q *finance.Quote) *Quote {
	return &Quote{
		Symbol:        symbol,
		Name:          q.ShortName,
		Price:         decimal.NewFromFloat(q.RegularMarketPrice),
		Change:        decimal.NewFromFloat(q.RegularMarketChange),
		ChangePercent: decimal.NewFromFloat(q.RegularMarketChangePercent),
	}
}

// Arrow returns the direction marker for a price change.
func Arrow(change decimal.Decimal) string {
	switch change.Sign() {
	case 1:
		return "▲"
	case -1:
		return "▼"
	default:
		return "•"
	}
}
