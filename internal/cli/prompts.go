package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/stockwellness/stockwellness/internal/ticker"
)

// PopularTicker is a well-known symbol offered as a shortcut in the
// interactive prompt.
type PopularTicker struct {
	Symbol string
	Name   string
}

// PopularTickers lists the shortcuts shown alongside the free-form prompt.
var PopularTickers = []PopularTicker{
	{"AAPL", "Apple Inc."},
	{"MSFT", "Microsoft Corporation"},
	{"GOOGL", "Alphabet Inc."},
	{"AMZN", "Amazon.com Inc."},
	{"TSLA", "Tesla Inc."},
	{"META", "Meta Platforms Inc."},
	{"NVDA", "NVIDIA Corporation"},
	{"NFLX", "Netflix Inc."},
	{"SPY", "SPDR S&P 500 ETF Trust"},
	{"QQQ", "Invesco QQQ Trust"},
}

// PromptForTicker asks for a stock ticker symbol and returns it normalized.
func PromptForTicker() (string, error) {
	var raw string
	prompt := &survey.Input{
		Message: "Enter the stock ticker symbol (e.g., AAPL, MSFT, GOOGL):",
		Help:    "Symbols are uppercased and stripped to letters before submission",
	}

	err := survey.AskOne(prompt, &raw, survey.WithValidator(func(val interface{}) error {
		str, _ := val.(string)
		return ticker.Validate(ticker.Normalize(str))
	}))
	if err != nil {
		return "", err
	}

	return ticker.Normalize(raw), nil
}

// PromptForPopularTicker offers the popular-symbol shortcuts as a select
// list and returns the chosen symbol.
func PromptForPopularTicker() (string, error) {
	options := make([]string, len(PopularTickers))
	for i, p := range PopularTickers {
		options[i] = fmt.Sprintf("%s - %s", p.Symbol, p.Name)
	}

	var choice string
	prompt := &survey.Select{
		Message:  "Pick a popular ticker:",
		Options:  options,
		PageSize: len(options),
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}

	symbol, _, _ := strings.Cut(choice, " - ")
	return symbol, nil
}

// ConfirmExit asks before leaving while results are on screen.
func ConfirmExit() bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: "Exit StockWellness?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return true
	}
	return confirmed
}
