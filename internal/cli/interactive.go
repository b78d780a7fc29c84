package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/stockwellness/stockwellness/config"
	"github.com/stockwellness/stockwellness/internal/market"
	"github.com/stockwellness/stockwellness/internal/preview"
)

// InteractiveSession is the command loop wrapped around one Controller.
type InteractiveSession struct {
	config     *config.Config
	controller *Controller
	fetcher    *preview.Fetcher
	reader     *bufio.Reader
	out        io.Writer

	// lookup is stubbed in tests.
	lookup func(string) (*market.Quote, error)
}

func NewInteractiveSession(cfg *config.Config, ctrl *Controller) *InteractiveSession {
	return &InteractiveSession{
		config:     cfg,
		controller: ctrl,
		fetcher:    preview.NewFetcher(30 * time.Second),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		lookup:     market.Lookup,
	}
}

// Start shows the welcome screen and runs the main loop until exit.
func (s *InteractiveSession) Start(ctx context.Context) error {
	s.showWelcome()
	return s.runMainLoop(ctx)
}

func (s *InteractiveSession) showWelcome() {
	title := color.New(color.FgGreen, color.Bold)
	title.Fprintln(s.out, "📊 StockWellness - Investment Analysis Terminal")
	fmt.Fprintln(s.out, strings.Repeat("=", 58))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "💡 Commands:")
	fmt.Fprintln(s.out, "   analyze <SYMBOL>  - Run a full investment analysis")
	fmt.Fprintln(s.out, "   quote <SYMBOL>    - Quick local market quote")
	fmt.Fprintln(s.out, "   popular           - Pick from popular tickers")
	fmt.Fprintln(s.out, "   n / p             - Next / previous news page")
	fmt.Fprintln(s.out, "   open <N>          - Preview news article N on the current page")
	fmt.Fprintln(s.out, "   history           - Show recent analysis runs")
	fmt.Fprintln(s.out, "   clear             - Clear the screen")
	fmt.Fprintln(s.out, "   help              - Show detailed help")
	fmt.Fprintln(s.out, "   exit              - Leave StockWellness")
	fmt.Fprintln(s.out)
}

func (s *InteractiveSession) runMainLoop(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, "📈 StockWellness> ")

		input, err := s.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(s.out)
				return nil
			}
			fmt.Fprintf(s.out, "Error reading input: %v\n", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		command := strings.ToLower(parts[0])

		switch command {
		case "exit", "quit", "q":
			fmt.Fprintln(s.out, "👋 Thank you for using StockWellness!")
			return nil

		case "help", "h", "?":
			s.showWelcome()

		case "analyze", "a":
			if len(parts) < 2 {
				// Bare analyze falls back to the guided prompt.
				symbol, err := PromptForTicker()
				if err != nil {
					continue
				}
				s.controller.Submit(ctx, symbol)
				continue
			}
			s.controller.Submit(ctx, parts[1])

		case "popular":
			symbol, err := PromptForPopularTicker()
			if err != nil {
				continue
			}
			s.controller.Submit(ctx, symbol)

		case "quote":
			if len(parts) < 2 {
				fmt.Fprintln(s.out, "Usage: quote <SYMBOL>")
				continue
			}
			s.showQuote(parts[1])

		case "n", "next":
			s.pageNews(func() { s.controller.News().Next() })

		case "p", "prev":
			s.pageNews(func() { s.controller.News().Prev() })

		case "open", "o":
			if len(parts) < 2 {
				fmt.Fprintln(s.out, "Usage: open <N>")
				continue
			}
			s.openArticle(ctx, parts[1])

		case "history", "hist":
			s.showHistory()

		case "clear", "cls":
			fmt.Fprint(s.out, "\033[2J\033[H")

		default:
			// Anything that looks like a bare ticker is treated as one.
			s.controller.Submit(ctx, parts[0])
		}
	}
}

func (s *InteractiveSession) pageNews(move func()) {
	if s.controller.News() == nil {
		s.controller.Notifier().Info("No analysis loaded yet")
		return
	}
	move()
	s.controller.ShowNewsPage()
}

func (s *InteractiveSession) openArticle(ctx context.Context, arg string) {
	pager := s.controller.News()
	if pager == nil {
		s.controller.Notifier().Info("No analysis loaded yet")
		return
	}

	n, err := strconv.Atoi(arg)
	items := pager.Items()
	if err != nil || n < 1 || n > len(items) {
		fmt.Fprintf(s.out, "Pick an article between 1 and %d on this page\n", len(items))
		return
	}

	article := items[n-1]
	if article.URL == "" {
		s.controller.Notifier().Warning("This article has no link")
		return
	}

	fmt.Fprintf(s.out, "Fetching %s ...\n", article.URL)
	fetched, err := s.fetcher.Fetch(ctx, article.URL)
	if err != nil {
		s.controller.Notifier().Warning(fmt.Sprintf("Could not preview article: %v", err))
		return
	}

	fmt.Fprintln(s.out)
	color.New(color.Bold).Fprintln(s.out, fetched.Title)
	if fetched.SiteName != "" {
		fmt.Fprintf(s.out, "%s\n", fetched.SiteName)
	}
	if fetched.Description != "" {
		fmt.Fprintln(s.out, fetched.Description)
	}
	fmt.Fprintln(s.out)
}

func (s *InteractiveSession) showHistory() {
	store := s.controller.History()
	if store == nil {
		s.controller.Notifier().Info("History is disabled")
		return
	}
	entries, err := store.Recent(10)
	if err != nil {
		s.controller.Notifier().Error(fmt.Sprintf("Could not read history: %v", err))
		return
	}
	printHistory(s.out, entries)
}

func (s *InteractiveSession) showQuote(symbol string) {
	q, err := s.lookup(symbol)
	if err != nil {
		s.controller.Notifier().Error(fmt.Sprintf("Quote failed: %v", err))
		return
	}

	fmt.Fprintf(s.out, "%s (%s)  $%s  %s %s (%s%%)\n",
		q.Name, q.Symbol,
		q.Price.StringFixed(2),
		market.Arrow(q.Change),
		q.Change.StringFixed(2),
		q.ChangePercent.StringFixed(2))
}
