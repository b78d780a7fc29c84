package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/stockwellness/stockwellness/config"
	"github.com/stockwellness/stockwellness/internal/client"
	"github.com/stockwellness/stockwellness/internal/history"
	"github.com/stockwellness/stockwellness/internal/loading"
	"github.com/stockwellness/stockwellness/internal/logger"
	"github.com/stockwellness/stockwellness/internal/models"
	"github.com/stockwellness/stockwellness/internal/notify"
	"github.com/stockwellness/stockwellness/internal/render"
	"github.com/stockwellness/stockwellness/internal/ticker"
)

// Analyzer is the backend exchange the controller drives.
type Analyzer interface {
	Analyze(ctx context.Context, symbol string) (*models.AnalysisResult, error)
}

// loader is the loading sequence shown while a request is in flight.
type loader interface {
	Start(ctx context.Context)
	Stop()
}

// Controller owns a single analysis flow: it validates the ticker, runs
// the loading sequence, performs the exchange, renders the result and
// raises notifications. At most one request is in flight at a time; a
// submission while busy is ignored.
type Controller struct {
	out      io.Writer
	client   Analyzer
	notes    *notify.Notifier
	renderer *render.Renderer
	log      *zap.SugaredLogger

	newLoader func(io.Writer) loader

	mu      sync.Mutex
	busy    bool
	last    *models.AnalysisResult
	journal *history.Store
}

func NewController(cfg *config.Config, backend Analyzer, out io.Writer) *Controller {
	return &Controller{
		out:    out,
		client: backend,
		notes:  notify.New(out),
		renderer: render.New(out,
			render.WithPageSize(cfg.NewsPageSize),
			render.WithAnimations(cfg.Animations)),
		log:       logger.L(),
		newLoader: func(w io.Writer) loader { return loading.New(w) },
	}
}

// Submit runs one full analysis for the given raw input. The idle state
// is restored exactly once per accepted submission, whatever the outcome.
func (c *Controller) Submit(ctx context.Context, raw string) error {
	symbol := ticker.Normalize(raw)
	if err := ticker.Validate(symbol); err != nil {
		// Empty input warns; every other rejection is an error.
		if errors.Is(err, ticker.ErrEmpty) {
			c.notes.Warning(err.Error())
		} else {
			c.notes.Error(err.Error())
		}
		return err
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		c.log.Debugw("submission ignored, request already in flight", "symbol", symbol)
		return nil
	}
	c.busy = true
	c.mu.Unlock()

	var done sync.Once
	finish := func() {
		done.Do(func() {
			c.mu.Lock()
			c.busy = false
			c.mu.Unlock()
		})
	}
	defer finish()

	seq := c.newLoader(c.out)
	seq.Start(ctx)
	result, err := c.client.Analyze(ctx, symbol)
	seq.Stop()

	if err != nil {
		c.notes.Error(describeFailure(err))
		c.log.Warnw("analysis failed", "symbol", symbol, "error", err)
		return err
	}

	c.mu.Lock()
	c.last = result
	journal := c.journal
	c.mu.Unlock()

	if journal != nil {
		if err := journal.Record(symbol, result); err != nil {
			c.log.Warnw("history record failed", "symbol", symbol, "error", err)
		}
	}

	fmt.Fprintln(c.out)
	for _, fault := range c.renderer.Render(result) {
		c.log.Warnw("region degraded", "region", fault.Region, "error", fault.Err)
	}
	c.notes.Success(fmt.Sprintf("Analysis complete for %s", symbol))
	return nil
}

// SetHistory attaches a journal that records every completed analysis.
func (c *Controller) SetHistory(store *history.Store) {
	c.mu.Lock()
	c.journal = store
	c.mu.Unlock()
}

// History returns the attached journal, or nil.
func (c *Controller) History() *history.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journal
}

// Busy reports whether a request is currently in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Last returns the most recently rendered result, or nil.
func (c *Controller) Last() *models.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// News exposes the pager over the last result's news region.
func (c *Controller) News() *render.NewsPager {
	return c.renderer.NewsPager()
}

// ShowNewsPage re-renders the current news page after a pager move.
func (c *Controller) ShowNewsPage() {
	pager := c.renderer.NewsPager()
	if pager == nil {
		c.notes.Info("No analysis loaded yet")
		return
	}
	fmt.Fprintln(c.out)
	c.renderer.RenderNewsPage()
}

// Notifier exposes the controller's notification surface.
func (c *Controller) Notifier() *notify.Notifier {
	return c.notes
}

// describeFailure maps exchange errors to the message shown to the user.
func describeFailure(err error) string {
	var status *client.StatusError
	if errors.As(err, &status) {
		return fmt.Sprintf("Server error (HTTP %d). Please try again later.", status.Code)
	}
	var svc *client.ServiceError
	if errors.As(err, &svc) {
		return svc.Message
	}
	if errors.Is(err, models.ErrNoAnalysis) {
		return "Invalid response from server"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "Analysis cancelled"
	}
	return "Network error. Please check your connection and try again."
}
