package render

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/stockwellness/stockwellness/internal/logger"
	"github.com/stockwellness/stockwellness/internal/models"
)

// RegionError records a fault confined to one display region.
type RegionError struct {
	Region string
	Err    error
}

func (e RegionError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Region, e.Err)
}

// Renderer populates the seven display regions from one AnalysisResult.
// Each region is isolated: a fault in one is captured and logged, and the
// remaining regions still render.
type Renderer struct {
	out        io.Writer
	log        *zap.SugaredLogger
	pageSize   int
	animations bool

	news *NewsPager
}

type Option func(*Renderer)

func WithPageSize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

func WithAnimations(on bool) Option {
	return func(r *Renderer) { r.animations = on }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Renderer) { r.log = l }
}

func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:      out,
		log:      logger.L(),
		pageSize: 2,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render populates every region in a fixed order and returns the regional
// faults that occurred. The result is expected to come from ParseResult,
// which already rejected payloads without an analysis section.
func (r *Renderer) Render(res *models.AnalysisResult) []RegionError {
	r.news = nil

	regions := []struct {
		name string
		fn   func(*models.AnalysisResult) error
	}{
		{"header", r.renderHeader},
		{"recommendation", r.renderRecommendation},
		{"detailed_analysis", r.renderDetailedAnalysis},
		{"price_chart", r.renderPriceChart},
		{"global_news", r.renderGlobalNews},
		{"literature", r.renderLiterature},
		{"references", r.renderReferences},
	}

	var faults []RegionError
	for _, region := range regions {
		if err := r.renderRegion(region.name, region.fn, res); err != nil {
			faults = append(faults, RegionError{Region: region.name, Err: err})
		}
	}
	return faults
}

// renderRegion isolates one region: errors and panics are captured so
// sibling regions always get their chance to render.
func (r *Renderer) renderRegion(name string, fn func(*models.AnalysisResult) error, res *models.AnalysisResult) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
		if err != nil {
			r.log.Warnw("region render failed", "region", name, "error", err)
		}
	}()
	return fn(res)
}

// NewsPager exposes the paging state built by the last Render, for the
// interactive session's next/prev commands. Nil until news has rendered.
func (r *Renderer) NewsPager() *NewsPager {
	return r.news
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

func (r *Renderer) sectionTitle(title string) {
	fmt.Fprintln(r.out, sectionTitleStyle.Render(title))
}

// stagger sleeps one reveal step when animations are on, so the item at
// index i appears ItemDelay(i) after its region starts.
func (r *Renderer) stagger() {
	if r.animations {
		time.Sleep(ItemDelay(1))
	}
}

// ItemDelay is the reveal delay for the item at the given index.
func ItemDelay(index int) time.Duration {
	return time.Duration(index) * 100 * time.Millisecond
}
