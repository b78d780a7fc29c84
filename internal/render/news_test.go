package render

import (
	"fmt"
	"testing"

	"github.com/stockwellness/stockwellness/internal/models"
)

func articles(n int) []models.NewsArticle {
	out := make([]models.NewsArticle, n)
	for i := range out {
		out[i] = models.NewsArticle{
			Title:       fmt.Sprintf("Headline %d", i+1),
			Source:      "Reuters",
			URL:         fmt.Sprintf("https://example.com/%d", i+1),
			PublishedAt: "2025-06-01T00:00:00Z",
		}
	}
	return out
}

func TestPagerPageCount(t *testing.T) {
	if got := NewNewsPager(articles(5), 2).PageCount(); got != 3 {
		t.Errorf("5 items / page size 2 = %d pages, want 3", got)
	}
	if got := NewNewsPager(articles(4), 2).PageCount(); got != 2 {
		t.Errorf("4 items / page size 2 = %d pages, want 2", got)
	}
	if got := NewNewsPager(nil, 2).PageCount(); got != 0 {
		t.Errorf("no items = %d pages, want 0", got)
	}
}

func TestPagerControlsAndClamping(t *testing.T) {
	p := NewNewsPager(articles(5), 2)

	if p.HasPrev() {
		t.Error("prev must be disabled on the first page")
	}
	if !p.HasNext() {
		t.Error("next must be enabled on the first page")
	}

	p.Next()
	p.Next()
	if p.Page() != 2 {
		t.Fatalf("page = %d, want 2", p.Page())
	}
	if p.HasNext() {
		t.Error("next must be disabled on the last page")
	}
	if got := len(p.Items()); got != 1 {
		t.Errorf("last page holds %d items, want 1", got)
	}

	// Advancing past the end clamps.
	p.Next()
	if p.Page() != 2 {
		t.Errorf("page advanced past the last, now %d", p.Page())
	}

	p.SetPage(-7)
	if p.Page() != 0 {
		t.Errorf("negative page index should clamp to 0, got %d", p.Page())
	}
	p.SetPage(99)
	if p.Page() != 2 {
		t.Errorf("oversized page index should clamp to last, got %d", p.Page())
	}
}

func TestPagerPrev(t *testing.T) {
	p := NewNewsPager(articles(5), 2)
	p.SetPage(2)
	p.Prev()
	if p.Page() != 1 {
		t.Errorf("page = %d, want 1", p.Page())
	}
	if got := len(p.Items()); got != 2 {
		t.Errorf("middle page holds %d items, want 2", got)
	}
	p.Prev()
	p.Prev()
	if p.Page() != 0 {
		t.Errorf("page = %d, want 0", p.Page())
	}
}
