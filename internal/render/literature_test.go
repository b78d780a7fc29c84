package render

import (
	"strings"
	"testing"
)

func TestTruncatePreview(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := TruncatePreview(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatal("truncated preview must end with the ellipsis marker")
	}
	if body := strings.TrimSuffix(got, "..."); len([]rune(body)) != 200 {
		t.Errorf("truncated body is %d chars, want exactly 200", len([]rune(body)))
	}

	short := strings.Repeat("b", 200)
	if got := TruncatePreview(short); got != short {
		t.Error("a 200-char preview passes through untouched")
	}
	if got := TruncatePreview(""); got != "" {
		t.Errorf("empty preview = %q", got)
	}
}

func TestRelevancePercent(t *testing.T) {
	cases := []struct {
		score float64
		want  int
	}{
		{0.87, 87},
		{0.005, 1},
		{0.004, 0},
		{1, 100},
		{0, 0},
	}
	for _, c := range cases {
		if got := RelevancePercent(c.score); got != c.want {
			t.Errorf("RelevancePercent(%v) = %d, want %d", c.score, got, c.want)
		}
	}
}
