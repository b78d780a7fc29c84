package ticker

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"aapl", "AAPL"},
		{"  msft  ", "MSFT"},
		{"brk.b", "BRKB"},
		{"goog1", "GOOG"},
		{"$tsla!", "TSLA"},
		{"123", ""},
		{"", ""},
		{"nvda\n", "NVDA"},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeOnlyLetters(t *testing.T) {
	inputs := []string{"a1b2c3", "....", "Mixed Case 42", "ünïcödé"}
	for _, in := range inputs {
		got := Normalize(in)
		for _, r := range got {
			if r < 'A' || r > 'Z' {
				t.Errorf("Normalize(%q) produced non-letter rune %q", in, r)
			}
		}
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	if got := Normalize("a1z2x"); got != "AZX" {
		t.Errorf("expected relative order preserved, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(""); err != ErrEmpty {
		t.Errorf("empty symbol: got %v, want ErrEmpty", err)
	}
	if err := Validate(strings.Repeat("A", 11)); err != ErrTooLong {
		t.Errorf("overlong symbol: got %v, want ErrTooLong", err)
	}
	if err := Validate(strings.Repeat("A", 10)); err != nil {
		t.Errorf("10-char symbol should be valid, got %v", err)
	}
	if err := Validate("AAPL"); err != nil {
		t.Errorf("AAPL should be valid, got %v", err)
	}
}
