package ticker

import (
	"errors"
	"strings"
)

// MaxLength is the longest ticker symbol accepted for analysis.
const MaxLength = 10

var (
	ErrEmpty   = errors.New("please enter a stock ticker symbol")
	ErrTooLong = errors.New("ticker symbol too long")
)

// Normalize uppercases the input and strips everything that is not an
// A-Z letter, preserving the relative order of the remaining runes.
// It mirrors the live normalization applied while the user types, so the
// same function serves both keystroke filtering and submit-time cleanup.
func Normalize(raw string) string {
	raw = strings.ToUpper(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks an already-normalized symbol. An empty symbol and an
// overlong symbol are both local rejections: no request may be issued
// for either.
func Validate(symbol string) error {
	if symbol == "" {
		return ErrEmpty
	}
	if len(symbol) > MaxLength {
		return ErrTooLong
	}
	return nil
}
