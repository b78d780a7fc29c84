package books

// images maps the six titles in the analysis library to their cover art.
var images = map[string]string{
	"The Intelligent Investor":                  "static/images/books/intelligent-investor.jpg",
	"A Random Walk Down Wall Street":            "static/images/books/random-walk.jpg",
	"Common Stocks and Uncommon Profits":        "static/images/books/common-stocks.jpg",
	"One Up On Wall Street":                     "static/images/books/one-up.jpg",
	"Stock Investing 101":                       "static/images/books/stock-101.jpg",
	"The Little Book of Common Sense Investing": "static/images/books/little-book.jpg",
}

// FallbackGlyph marks excerpts from titles outside the known library.
const FallbackGlyph = "📖"

// Image returns the cover path for a known title.
func Image(title string) (string, bool) {
	path, ok := images[title]
	return path, ok
}

// Icon returns a short marker for terminal display: a distinct glyph for
// known titles, the generic one otherwise.
func Icon(title string) string {
	if _, ok := images[title]; ok {
		return "📕"
	}
	return FallbackGlyph
}
