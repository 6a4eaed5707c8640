package spacetraveling

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// excerptMaxRunes bounds meta descriptions and feed summaries.
const excerptMaxRunes = 160

// Excerpt strips markup from an HTML fragment and returns the collapsed
// plain text, truncated to max runes on a word boundary with an ellipsis.
func Excerpt(htmlFragment string, max int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlFragment))
	if err != nil {
		return ""
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	if max <= 0 || len([]rune(text)) <= max {
		return text
	}
	runes := []rune(text)[:max]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
