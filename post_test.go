package spacetraveling

import (
	"strings"
	"testing"

	"github.com/jardelbordignon/spacetraveling/prismic"
	"github.com/jardelbordignon/spacetraveling/richtext"
)

func sectionWithWords(n int) prismic.Section {
	return prismic.Section{
		Body: []richtext.Block{{Type: "paragraph", Text: strings.TrimSpace(strings.Repeat("palavra ", n))}},
	}
}

func TestReadingTimeEmpty(t *testing.T) {
	if got := ReadingTime(nil); got != 0 {
		t.Errorf("ReadingTime(nil) = %d, want 0", got)
	}
	if got := ReadingTime([]prismic.Section{}); got != 0 {
		t.Errorf("ReadingTime([]) = %d, want 0", got)
	}
}

func TestReadingTimeHeadingPlusParagraph(t *testing.T) {
	sections := []prismic.Section{{
		Heading: "a b c",
		Body:    []richtext.Block{{Type: "paragraph", Text: "d e"}},
	}}
	if got := ReadingTime(sections); got != 1 {
		t.Errorf("ReadingTime(5 words) = %d, want 1", got)
	}
}

func TestReadingTimeRoundsUp(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{199, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
	}
	for _, tt := range tests {
		got := ReadingTime([]prismic.Section{sectionWithWords(tt.words)})
		if got != tt.want {
			t.Errorf("ReadingTime(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestReadingTimeMonotonic(t *testing.T) {
	sections := []prismic.Section{sectionWithWords(150)}
	base := ReadingTime(sections)
	for _, extra := range []int{1, 60, 250} {
		grown := append([]prismic.Section{}, sections...)
		grown = append(grown, sectionWithWords(extra))
		if got := ReadingTime(grown); got < base {
			t.Errorf("adding %d words decreased estimate: %d -> %d", extra, base, got)
		}
	}
}

func TestReadingTimeSumsAcrossSections(t *testing.T) {
	sections := []prismic.Section{sectionWithWords(150), sectionWithWords(150)}
	if got := ReadingTime(sections); got != 2 {
		t.Errorf("ReadingTime(300 words) = %d, want 2", got)
	}
}

func TestEditionDate(t *testing.T) {
	same := "2021-04-23T00:00:00Z"
	if got := editionDate(same, same); got != "" {
		t.Errorf("unedited document: editionDate = %q, want empty", got)
	}

	got := editionDate(same, "2021-04-25T12:00:00Z")
	if got != "25 abr 2021" {
		t.Errorf("editionDate = %q, want %q", got, "25 abr 2021")
	}
}
