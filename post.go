package spacetraveling

import (
	"context"
	"strings"

	"github.com/jardelbordignon/spacetraveling/prismic"
	"github.com/jardelbordignon/spacetraveling/richtext"
	"github.com/jardelbordignon/spacetraveling/views"
)

// wordsPerMinute is the fixed reading-speed constant.
const wordsPerMinute = 200

// ReadingTime estimates minutes to read the body sections: words in every
// optional heading plus every block's plain text, divided by 200 and
// rounded up. Empty content yields 0, not 1. Counting is whitespace-run
// based, an accepted approximation for punctuation-heavy or unspaced text.
func ReadingTime(sections []prismic.Section) int {
	words := 0
	for _, s := range sections {
		words += len(strings.Fields(s.Heading))
		words += richtext.Words(s.Body)
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// editionDate returns the formatted last-publication date when the
// document was edited after first publication, or "" otherwise.
func editionDate(firstPublished, lastPublished string) string {
	if firstPublished == lastPublished {
		return ""
	}
	return FormatDate(lastPublished)
}

// buildPostPage assembles the single-post view model: adjacent posts in
// publication order, edited-date detection, reading time, and rich-text
// conversion of every section.
func (a *App) buildPostPage(ctx context.Context, doc prismic.Document, ref string) (views.PostView, error) {
	if err := prismic.ValidateDocument(doc); err != nil {
		return views.PostView{}, err
	}

	previous, err := a.CMS.Adjacent(ctx, doc, prismic.Before, ref)
	if err != nil {
		return views.PostView{}, err
	}
	next, err := a.CMS.Adjacent(ctx, doc, prismic.After, ref)
	if err != nil {
		return views.PostView{}, err
	}

	sections := make([]views.SectionView, 0, len(doc.Data.Content))
	for _, s := range doc.Data.Content {
		sections = append(sections, views.SectionView{
			Heading: s.Heading,
			HTML:    richtext.AsHTML(s.Body),
		})
	}

	editedAt := editionDate(doc.FirstPublicationDate, doc.LastPublicationDate)
	page := views.PostView{
		Slug:        doc.UID,
		Title:       doc.Data.Title,
		Subtitle:    doc.Data.Subtitle,
		Author:      doc.Data.Author,
		BannerURL:   doc.Data.Banner.URL,
		Date:        FormatDate(doc.FirstPublicationDate),
		Edited:      editedAt != "",
		EditedAt:    editedAt,
		ReadingTime: ReadingTime(doc.Data.Content),
		Sections:    sections,
		Previous:    navLink(previous),
		Next:        navLink(next),
		Preview:     ref != "",
	}
	page.Description = postDescription(page)
	return page, nil
}

func navLink(doc *prismic.Document) *views.NavLink {
	if doc == nil {
		return nil
	}
	return &views.NavLink{Slug: doc.UID, Title: doc.Data.Title}
}

// postDescription derives the meta description: the subtitle when set,
// otherwise an excerpt of the first rendered section.
func postDescription(p views.PostView) string {
	if p.Subtitle != "" {
		return p.Subtitle
	}
	for _, s := range p.Sections {
		if d := Excerpt(s.HTML, excerptMaxRunes); d != "" {
			return d
		}
	}
	return ""
}
