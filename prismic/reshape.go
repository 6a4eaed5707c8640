package prismic

import "fmt"

// Post is the display-ready summary projection of a document.
// FirstPublicationDate is passed through unformatted; formatting is a
// display-layer concern.
type Post struct {
	UID                  string `json:"uid"`
	FirstPublicationDate string `json:"first_publication_date"`
	Title                string `json:"title"`
	Subtitle             string `json:"subtitle"`
	Author               string `json:"author"`
	BannerURL            string `json:"banner_url,omitempty"`
}

// PageOfPosts is one reshaped page of the listing. NextPage carries the
// raw response's cursor unchanged, empty meaning end of listing.
type PageOfPosts struct {
	NextPage string `json:"next_page"`
	Results  []Post `json:"results"`
}

// LookupError reports a required field missing on a fetched document.
// It fails that page's generation instead of surfacing a half-built page.
type LookupError struct {
	UID   string
	Field string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("prismic: document %q missing required field %q", e.UID, e.Field)
}

// Reshape maps a raw paginated response into a PageOfPosts. Result order
// is preserved, nothing is filtered or sorted, and the cursor passes
// through verbatim. A document missing uid, title or author yields a
// LookupError.
func Reshape(raw SearchResponse) (PageOfPosts, error) {
	posts := make([]Post, 0, len(raw.Results))
	for _, doc := range raw.Results {
		if err := ValidateDocument(doc); err != nil {
			return PageOfPosts{}, err
		}
		posts = append(posts, Post{
			UID:                  doc.UID,
			FirstPublicationDate: doc.FirstPublicationDate,
			Title:                doc.Data.Title,
			Subtitle:             doc.Data.Subtitle,
			Author:               doc.Data.Author,
			BannerURL:            doc.Data.Banner.URL,
		})
	}
	return PageOfPosts{NextPage: raw.NextPage, Results: posts}, nil
}

// ValidateDocument checks the fields every page rendering depends on.
func ValidateDocument(doc Document) error {
	switch {
	case doc.UID == "":
		return &LookupError{UID: doc.ID, Field: "uid"}
	case doc.Data.Title == "":
		return &LookupError{UID: doc.UID, Field: "title"}
	case doc.Data.Author == "":
		return &LookupError{UID: doc.UID, Field: "author"}
	}
	return nil
}
