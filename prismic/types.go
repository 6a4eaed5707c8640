package prismic

import "github.com/jardelbordignon/spacetraveling/richtext"

// SearchResponse is the raw shape of the CMS paginated query endpoint.
// NextPage is an opaque URL for the following page, empty on the last one.
type SearchResponse struct {
	Page        int        `json:"page"`
	ResultsSize int        `json:"results_size"`
	TotalPages  int        `json:"total_pages"`
	NextPage    string     `json:"next_page"`
	Results     []Document `json:"results"`
}

// Document is one content document as returned by the CMS. Documents are
// immutable once fetched; callers hold read-only copies.
type Document struct {
	ID                   string       `json:"id"`
	UID                  string       `json:"uid"`
	Type                 string       `json:"type"`
	FirstPublicationDate string       `json:"first_publication_date"`
	LastPublicationDate  string       `json:"last_publication_date"`
	Data                 DocumentData `json:"data"`
}

// DocumentData holds the post fields defined in the CMS custom type.
type DocumentData struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Author   string    `json:"author"`
	Banner   Banner    `json:"banner"`
	Content  []Section `json:"content"`
}

// Banner is the post banner image field.
type Banner struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Section is one body section: an optional heading followed by rich-text
// blocks. Section order is meaningful and always preserved.
type Section struct {
	Heading string           `json:"heading"`
	Body    []richtext.Block `json:"body"`
}
