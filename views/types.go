package views

// SiteConfig holds site-wide settings passed to every template so nothing
// is hardcoded in markup.
type SiteConfig struct {
	Name        string `mapstructure:"name"`
	URL         string `mapstructure:"url"`
	Description string `mapstructure:"description"`
	Author      string `mapstructure:"author"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// PostItem is one entry of the listing page. Date is already formatted
// for display.
type PostItem struct {
	Slug     string
	Title    string
	Subtitle string
	Author   string
	Date     string
}

// ListingView is the listing page state handed to Home and PostsPartial.
// NextPage is the opaque pagination cursor, empty when the listing ends;
// the load-more control is omitted in that case.
type ListingView struct {
	Posts    []PostItem
	NextPage string
	Preview  bool
}

// NavLink points at an adjacent post. A nil link means no post exists in
// that direction and the navigation entry is not rendered.
type NavLink struct {
	Slug  string
	Title string
}

// SectionView is one rendered body section: optional heading plus the
// rich-text blocks already converted to markup.
type SectionView struct {
	Heading string
	HTML    string
}

// PostView is the fully assembled single-post view model.
type PostView struct {
	Slug        string
	Title       string
	Subtitle    string
	Author      string
	BannerURL   string
	Date        string // formatted first publication date
	Edited      bool
	EditedAt    string // formatted last publication date, set when Edited
	ReadingTime int    // minutes
	Description string // plain-text excerpt for meta tags and feeds
	Sections    []SectionView
	Previous    *NavLink
	Next        *NavLink
	Preview     bool
}
