package spacetraveling

import "github.com/jardelbordignon/spacetraveling/prismic"

// ListingState is the accumulated listing across load-more fetches.
// Items grow append-only in arrival order; NextPage always holds the
// cursor of the most recently applied page.
type ListingState struct {
	Items    []prismic.Post
	NextPage string
}

// ApplyPage is the single reducer step for the listing: concatenate the
// fetched page's items onto the accumulated list, preserving order and
// keeping duplicates, and replace the cursor with the new page's. The
// input state is not mutated.
func ApplyPage(state ListingState, page prismic.PageOfPosts) ListingState {
	items := make([]prismic.Post, 0, len(state.Items)+len(page.Results))
	items = append(items, state.Items...)
	items = append(items, page.Results...)
	return ListingState{Items: items, NextPage: page.NextPage}
}
