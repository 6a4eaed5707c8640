package spacetraveling

import (
	"testing"

	"github.com/jardelbordignon/spacetraveling/prismic"
)

func summary(uid string) prismic.Post {
	return prismic.Post{UID: uid, Title: "Post " + uid, Author: "Ana"}
}

func TestApplyPageAppendsInArrivalOrder(t *testing.T) {
	state := ListingState{
		Items:    []prismic.Post{summary("a"), summary("b")},
		NextPage: "https://cms.example.com/page/2",
	}

	got := ApplyPage(state, prismic.PageOfPosts{Results: []prismic.Post{summary("c")}})

	if len(got.Items) != 3 {
		t.Fatalf("Items count = %d, want 3", len(got.Items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got.Items[i].UID != want {
			t.Errorf("Items[%d].UID = %q, want %q", i, got.Items[i].UID, want)
		}
	}
	if got.NextPage != "" {
		t.Errorf("NextPage = %q, want empty after final page", got.NextPage)
	}
}

func TestApplyPageReplacesCursor(t *testing.T) {
	state := ListingState{NextPage: "old-cursor"}
	got := ApplyPage(state, prismic.PageOfPosts{NextPage: "new-cursor"})
	if got.NextPage != "new-cursor" {
		t.Errorf("NextPage = %q, want new-cursor", got.NextPage)
	}
}

func TestApplyPageKeepsDuplicates(t *testing.T) {
	state := ListingState{Items: []prismic.Post{summary("same")}}
	got := ApplyPage(state, prismic.PageOfPosts{Results: []prismic.Post{summary("same")}})
	if len(got.Items) != 2 {
		t.Errorf("Items count = %d, want 2 (no deduplication)", len(got.Items))
	}
}

func TestApplyPageDoesNotMutateInput(t *testing.T) {
	state := ListingState{
		Items:    []prismic.Post{summary("a")},
		NextPage: "cursor",
	}
	_ = ApplyPage(state, prismic.PageOfPosts{Results: []prismic.Post{summary("b")}})

	if len(state.Items) != 1 || state.NextPage != "cursor" {
		t.Errorf("input state mutated: %+v", state)
	}
}
