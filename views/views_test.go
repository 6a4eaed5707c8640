package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

var testCfg = SiteConfig{
	Name:        "spacetraveling",
	URL:         "https://spacetraveling.example.com",
	Description: "um blog sobre o espaço",
	Author:      "Jardel",
}

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestHomeRendersPosts(t *testing.T) {
	out := renderToString(t, Home(testCfg, ListingView{
		Posts: []PostItem{
			{Slug: "primeiro", Title: "Primeiro Post", Subtitle: "sub", Author: "Ana", Date: "23 abr 2021"},
		},
		NextPage: "https://cms.example.com/page/2",
	}))

	for _, want := range []string{
		`href="/post/primeiro/"`,
		"Primeiro Post",
		"23 abr 2021",
		"Carregar mais posts",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home missing %q", want)
		}
	}
}

func TestHomeHidesLoadMoreWithoutCursor(t *testing.T) {
	out := renderToString(t, Home(testCfg, ListingView{
		Posts: []PostItem{{Slug: "s", Title: "T", Author: "A", Date: "d"}},
	}))
	if strings.Contains(out, "Carregar mais posts") {
		t.Error("load-more control should be hidden when the cursor is empty")
	}
}

func TestHomeEscapesTitles(t *testing.T) {
	out := renderToString(t, Home(testCfg, ListingView{
		Posts: []PostItem{{Slug: "s", Title: "<script>bad</script>", Author: "A", Date: "d"}},
	}))
	if strings.Contains(out, "<script>bad</script>") {
		t.Error("post title not escaped")
	}
}

func TestPostsPartialSwapsCursor(t *testing.T) {
	out := renderToString(t, PostsPartial(ListingView{
		Posts:    []PostItem{{Slug: "c", Title: "C", Author: "A", Date: "d"}},
		NextPage: "https://cms.example.com/page/3",
	}))
	if !strings.Contains(out, `hx-swap-oob="true"`) {
		t.Error("partial should replace the load-more container out of band")
	}
	if !strings.Contains(out, "Carregar mais posts") {
		t.Error("partial should offer load more while a cursor remains")
	}

	out = renderToString(t, PostsPartial(ListingView{
		Posts: []PostItem{{Slug: "c", Title: "C", Author: "A", Date: "d"}},
	}))
	if strings.Contains(out, "Carregar mais posts") {
		t.Error("partial should drop load more when the listing ends")
	}
}

func TestPostRendersViewModel(t *testing.T) {
	out := renderToString(t, Post(testCfg, PostView{
		Slug:        "meu-post",
		Title:       "Meu Post",
		Author:      "Ana",
		BannerURL:   "https://images.example.com/banner.png",
		Date:        "23 abr 2021",
		ReadingTime: 4,
		Sections: []SectionView{
			{Heading: "Primeira seção", HTML: "<p>corpo</p>"},
		},
		Previous: &NavLink{Slug: "anterior", Title: "Post Anterior"},
	}))

	for _, want := range []string{
		"<h1>Meu Post</h1>",
		"23 abr 2021",
		"<span>4 min</span>",
		"<h2>Primeira seção</h2>",
		"<p>corpo</p>",
		`href="/post/anterior/"`,
		"Post anterior",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("post page missing %q", want)
		}
	}
	if strings.Contains(out, "Próximo post") {
		t.Error("missing next post must omit the next link entirely")
	}
}

func TestPostEditionLine(t *testing.T) {
	base := PostView{Slug: "s", Title: "T", Author: "A", Date: "23 abr 2021"}

	out := renderToString(t, Post(testCfg, base))
	if strings.Contains(out, "editado em") {
		t.Error("unedited post should not show the edition line")
	}

	edited := base
	edited.Edited = true
	edited.EditedAt = "25 abr 2021"
	out = renderToString(t, Post(testCfg, edited))
	if !strings.Contains(out, "* editado em 25 abr 2021") {
		t.Error("edited post should show the formatted edition date")
	}
}

func TestPostCommentsWidget(t *testing.T) {
	out := renderToString(t, Post(testCfg, PostView{Slug: "s", Title: "T", Author: "A"}))

	for _, want := range []string{
		`id="post-comments"`,
		`src="https://utteranc.es/client.js"`,
		`repo="jardelbordignon/spacetraveling"`,
		`issue-term="url"`,
		`label="comment :speech_balloon:"`,
		`theme="photon-dark"`,
		`crossorigin="anonymous"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("comments widget missing %q", want)
		}
	}
	if n := strings.Count(out, "utteranc.es/client.js"); n != 1 {
		t.Errorf("widget script rendered %d times, want exactly 1", n)
	}
}

func TestPostPreviewAffordance(t *testing.T) {
	out := renderToString(t, Post(testCfg, PostView{Slug: "s", Title: "T", Author: "A", Preview: true}))
	if !strings.Contains(out, "Sair do modo Preview") {
		t.Error("preview page should show the exit-preview affordance")
	}

	out = renderToString(t, Post(testCfg, PostView{Slug: "s", Title: "T", Author: "A"}))
	if strings.Contains(out, "Sair do modo Preview") {
		t.Error("published page should not show the exit-preview affordance")
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	got := BlogPostingJsonLD(testCfg, PostView{Slug: "meu-post", Title: "Meu Post", Author: "Ana"})
	for _, want := range []string{
		`"@type":"BlogPosting"`,
		`"headline":"Meu Post"`,
		`"https://spacetraveling.example.com/post/meu-post/"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("json-ld missing %q in %s", want, got)
		}
	}
}
