package team1x1

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/teamx/internal/dom"
	"github.com/brogergvhs/teamx/internal/providers"
)

func mustParse(t *testing.T, html, location string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(html, location)
	require.NoError(t, err)
	return doc
}

func popularCard(slug, title string, absolute bool) string {
	href := "/series/" + slug
	if absolute {
		href = "https://teamx.fun" + href
	}
	return fmt.Sprintf(`
<div class="bsx">
  <a href="%s" title="%s">
    <div class="limit"><img src="/uploads/%s.jpg"></div>
  </a>
  <div class="tt float-right"> %s </div>
</div>`, href, title, slug, title)
}

func popularPage(next bool, cards ...string) string {
	nav := `<a class="page-link" rel="prev" href="/series?page=1">&lt;</a>`
	if next {
		nav += `<a class="page-link" rel="next" href="/series?page=3">&gt;</a>`
	}
	return "<html><body><div class=\"listupd\">" + strings.Join(cards, "") + "</div><nav>" + nav + "</nav></body></html>"
}

func TestParsePopular(t *testing.T) {
	html := popularPage(true,
		popularCard("solo-leveling", "Solo Leveling", true),
		popularCard("omniscient-reader", "Omniscient Reader", false),
		popularCard("tower-of-god", "Tower of God", true),
	)
	doc := mustParse(t, html, "https://teamx.fun/series?page=2")

	entries := ParsePopular(doc)
	require.Len(t, entries, 3)

	assert.Equal(t, providers.CatalogEntry{
		Title:        "Solo Leveling",
		URL:          "/series/solo-leveling",
		ThumbnailURL: "https://teamx.fun/uploads/solo-leveling.jpg",
	}, entries[0])
	assert.Equal(t, "Omniscient Reader", entries[1].Title)
	assert.Equal(t, "/series/omniscient-reader", entries[1].URL)
	assert.Equal(t, "Tower of God", entries[2].Title)

	for _, e := range entries {
		assert.NotContains(t, e.URL, "teamx.fun")
		assert.True(t, strings.HasPrefix(e.URL, "/"))
	}

	assert.True(t, HasNextPage(doc))
}

func TestHasNextPageOnLastPage(t *testing.T) {
	doc := mustParse(t, popularPage(false, popularCard("a", "A", false)), "https://teamx.fun/series?page=9")
	assert.False(t, HasNextPage(doc))

	empty := mustParse(t, "<html><body></body></html>", "https://teamx.fun/")
	assert.False(t, HasNextPage(empty))
	assert.Empty(t, ParsePopular(empty))
}

func TestParseLatestThumbnailFallback(t *testing.T) {
	html := `<html><body>
<div class="uta">
  <div class="imgu"><a href="https://teamx.fun/series/lazy"><img src="/eager/lazy.jpg" data-pagespeed-lazy-src="https://cdn.teamx.fun/lazy.webp"></a></div>
  <div class="luf"><a href="https://teamx.fun/series/lazy"><h3>Lazy One</h3></a></div>
</div>
<div class="uta">
  <div class="imgu"><a href="/series/blank"><img src="/eager/blank.jpg" data-pagespeed-lazy-src=""></a></div>
  <div class="luf"><a href="/series/blank"><h3>Blank Lazy</h3></a></div>
</div>
<div class="uta">
  <div class="imgu"><a href="/series/plain"><img src="/eager/plain.jpg"></a></div>
  <div class="luf"><a href="/series/plain"><h3>Plain</h3></a></div>
</div>
</body></html>`
	doc := mustParse(t, html, "https://teamx.fun/")

	entries := ParseLatest(doc)
	require.Len(t, entries, 3)

	assert.Equal(t, providers.CatalogEntry{
		Title:        "Lazy One",
		URL:          "/series/lazy",
		ThumbnailURL: "https://cdn.teamx.fun/lazy.webp",
	}, entries[0])
	assert.Equal(t, "https://teamx.fun/eager/blank.jpg", entries[1].ThumbnailURL)
	assert.Equal(t, "/series/blank", entries[1].URL)
	assert.Equal(t, "https://teamx.fun/eager/plain.jpg", entries[2].ThumbnailURL)
	assert.Equal(t, "Plain", entries[2].Title)
}

func TestParseSearch(t *testing.T) {
	html := `<html><body><ol class="list-group">
<li class="list-group-item d-flex justify-content-between align-items-start">
  <div class="image-parent"><a href="https://teamx.fun/series/naruto"><img src="/thumbs/naruto.jpg"></a></div>
  <div class="ms-2 me-auto"><a class="fw-bold" href="https://teamx.fun/series/naruto">ناروتو</a></div>
</li>
<li class="list-group-item d-flex justify-content-between align-items-start">
  <div class="image-parent"><a href="/series/boruto"><img src="/thumbs/boruto.jpg" data-pagespeed-lazy-src="/lazy/boruto.jpg"></a></div>
  <div class="ms-2 me-auto"><a class="fw-bold" href="/series/boruto">بوروتو</a></div>
</li>
<li class="list-group-item">not a result row</li>
</ol></body></html>`
	doc := mustParse(t, html, "https://teamx.fun/ajax/search?keyword=x")

	entries := ParseSearch(doc)
	require.Len(t, entries, 2)

	assert.Equal(t, "ناروتو", entries[0].Title)
	assert.Equal(t, "/series/naruto", entries[0].URL)
	assert.Equal(t, "https://teamx.fun/thumbs/naruto.jpg", entries[0].ThumbnailURL)
	assert.Equal(t, "/series/boruto", entries[1].URL)
	assert.Equal(t, "https://teamx.fun/lazy/boruto.jpg", entries[1].ThumbnailURL)

	assert.False(t, SearchHasNextPage(doc))
}

func TestRequests(t *testing.T) {
	s := New(nil, Options{Header: http.Header{"Referer": []string{"https://teamx.fun/"}}})

	r := s.PopularRequest(4)
	assert.Equal(t, http.MethodGet, r.Method)
	assert.Equal(t, "https://teamx.fun/series?page=4", r.URL)
	assert.Equal(t, "https://teamx.fun/", r.Header.Get("Referer"))

	assert.Equal(t, "https://teamx.fun", s.LatestRequest(1).URL)
	assert.Equal(t, "https://teamx.fun", s.LatestRequest(7).URL)

	assert.Equal(t, "https://teamx.fun/ajax/search?keyword=one", s.SearchRequest("one").URL)
	assert.Equal(t, "https://teamx.fun/ajax/search?keyword=one+piece", s.SearchRequest("one piece").URL)

	assert.Equal(t, "https://teamx.fun/series/x", s.DetailsRequest("/series/x").URL)
	assert.Equal(t, "https://teamx.fun/series/x", s.ChapterListRequest("/series/x").URL)
	assert.Equal(t, "https://teamx.fun/series/x/12", s.PageListRequest("/series/x/12").URL)

	mirror := New(nil, Options{BaseURL: "https://mirror.example.org/"})
	assert.Equal(t, "https://mirror.example.org/series?page=1", mirror.PopularRequest(1).URL)
	assert.Equal(t, "https://mirror.example.org", mirror.BaseURL())
}

func TestPopularMangaFetch(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/series", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, popularPage(true, popularCard("a", "A", false), popularCard("b", "B", false)))
	})
	mux.HandleFunc("/ajax/search", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("keyword")
		fmt.Fprint(w, `<ol class="list-group"></ol>`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="uta"><a href="/series/z"><img src="/z.jpg"></a><a href="/series/z"><h3>Z</h3></a></div>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := New(srv.Client(), Options{BaseURL: srv.URL})
	ctx := context.Background()

	page, err := s.PopularManga(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "page=2", gotQuery)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "/series/a", page.Entries[0].URL)
	assert.Equal(t, srv.URL+"/uploads/a.jpg", page.Entries[0].ThumbnailURL)
	assert.True(t, page.HasNextPage)

	latest, err := s.LatestUpdates(ctx, 5)
	require.NoError(t, err)
	require.Len(t, latest.Entries, 1)
	assert.Equal(t, "Z", latest.Entries[0].Title)
	assert.False(t, latest.HasNextPage)

	results, err := s.Search(ctx, "ون بيس")
	require.NoError(t, err)
	assert.Equal(t, "ون بيس", gotQuery)
	assert.Empty(t, results.Entries)
	assert.False(t, results.HasNextPage)
}

func TestFetchFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	s := New(srv.Client(), Options{BaseURL: srv.URL})
	_, err := s.PopularManga(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}
