package team1x1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/teamx/internal/providers"
)

const readerPage = `<html><body>
<div class="page-break no-gaps">
  <img src="/wp/1.jpg">
  <img data-src="https://cdn.teamx.fun/2.webp" src="/placeholder.gif">
  <img class="ad" data-src="https://cdn.teamx.fun/ad.webp">
  <img src="3.jpg">
</div>
<div class="page-break"><img src="/not-reader.jpg"></div>
<img src="/footer.png">
</body></html>`

func TestParsePages(t *testing.T) {
	doc := mustParse(t, readerPage, "https://teamx.fun/series/x/12/")

	pages := ParsePages(doc)

	assert.Equal(t, []providers.Page{
		{Index: 0, ImageURL: "https://teamx.fun/wp/1.jpg"},
		{Index: 1, ImageURL: "https://cdn.teamx.fun/2.webp"},
		{Index: 2, ImageURL: "https://teamx.fun/series/x/12/3.jpg"},
	}, pages)

	for i, p := range pages {
		assert.Equal(t, i, p.Index)
	}
}

func TestParsePagesEmpty(t *testing.T) {
	doc := mustParse(t, "<html><body></body></html>", "https://teamx.fun/series/x/12")
	assert.Empty(t, ParsePages(doc))
}

func TestPagesFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, readerPage)
	}))
	defer srv.Close()

	s := New(srv.Client(), Options{BaseURL: srv.URL})

	pages, err := s.Pages(context.Background(), "/series/x/12/")
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, srv.URL+"/wp/1.jpg", pages[0].ImageURL)
	assert.Equal(t, srv.URL+"/series/x/12/3.jpg", pages[2].ImageURL)
}

func TestImageURLUnsupported(t *testing.T) {
	s := New(nil, Options{})

	for _, p := range []providers.Page{{}, {Index: 3, ImageURL: "https://cdn.teamx.fun/3.webp"}} {
		url, err := s.ImageURL(context.Background(), p)
		assert.Empty(t, url)
		assert.True(t, errors.Is(err, providers.ErrUnsupported))
	}
}
