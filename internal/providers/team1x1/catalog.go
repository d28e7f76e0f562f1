package team1x1

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/brogergvhs/teamx/internal/dom"
	"github.com/brogergvhs/teamx/internal/providers"
	"github.com/brogergvhs/teamx/internal/util"
)

const (
	popularSelector  = "div.bsx"
	latestSelector   = "div.uta"
	searchSelector   = "ol.list-group> li.list-group-item.d-flex.justify-content-between.align-items-start"
	nextPageSelector = "a.page-link[rel=next]"

	lazyImageAttr = "data-pagespeed-lazy-src"
)

func (s *Source) PopularRequest(page int) providers.Request {
	return providers.GET(fmt.Sprintf("%s/series?page=%d", s.baseURL, page), s.header)
}

// LatestRequest always targets the homepage, which is the latest feed.
// The page argument is accepted for symmetry and not used.
func (s *Source) LatestRequest(_ int) providers.Request {
	return providers.GET(s.baseURL, s.header)
}

func (s *Source) SearchRequest(query string) providers.Request {
	return providers.GET(s.baseURL+"/ajax/search?keyword="+url.QueryEscape(query), s.header)
}

func ParsePopular(doc *dom.Document) []providers.CatalogEntry {
	cards := doc.Select(popularSelector).All()
	out := make([]providers.CatalogEntry, 0, len(cards))

	for _, card := range cards {
		out = append(out, providers.CatalogEntry{
			Title:        card.Select("div.tt.float-right").Text(),
			URL:          util.StripDomain(card.Select("a[title]").Attr("href", true)),
			ThumbnailURL: card.Select("img").Attr("src", true),
		})
	}

	return out
}

func ParseLatest(doc *dom.Document) []providers.CatalogEntry {
	cards := doc.Select(latestSelector).All()
	out := make([]providers.CatalogEntry, 0, len(cards))

	for _, card := range cards {
		out = append(out, providers.CatalogEntry{
			Title:        card.Select("a>h3").Text(),
			URL:          util.StripDomain(card.Select("a:has(img)").Attr("href", true)),
			ThumbnailURL: thumbnail(card),
		})
	}

	return out
}

func ParseSearch(doc *dom.Document) []providers.CatalogEntry {
	rows := doc.Select(searchSelector).All()
	out := make([]providers.CatalogEntry, 0, len(rows))

	for _, row := range rows {
		out = append(out, providers.CatalogEntry{
			Title:        row.Select("a.fw-bold").Text(),
			URL:          util.StripDomain(row.Select("div.image-parent> a").Attr("href", false)),
			ThumbnailURL: thumbnail(row),
		})
	}

	return out
}

// thumbnail prefers the lazy-load attribute and falls back to src.
func thumbnail(el dom.Element) string {
	img := el.Select("img")
	if strings.TrimSpace(img.Attr(lazyImageAttr, false)) != "" {
		return img.Attr(lazyImageAttr, true)
	}

	return img.Attr("src", true)
}

func HasNextPage(doc *dom.Document) bool {
	return !doc.Select(nextPageSelector).Empty()
}

// SearchHasNextPage is always false: search answers with a single page.
func SearchHasNextPage(_ *dom.Document) bool {
	return false
}

func (s *Source) PopularManga(ctx context.Context, page int) (*providers.MangasPage, error) {
	doc, err := s.fetchDocument(ctx, s.PopularRequest(page))
	if err != nil {
		return nil, fmt.Errorf("popular page %d: %w", page, err)
	}

	return &providers.MangasPage{Entries: ParsePopular(doc), HasNextPage: HasNextPage(doc)}, nil
}

func (s *Source) LatestUpdates(ctx context.Context, page int) (*providers.MangasPage, error) {
	doc, err := s.fetchDocument(ctx, s.LatestRequest(page))
	if err != nil {
		return nil, fmt.Errorf("latest updates: %w", err)
	}

	return &providers.MangasPage{Entries: ParseLatest(doc), HasNextPage: HasNextPage(doc)}, nil
}

func (s *Source) Search(ctx context.Context, query string) (*providers.MangasPage, error) {
	doc, err := s.fetchDocument(ctx, s.SearchRequest(query))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	return &providers.MangasPage{Entries: ParseSearch(doc), HasNextPage: SearchHasNextPage(doc)}, nil
}
