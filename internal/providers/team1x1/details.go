package team1x1

import (
	"context"
	"fmt"

	"github.com/brogergvhs/teamx/internal/dom"
	"github.com/brogergvhs/teamx/internal/providers"
)

const (
	detailsThumbnailSelector   = "img.shadow-sm"
	detailsTitleSelector       = "div.author-info-title.mb-3 > h1"
	detailsCreditSelector      = "div:nth-child(7) small:nth-child(2) a"
	detailsStatusSelector      = "div:nth-child(6) > small:nth-child(2) > a"
	detailsDescriptionSelector = ".review-content > p"
	detailsGenreSelector       = "div.review-author-info > a"
)

// ParseDetails reads the series page template. Missing nodes leave the
// matching field blank.
func ParseDetails(doc *dom.Document) providers.MangaDetails {
	// The template has one credit line and it names the artist. Author is
	// taken from the artist value as it stood before that line was read,
	// so it stays blank.
	priorArtist := ""
	author := priorArtist
	artist := doc.Select(detailsCreditSelector).Text()

	genreNodes := doc.Select(detailsGenreSelector).All()
	genres := make([]string, 0, len(genreNodes))
	for _, g := range genreNodes {
		genres = append(genres, g.Text())
	}

	return providers.MangaDetails{
		Title:        doc.Select(detailsTitleSelector).Text(),
		ThumbnailURL: doc.Select(detailsThumbnailSelector).Attr("src", true),
		Author:       author,
		Artist:       artist,
		Status:       ParseStatus(doc.Select(detailsStatusSelector).Text()),
		Description:  doc.Select(detailsDescriptionSelector).Text(),
		Genres:       genres,
	}
}

func (s *Source) DetailsRequest(mangaURL string) providers.Request {
	return providers.GET(s.siteURL(mangaURL), s.header)
}

func (s *Source) Details(ctx context.Context, mangaURL string) (*providers.MangaDetails, error) {
	doc, err := s.fetchDocument(ctx, s.DetailsRequest(mangaURL))
	if err != nil {
		return nil, fmt.Errorf("details %s: %w", mangaURL, err)
	}

	d := ParseDetails(doc)
	return &d, nil
}
