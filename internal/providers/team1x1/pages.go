package team1x1

import (
	"context"
	"fmt"

	"github.com/brogergvhs/teamx/internal/dom"
	"github.com/brogergvhs/teamx/internal/providers"
)

const pageImageSelector = "div.page-break.no-gaps img[src]"

// ParsePages lists reader images in document order. data-src wins over
// src when both are present.
func ParsePages(doc *dom.Document) []providers.Page {
	imgs := doc.Select(pageImageSelector).All()
	out := make([]providers.Page, 0, len(imgs))

	for i, img := range imgs {
		attr := "src"
		if img.HasAttr("data-src") {
			attr = "data-src"
		}

		out = append(out, providers.Page{Index: i, ImageURL: img.Attr(attr, true)})
	}

	return out
}

func (s *Source) PageListRequest(chapterURL string) providers.Request {
	return providers.GET(s.siteURL(chapterURL), s.header)
}

func (s *Source) Pages(ctx context.Context, chapterURL string) ([]providers.Page, error) {
	doc, err := s.fetchDocument(ctx, s.PageListRequest(chapterURL))
	if err != nil {
		return nil, fmt.Errorf("pages %s: %w", chapterURL, err)
	}

	return ParsePages(doc), nil
}

// ImageURL is never needed: ParsePages already yields final image URLs.
func (s *Source) ImageURL(_ context.Context, _ providers.Page) (string, error) {
	return "", providers.ErrUnsupported
}
