package team1x1

import (
	"context"
	"fmt"
	"time"

	"github.com/brogergvhs/teamx/internal/dom"
	"github.com/brogergvhs/teamx/internal/providers"
	"github.com/brogergvhs/teamx/internal/util"
)

const (
	chapterListSelector = "div.ts-chl-collapsible-content ul >li"
	chapterNameSelector = "div.epl-num+div.epl-num"
	chapterDateSelector = "div.epl-date"

	// The page also carries an unrelated next link with an id.
	chapterNextSelector = nextPageSelector + ":not([id])"
)

// ParseChapterPage reads the chapters of a single chapter-list document.
func ParseChapterPage(doc *dom.Document, loc *time.Location) []providers.Chapter {
	items := doc.Select(chapterListSelector).All()
	out := make([]providers.Chapter, 0, len(items))

	for _, li := range items {
		out = append(out, providers.Chapter{
			URL:        util.StripDomain(li.Select("a").Attr("href", true)),
			Name:       li.Select(chapterNameSelector).Text(),
			DateUpload: ParseChapterDate(li.Select(chapterDateSelector).Text(), loc),
		})
	}

	return out
}

// NextChapterPage returns the absolute URL of the following chapter-list
// document, if any.
func NextChapterPage(doc *dom.Document) (string, bool) {
	a, ok := doc.Select(chapterNextSelector).First()
	if !ok {
		return "", false
	}

	href := a.Attr("href", true)
	return href, href != ""
}

// CollectChapters merges the chapters of doc and of every chapter-list
// document reachable through next links, in the order they are found.
// Documents are fetched one at a time. Following stops when there is no
// next link, when a link points at an already merged document, or when
// the page cap is reached.
func (s *Source) CollectChapters(ctx context.Context, doc *dom.Document) ([]providers.Chapter, error) {
	var chapters []providers.Chapter
	visited := map[string]bool{}
	pageURL := doc.Location()

	for n := 1; ; n++ {
		visited[pageURL] = true

		batch := ParseChapterPage(doc, s.loc)
		chapters = append(chapters, batch...)
		s.debugf("chapter page %d (%s): %d chapters\n", n, pageURL, len(batch))
		if s.onPage != nil {
			s.onPage(n, pageURL)
		}

		next, ok := NextChapterPage(doc)
		if !ok {
			return chapters, nil
		}
		if visited[next] {
			s.debugf("chapter page %s already merged, stopping\n", next)
			return chapters, nil
		}
		if s.maxPages > 0 && n >= s.maxPages {
			s.debugf("chapter page cap %d reached, not following %s\n", s.maxPages, next)
			return chapters, nil
		}

		nextDoc, err := s.fetchDocument(ctx, providers.GET(next, s.header))
		if err != nil {
			return nil, fmt.Errorf("chapter page %d: %w", n+1, err)
		}

		doc = nextDoc
		pageURL = next
	}
}

func (s *Source) ChapterListRequest(mangaURL string) providers.Request {
	return providers.GET(s.siteURL(mangaURL), s.header)
}

func (s *Source) Chapters(ctx context.Context, mangaURL string) ([]providers.Chapter, error) {
	doc, err := s.fetchDocument(ctx, s.ChapterListRequest(mangaURL))
	if err != nil {
		return nil, fmt.Errorf("chapters %s: %w", mangaURL, err)
	}

	return s.CollectChapters(ctx, doc)
}
