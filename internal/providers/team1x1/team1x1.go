// Package team1x1 implements providers.Source for the Arabic manga site
// team1x1 (teamx.fun). Every parser is a pure function of a fetched
// document; the fetching operations build the request, perform one HTTP
// call through the injected client and hand the document to the parser.
package team1x1

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/brogergvhs/teamx/internal/dom"
	"github.com/brogergvhs/teamx/internal/providers"
	"github.com/brogergvhs/teamx/internal/util"
)

const (
	SourceName = "team1x1"
	Lang       = "ar"
	BaseURL    = "https://teamx.fun"
)

type Options struct {
	// BaseURL overrides the site root, e.g. for a mirror.
	BaseURL string
	Header  http.Header

	// MaxChapterPages caps how many chapter-list documents are merged.
	// Zero means no cap.
	MaxChapterPages int

	// Location is used for chapter dates. Nil means time.Local.
	Location *time.Location

	// OnChapterPage is called once per merged chapter-list document.
	OnChapterPage func(n int, pageURL string)

	DebugLogger interface {
		Debugf(string, ...any)
	}
}

type Source struct {
	client   *http.Client
	baseURL  string
	header   http.Header
	maxPages int
	loc      *time.Location
	onPage   func(int, string)
	log      interface{ Debugf(string, ...any) }
}

var _ providers.Source = (*Source)(nil)

func New(c *http.Client, opts Options) *Source {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = BaseURL
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}

	return &Source{
		client:   c,
		baseURL:  base,
		header:   opts.Header.Clone(),
		maxPages: opts.MaxChapterPages,
		loc:      loc,
		onPage:   opts.OnChapterPage,
		log:      opts.DebugLogger,
	}
}

func (s *Source) Name() string    { return SourceName }
func (s *Source) Lang() string    { return Lang }
func (s *Source) BaseURL() string { return s.baseURL }

func (s *Source) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Source) fetchDocument(ctx context.Context, r providers.Request) (*dom.Document, error) {
	req, err := r.NewHTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := util.Do(s.client, req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	location := r.URL
	if resp.Request != nil && resp.Request.URL != nil {
		location = resp.Request.URL.String()
	}

	doc, err := dom.Parse(resp.Body, location)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.URL, err)
	}

	return doc, nil
}

// siteURL turns a stored relative URL back into an absolute one.
func (s *Source) siteURL(u string) string {
	return util.JoinURL(s.baseURL, u)
}
