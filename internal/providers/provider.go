package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrUnsupported is returned by operations a source never needs.
var ErrUnsupported = errors.New("operation not supported by this source")

type Status int

// Values match the host catalog model.
const (
	StatusUnknown   Status = 0
	StatusOngoing   Status = 1
	StatusCompleted Status = 2
	StatusOnHiatus  Status = 6
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCompleted:
		return "completed"
	case StatusOnHiatus:
		return "on_hiatus"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CatalogEntry is one title on a listing page. URL is site-relative.
type CatalogEntry struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type MangasPage struct {
	Entries     []CatalogEntry `json:"entries"`
	HasNextPage bool           `json:"has_next_page"`
}

type MangaDetails struct {
	Title        string   `json:"title"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Author       string   `json:"author"`
	Artist       string   `json:"artist"`
	Status       Status   `json:"status"`
	Description  string   `json:"description"`
	Genres       []string `json:"genres"`
}

// Genre returns the genres in the host's comma separated form.
func (d MangaDetails) Genre() string {
	return strings.Join(d.Genres, ", ")
}

// Chapter is one entry of a chapter list. DateUpload is epoch milliseconds,
// 0 when the site date could not be read.
type Chapter struct {
	URL        string `json:"url"`
	Name       string `json:"name"`
	DateUpload int64  `json:"date_upload"`
}

type Page struct {
	Index    int    `json:"index"`
	ImageURL string `json:"image_url"`
}

// Request describes a single HTTP call a source wants performed.
type Request struct {
	Method string
	URL    string
	Header http.Header
}

func GET(url string, header http.Header) Request {
	return Request{Method: http.MethodGet, URL: url, Header: header.Clone()}
}

func (r Request) NewHTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		return nil, err
	}

	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	return req, nil
}

type Source interface {
	Name() string
	Lang() string
	BaseURL() string

	PopularManga(ctx context.Context, page int) (*MangasPage, error)
	LatestUpdates(ctx context.Context, page int) (*MangasPage, error)
	Search(ctx context.Context, query string) (*MangasPage, error)

	Details(ctx context.Context, mangaURL string) (*MangaDetails, error)
	Chapters(ctx context.Context, mangaURL string) ([]Chapter, error)
	Pages(ctx context.Context, chapterURL string) ([]Page, error)
	ImageURL(ctx context.Context, page Page) (string, error)
}
