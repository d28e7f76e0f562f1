package util

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientInjectsHeaders(t *testing.T) {
	var gotUA, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
	}))
	defer srv.Close()

	cookieFile := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(cookieFile, []byte("\n  cf_clearance=abc \nignored=1\n"), 0o644))

	c, err := NewHTTPClient(HTTPClientOptions{
		Timeout:    5 * time.Second,
		UserAgent:  "teamx-test",
		Cookie:     "session=1",
		CookieFile: cookieFile,
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := Do(c, req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "teamx-test", gotUA)
	assert.Equal(t, "session=1; cf_clearance=abc", gotCookie)
}

func TestDoReportsStatusOnce(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewHTTPClient(HTTPClientOptions{Timeout: 5 * time.Second})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/series?page=1", nil)
	require.NoError(t, err)

	_, err = Do(c, req)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, 1, calls)
}

func TestJoinCookies(t *testing.T) {
	assert.Equal(t, "a=1", joinCookies(" a=1 ", ""))
	assert.Equal(t, "a=1", joinCookies("a=1", filepath.Join(t.TempDir(), "missing")))
	assert.Equal(t, "", joinCookies("", ""))
}

func TestPickUserAgent(t *testing.T) {
	assert.Equal(t, "custom", PickUserAgent("custom"))
	assert.Contains(t, PickUserAgent(""), "Mozilla/5.0")
}
