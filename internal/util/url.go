package util

import (
	"net/url"
	"strings"
)

// StripDomain drops scheme and host from raw, keeping path, query and
// fragment. Input that does not parse as a URL is returned unchanged.
func StripDomain(raw string) string {
	u, err := url.Parse(strings.ReplaceAll(strings.TrimSpace(raw), " ", "%20"))
	if err != nil {
		return raw
	}

	out := u.EscapedPath()
	if u.RawQuery != "" || u.ForceQuery {
		out += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		out += "#" + u.EscapedFragment()
	}

	return out
}

// JoinURL reattaches a site-relative URL to base. Absolute input is
// returned as is.
func JoinURL(base, rel string) string {
	if u, err := url.Parse(rel); err == nil && u.IsAbs() {
		return rel
	}
	if rel == "" {
		return strings.TrimRight(base, "/")
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}

	return strings.TrimRight(base, "/") + rel
}
