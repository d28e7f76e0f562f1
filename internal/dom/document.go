// Package dom is a small typed view over goquery documents. Selector
// strings are the only site-specific input; attribute reads can resolve
// relative URLs against the page location.
package dom

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Document struct {
	doc  *goquery.Document
	loc  string
	base *url.URL
}

// Parse reads an HTML document fetched from location. A <base href> in the
// document takes precedence over location for absolute resolution.
func Parse(r io.Reader, location string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	return newDocument(doc, location), nil
}

func ParseString(html, location string) (*Document, error) {
	return Parse(strings.NewReader(html), location)
}

func newDocument(doc *goquery.Document, location string) *Document {
	d := &Document{doc: doc, loc: location}

	base, err := url.Parse(location)
	if err != nil || location == "" {
		base = nil
	}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok && base != nil {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			base = base.ResolveReference(ref)
		}
	}
	d.base = base

	return d
}

// Location is the URL the document was fetched from.
func (d *Document) Location() string {
	return d.loc
}

func (d *Document) Select(selector string) Elements {
	return Elements{sel: d.doc.Find(selector), base: d.base}
}

// Elements is an ordered set of matched nodes.
type Elements struct {
	sel  *goquery.Selection
	base *url.URL
}

func (e Elements) Len() int {
	if e.sel == nil {
		return 0
	}
	return e.sel.Length()
}

func (e Elements) Empty() bool {
	return e.Len() == 0
}

func (e Elements) All() []Element {
	out := make([]Element, 0, e.Len())
	if e.sel == nil {
		return out
	}

	e.sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, Element{sel: s, base: e.base})
	})

	return out
}

func (e Elements) First() (Element, bool) {
	if e.Empty() {
		return Element{}, false
	}
	return Element{sel: e.sel.First(), base: e.base}, true
}

func (e Elements) Select(selector string) Elements {
	if e.sel == nil {
		return e
	}
	return Elements{sel: e.sel.Find(selector), base: e.base}
}

// Text joins the normalised text of every matched node with single spaces.
func (e Elements) Text() string {
	parts := make([]string, 0, e.Len())
	for _, el := range e.All() {
		if t := el.Text(); t != "" {
			parts = append(parts, t)
		}
	}

	return strings.Join(parts, " ")
}

// Attr reads name from the first matched node that carries it.
func (e Elements) Attr(name string, abs bool) string {
	for _, el := range e.All() {
		if el.HasAttr(name) {
			return el.Attr(name, abs)
		}
	}

	return ""
}

func (e Elements) HasAttr(name string) bool {
	for _, el := range e.All() {
		if el.HasAttr(name) {
			return true
		}
	}

	return false
}

type Element struct {
	sel  *goquery.Selection
	base *url.URL
}

func (e Element) Select(selector string) Elements {
	if e.sel == nil {
		return Elements{}
	}
	return Elements{sel: e.sel.Find(selector), base: e.base}
}

func (e Element) Text() string {
	if e.sel == nil {
		return ""
	}
	return strings.Join(strings.Fields(e.sel.Text()), " ")
}

func (e Element) HasAttr(name string) bool {
	if e.sel == nil {
		return false
	}
	_, ok := e.sel.Attr(name)
	return ok
}

// Attr returns the attribute value, or "" when absent. With abs set the
// value is resolved against the document base; a value that cannot be
// resolved yields "".
func (e Element) Attr(name string, abs bool) string {
	if e.sel == nil {
		return ""
	}

	v, ok := e.sel.Attr(name)
	if !ok {
		return ""
	}
	if !abs {
		return v
	}

	return resolve(e.base, v)
}

func resolve(base *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)

	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	if base == nil {
		return ""
	}

	return base.ResolveReference(ref).String()
}
