// Package goquery implements dealscout.Parser on top of goquery.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dealscout"
	"golang.org/x/net/html"
)

// Ensure Parser implements dealscout.Parser at compile time.
var _ dealscout.Parser = (*Parser)(nil)

// Parser parses HTML with the HTML5 tree-construction algorithm, which
// recovers from malformed markup the way browsers do.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML into a Document.
func (p *Parser) Parse(raw string) (dealscout.Document, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

var _ dealscout.Document = (*Document)(nil)

// Document wraps a goquery.Document.
type Document struct {
	doc *goquery.Document
}

// Find returns the first element matching tag and class, or nil.
func (d *Document) Find(tag, class string) dealscout.Element {
	return first(d.doc.Selection, tag, class)
}

// FindAll returns all elements matching tag and class.
func (d *Document) FindAll(tag, class string) []dealscout.Element {
	return all(d.doc.Selection, tag, class)
}

// Anchors returns every anchor with a non-empty href in document order.
func (d *Document) Anchors() []dealscout.Element {
	var anchors []dealscout.Element
	d.doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, _ := sel.Attr("href"); href != "" {
			anchors = append(anchors, &Element{sel: sel})
		}
	})
	return anchors
}

var _ dealscout.Element = (*Element)(nil)

// Element wraps a single-node goquery.Selection.
type Element struct {
	sel *goquery.Selection
}

// Text returns the trimmed inner text.
func (e *Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// Attr returns the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Find returns the first descendant matching tag and class, or nil.
func (e *Element) Find(tag, class string) dealscout.Element {
	return first(e.sel, tag, class)
}

// FindAll returns all descendants matching tag and class.
func (e *Element) FindAll(tag, class string) []dealscout.Element {
	return all(e.sel, tag, class)
}

// match selects descendants of sel by tag, then keeps those carrying class.
// Classes are compared as whole tokens of the class attribute, so class
// names are never interpreted as CSS.
func match(sel *goquery.Selection, tag, class string) *goquery.Selection {
	if tag == "" {
		tag = "*"
	}
	found := sel.Find(tag)
	if class == "" {
		return found
	}
	return found.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	})
}

func first(sel *goquery.Selection, tag, class string) dealscout.Element {
	found := match(sel, tag, class)
	if found.Length() == 0 {
		return nil
	}
	return &Element{sel: found.First()}
}

func all(sel *goquery.Selection, tag, class string) []dealscout.Element {
	var elems []dealscout.Element
	match(sel, tag, class).Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, &Element{sel: s})
	})
	return elems
}
