package euronext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is an element of a parsed page
type Node interface {
	// Text returns the text content of the element and its descendants
	Text() string
	// InnerHTML returns the raw markup inside the element
	InnerHTML() string
}

// Document is any markup tree supporting lookup by id and by tag name.
// Lookups never fail on malformed markup, they just find nothing.
type Document interface {
	ByID(id string) (Node, bool)
	ByTag(tag string) []Node
}

// ParseDocument builds a goquery-backed Document from raw HTML
func ParseDocument(html string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &htmlDocument{doc: doc}, nil
}

type htmlDocument struct {
	doc *goquery.Document
}

func (d *htmlDocument) ByID(id string) (Node, bool) {
	sel := d.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return htmlNode{sel: sel}, true
}

func (d *htmlDocument) ByTag(tag string) []Node {
	sel := d.doc.Find(tag)
	nodes := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, htmlNode{sel: s})
	})
	return nodes
}

type htmlNode struct {
	sel *goquery.Selection
}

func (n htmlNode) Text() string {
	return n.sel.Text()
}

func (n htmlNode) InnerHTML() string {
	html, err := n.sel.Html()
	if err != nil {
		return ""
	}
	return html
}
