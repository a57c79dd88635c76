package mock

import "github.com/fwojciec/dealscout"

var _ dealscout.Parser = (*Parser)(nil)

// Parser is a mock implementation of dealscout.Parser.
type Parser struct {
	ParseFn func(html string) (dealscout.Document, error)
}

func (p *Parser) Parse(html string) (dealscout.Document, error) {
	return p.ParseFn(html)
}

var _ dealscout.Document = (*Document)(nil)

// Document is a mock implementation of dealscout.Document.
type Document struct {
	FindFn    func(tag, class string) dealscout.Element
	FindAllFn func(tag, class string) []dealscout.Element
	AnchorsFn func() []dealscout.Element
}

func (d *Document) Find(tag, class string) dealscout.Element {
	return d.FindFn(tag, class)
}

func (d *Document) FindAll(tag, class string) []dealscout.Element {
	return d.FindAllFn(tag, class)
}

func (d *Document) Anchors() []dealscout.Element {
	return d.AnchorsFn()
}
