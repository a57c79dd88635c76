package dealscout

// Parser turns raw HTML into a queryable Document.
// Implementations must recover from malformed markup rather than fail.
type Parser interface {
	Parse(html string) (Document, error)
}

// Document is a parsed HTML page.
//
// Lookups take a tag name and a CSS class name. An empty tag matches any
// element and an empty class matches any class.
type Document interface {
	// Find returns the first matching element in document order,
	// or nil if there is none.
	Find(tag, class string) Element

	// FindAll returns all matching elements in document order.
	FindAll(tag, class string) []Element

	// Anchors returns every <a> element with a non-empty href,
	// in document order.
	Anchors() []Element
}

// Element is a single node of a Document.
type Element interface {
	// Text returns the element's inner text with surrounding
	// whitespace trimmed.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Find returns the first matching descendant, or nil.
	Find(tag, class string) Element

	// FindAll returns all matching descendants in document order.
	FindAll(tag, class string) []Element
}
