// Package htmldoc renders documents to HTML and reads simple HTML back into
// documents.
//
// Rendering goes through the generic renderer in package render with builders
// that produce *html.Node values from golang.org/x/net/html:
//
//	nodes := htmldoc.Render(doc, htmldoc.DefaultOptions())
//	s, err := htmldoc.RenderString(doc, htmldoc.DefaultOptions())
//
// External links open in a new tab with rel="noopener noreferrer", blocks
// whose text is right-to-left get dir="rtl", and the output can optionally be
// passed through a bluemonday UGC policy.
//
// [Parse] goes the other way for descriptions that were stored as HTML.
package htmldoc

// Options controls HTML rendering
type Options struct {
	// Sanitize runs the rendered markup through a bluemonday UGC policy
	Sanitize bool

	// ExternalLinksNewTab adds target="_blank" and rel="noopener noreferrer"
	// to links whose destination starts with http
	ExternalLinksNewTab bool

	// DetectDirection adds dir="rtl" to blocks with right-to-left text
	DetectDirection bool

	// Classes maps element names (h1, p, ul, li, a, ...) to a class attribute
	Classes map[string]string

	// Separator is written between top-level blocks by RenderString
	Separator string
}

// DefaultOptions returns the options used by the site
func DefaultOptions() Options {
	return Options{
		ExternalLinksNewTab: true,
		DetectDirection:     true,
		Separator:           "\n",
	}
}

// elementType identifies a block element found while parsing
type elementType int

const (
	elementParagraph elementType = iota
	elementHeading
	elementBlockquote
)
