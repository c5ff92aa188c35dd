package richtext

import (
	"maps"

	"github.com/tsawler/richtext/htmldoc"
	"github.com/tsawler/richtext/layout"
	"github.com/tsawler/richtext/mddoc"
	"github.com/tsawler/richtext/summary"
	"github.com/tsawler/richtext/termdoc"
)

// contentOptions holds configuration for building and rendering
type contentOptions struct {
	// Summaries
	wordLimit int
	ellipsis  string

	// Classification of plain strings
	heading layout.HeadingConfig

	// Targets
	html     htmldoc.Options
	markdown mddoc.Options
	terminal termdoc.Styles
}

// defaultOptions returns the default options
func defaultOptions() contentOptions {
	return contentOptions{
		wordLimit: summary.DefaultWordCount,
		ellipsis:  summary.DefaultEllipsis,
		heading:   layout.DefaultHeadingConfig(),
		html:      htmldoc.DefaultOptions(),
		markdown:  mddoc.DefaultOptions(),
		terminal:  termdoc.DefaultStyles(),
	}
}

// clone creates a deep copy of contentOptions
func (o contentOptions) clone() contentOptions {
	newOpts := o
	if o.html.Classes != nil {
		newOpts.html.Classes = maps.Clone(o.html.Classes)
	}
	return newOpts
}
