package richtext

import (
	"strings"

	"github.com/tsawler/richtext/builder"
)

// Warning is a non-fatal issue found while building a document, such as a
// block tree node with an unknown style that was rendered as a paragraph.
type Warning struct {
	// Path locates the node in a block tree, e.g. "[2].children[0]".
	// Empty for plain strings.
	Path string

	// Message describes what was degraded or dropped
	Message string
}

// String formats the warning as "path: message"
func (w Warning) String() string {
	return builder.Warning{Path: w.Path, Message: w.Message}.String()
}

// FormatWarnings joins warnings into a single line
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}

func fromBuilderWarnings(ws []builder.Warning) []Warning {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Warning, 0, len(ws))
	for _, w := range ws {
		out = append(out, Warning{Path: w.Path, Message: w.Message})
	}
	return out
}
