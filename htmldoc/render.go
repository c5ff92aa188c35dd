package htmldoc

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/render"
)

// Render renders doc to one HTML node per block
func Render(doc model.Document, opts Options) []*html.Node {
	return render.Render(doc, Builders(opts))
}

// RenderString renders doc to markup. Blocks are separated by
// opts.Separator. With opts.Sanitize the result is passed through the
// sanitizing policy.
func RenderString(doc model.Document, opts Options) (string, error) {
	var sb strings.Builder
	for i, n := range Render(doc, opts) {
		if i > 0 {
			sb.WriteString(opts.Separator)
		}
		if err := html.Render(&sb, n); err != nil {
			return "", fmt.Errorf("rendering block %d: %w", i, err)
		}
	}

	if opts.Sanitize {
		return Sanitize(sb.String()), nil
	}
	return sb.String(), nil
}

// Sanitize cleans markup with a UGC policy that also keeps the attributes
// this package emits
func Sanitize(markup string) string {
	return policy().Sanitize(markup)
}

var policy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("dir").Matching(regexp.MustCompile(`^(ltr|rtl|auto)$`)).Globally()
	p.AllowAttrs("data-level").Matching(bluemonday.Integer).OnElements("li")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^[a-z ]+$`)).OnElements("a")
	return p
})
