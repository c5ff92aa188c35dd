package inline

import (
	"regexp"
	"strings"

	"github.com/tsawler/richtext/model"
)

// Token is a span together with its byte range [Start, End) in the source line
type Token struct {
	Span  model.Span
	Start int
	End   int
}

// TokenizerConfig holds configuration for inline tokenizing
type TokenizerConfig struct {
	// URLPattern matches links. Default: scheme://... up to whitespace.
	// Matches whose scheme is not http or https stay plain text.
	URLPattern *regexp.Regexp

	// EmailPattern matches bare email addresses
	EmailPattern *regexp.Regexp

	// EmphasisPattern is an alternation with exactly three groups, in
	// precedence order: bold, italic, code
	EmphasisPattern *regexp.Regexp

	// TrimURLPunctuation leaves trailing sentence punctuation and unbalanced
	// closing parentheses out of URL matches
	// Default: true
	TrimURLPunctuation bool
}

// DefaultTokenizerConfig returns sensible default configuration
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{
		URLPattern:         regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.\-]*://\S+`),
		EmailPattern:       regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
		EmphasisPattern:    regexp.MustCompile("\\*\\*([^*\n]+?)\\*\\*|\\*([^*\n]+?)\\*|`([^`\n]+?)`"),
		TrimURLPunctuation: true,
	}
}

// Tokenizer splits lines into spans. It holds no mutable state and is safe
// for concurrent use.
type Tokenizer struct {
	config TokenizerConfig
}

// NewTokenizer creates a new tokenizer with default configuration
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		config: DefaultTokenizerConfig(),
	}
}

// NewTokenizerWithConfig creates a tokenizer with custom configuration.
// Nil patterns are replaced by the defaults.
func NewTokenizerWithConfig(config TokenizerConfig) *Tokenizer {
	def := DefaultTokenizerConfig()
	if config.URLPattern == nil {
		config.URLPattern = def.URLPattern
	}
	if config.EmailPattern == nil {
		config.EmailPattern = def.EmailPattern
	}
	if config.EmphasisPattern == nil || config.EmphasisPattern.NumSubexp() != 3 {
		config.EmphasisPattern = def.EmphasisPattern
	}
	return &Tokenizer{
		config: config,
	}
}

var defaultTokenizer = NewTokenizer()

// Tokenize splits line into spans with the default tokenizer
func Tokenize(line string) []model.Span {
	return defaultTokenizer.Tokenize(line)
}

// Tokenize splits line into an ordered sequence of spans. A line without any
// match yields a single plain span equal to the input; an empty line yields
// no spans.
func (t *Tokenizer) Tokenize(line string) []model.Span {
	tokens := t.Scan(line)
	if len(tokens) == 0 {
		return nil
	}
	spans := make([]model.Span, len(tokens))
	for i, tok := range tokens {
		spans[i] = tok.Span
	}
	return spans
}

// Scan is like Tokenize but also reports where each span came from
func (t *Tokenizer) Scan(line string) []Token {
	if line == "" {
		return nil
	}
	var tokens []Token
	t.scanURLs(line, 0, &tokens)
	return tokens
}

// scanURLs extracts links from s (which starts at offset in the line) and
// hands the gaps between them to the email pass
func (t *Tokenizer) scanURLs(s string, offset int, out *[]Token) {
	pos := 0
	for _, m := range t.config.URLPattern.FindAllStringIndex(s, -1) {
		start, end := m[0], m[1]
		if t.config.TrimURLPunctuation {
			end = start + trimURL(s[start:end])
		}
		url := s[start:end]
		if strings.HasSuffix(url, "://") || !model.IsSafeHref(url) {
			continue // left to the email and emphasis passes
		}
		t.scanEmails(s[pos:start], offset+pos, out)
		*out = append(*out, Token{
			Span:  model.Link(url, url),
			Start: offset + start,
			End:   offset + end,
		})
		pos = end
	}
	t.scanEmails(s[pos:], offset+pos, out)
}

// scanEmails extracts email addresses and hands the gaps to the emphasis pass
func (t *Tokenizer) scanEmails(s string, offset int, out *[]Token) {
	if s == "" {
		return
	}
	pos := 0
	for _, m := range t.config.EmailPattern.FindAllStringIndex(s, -1) {
		t.scanEmphasis(s[pos:m[0]], offset+pos, out)
		addr := s[m[0]:m[1]]
		*out = append(*out, Token{
			Span:  model.Mailto(addr, addr),
			Start: offset + m[0],
			End:   offset + m[1],
		})
		pos = m[1]
	}
	t.scanEmphasis(s[pos:], offset+pos, out)
}

// scanEmphasis handles **bold**, *italic* and `code`, leftmost match first
func (t *Tokenizer) scanEmphasis(s string, offset int, out *[]Token) {
	if s == "" {
		return
	}
	pos := 0
	for _, m := range t.config.EmphasisPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > pos {
			*out = append(*out, plainToken(s[pos:m[0]], offset+pos))
		}
		var span model.Span
		switch {
		case m[2] >= 0:
			span = model.Bold(s[m[2]:m[3]])
		case m[4] >= 0:
			span = model.Italic(s[m[4]:m[5]])
		default:
			span = model.Code(s[m[6]:m[7]])
		}
		*out = append(*out, Token{Span: span, Start: offset + m[0], End: offset + m[1]})
		pos = m[1]
	}
	if pos < len(s) {
		*out = append(*out, plainToken(s[pos:], offset+pos))
	}
}

func plainToken(s string, offset int) Token {
	return Token{Span: model.Plain(s), Start: offset, End: offset + len(s)}
}

// trimURL returns the length of url without trailing sentence punctuation
// or closing emphasis delimiters. A closing parenthesis is kept when the URL
// itself opened one.
func trimURL(url string) int {
	end := len(url)
	for end > 0 {
		c := url[end-1]
		switch {
		case strings.IndexByte(".,;:!?'\"*`", c) >= 0:
			end--
		case c == ')' && strings.Count(url[:end], "(") < strings.Count(url[:end], ")"):
			end--
		default:
			return end
		}
	}
	return end
}
