// Package inline splits one line of informal markup into spans.
//
// The [Tokenizer] recognizes, in order of precedence:
//
//   - URLs (scheme://... up to whitespace) as link spans
//   - email addresses as mailto spans
//   - **bold**, *italic* and `code` markers
//
// Each pass only looks at text the previous passes left untouched, so a
// substring is never claimed twice: the asterisks inside a URL stay part of
// the link. [Tokenizer.Scan] also reports the byte range of every span in
// the source line, which makes the non-overlap guarantee testable.
//
// All patterns are RE2 regular expressions, so tokenizing is linear in the
// length of the line.
//
//	spans := inline.Tokenize("Visit https://example.com or mail me@example.com.")
package inline
