// Package model provides the intermediate representation (IR) for normalized
// rich text.
//
// Every input path of the engine, whether an informal plain string or a
// pre-typed block tree, produces these types. Renderers and summarizers only
// ever consume a [Document], which makes this package the contract between
// the parsing and the presentation halves of the library.
//
// # Raw Values
//
// A [RawValue] is what the content source hands over for a description field:
//
//   - [PlainString] - a string with informal conventions (paragraphs, list
//     markers, raw links, **bold** and friends)
//   - [BlockTree] - an ordered list of [TreeNode] values in Portable Text shape
//
// A nil RawValue, an empty or whitespace-only PlainString and an empty
// BlockTree are all treated as "no content".
//
// # Blocks
//
// A [Document] is an ordered list of [Block] values. The concrete types are:
//
//   - [Heading] - headings (levels 1-6)
//   - [Paragraph] - text paragraphs, line breaks kept as [LineBreak] spans
//   - [BulletList] and [NumberedList] - lists of [ListItem]
//   - [Blockquote] - quoted text
//
// # Spans
//
// Inline content is a sequence of [Span] values. A span is either plain text
// or text carrying exactly one [Mark]: bold, italic, code, link or mailto.
// Spans are small values and are never mutated after construction.
package model
