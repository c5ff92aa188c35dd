// Package text provides the low-level text helpers shared by the parsing,
// rendering and summarizing packages.
//
// # Normalization
//
// [Normalize] converts CRLF and CR line endings to LF and composes the text
// to Unicode NFC, so that "é" typed as e + combining accent and "é" typed as
// one code point classify and truncate identically.
//
// # Words
//
//   - [Words] - whitespace-separated words
//   - [CountWords] - number of words
//   - [IsTitleWord] - whether a word is already Title-Case
//   - [TitleCaseRatio] - share of Title-Case words in a line
//   - [IsUpperText] - upper-case check used by heading detection
//
// # Text Direction
//
// The package supports bidirectional text with the [Direction] type:
//
//   - LTR - left-to-right (Latin, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - direction-neutral characters (numbers, punctuation)
//
// The [DetectDirection] function analyzes text to determine its direction.
package text
