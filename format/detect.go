// Package format provides input format detection for the richtext tools.
package format

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized or empty input.
	Unknown Format = iota
	// Text indicates a plain string with informal markup.
	Text
	// PortableText indicates a JSON block tree.
	PortableText
	// HTML indicates an HTML fragment or document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case PortableText:
		return "PortableText"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case PortableText:
		return ".json"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Parse returns the format named by s, case-insensitively. Both format
// names and extensions are accepted.
func Parse(s string) Format {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "text", "txt", "md", "markdown", "plain":
		return Text
	case "portabletext", "portable-text", "pt", "json":
		return PortableText
	case "html", "htm":
		return HTML
	default:
		return Unknown
	}
}

// Detect determines the input format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", ".markdown":
		return Text
	case ".json":
		return PortableText
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFromContent inspects data to determine its format. A JSON array
// or object is a block tree; content starting with a tag is HTML; any other
// non-blank content is plain text.
func DetectFromContent(data []byte) Format {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(data) == 0 {
		return Unknown
	}

	if (data[0] == '[' || data[0] == '{') && json.Valid(data) {
		return PortableText
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Text
}

// DetectFromReader reads all of r and detects its format, returning the
// content read so the caller can decode it.
func DetectFromReader(r io.Reader) (Format, []byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Unknown, nil, err
	}
	return DetectFromContent(data), data, nil
}

// DetectFile combines content and filename detection. The filename wins
// when it names a format and the content is not blank.
func DetectFile(filename string, data []byte) Format {
	content := DetectFromContent(data)
	if content == Unknown {
		return Unknown
	}
	if byName := Detect(filename); byName != Unknown {
		return byName
	}
	return content
}

// detectHTMLMagic checks if data (already left-trimmed) looks like HTML.
func detectHTMLMagic(data []byte) bool {
	if data[0] != '<' || len(data) < 2 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<!--") {
		return true
	}

	// A fragment must open with an element name and close its tag
	r, _ := utf8.DecodeRune(data[1:])
	if !unicode.IsLetter(r) {
		return false
	}
	return bytes.IndexByte(data, '>') > 0
}
