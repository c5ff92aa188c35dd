package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/richtext/builder"
	"github.com/tsawler/richtext/format"
	"github.com/tsawler/richtext/htmldoc"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/portabletext"
)

// source is one loaded and built input
type source struct {
	name     string
	format   format.Format
	data     []byte
	raw      model.RawValue
	doc      model.Document
	warnings []builder.Warning
}

// load reads the input named by args (stdin when absent or "-"), decodes it
// and builds the document. Builder warnings are logged.
func (a *app) load(cmd *cobra.Command, args []string, b *builder.Builder) (*source, error) {
	src := &source{name: "stdin"}

	var err error
	if len(args) > 0 && args[0] != "-" {
		src.name = args[0]
		src.data, err = os.ReadFile(args[0])
	} else {
		src.data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if a.inputFormat == "" || a.inputFormat == "auto" {
		src.format = format.DetectFile(src.name, src.data)
	} else if src.format = format.Parse(a.inputFormat); src.format == format.Unknown {
		return nil, fmt.Errorf("unknown input format %q", a.inputFormat)
	}

	if src.raw, err = decode(src.format, src.data); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", src.name, err)
	}

	src.doc, src.warnings = b.BuildWithWarnings(src.raw)
	for _, w := range src.warnings {
		a.logger.Warn("degraded content", "input", src.name, "path", w.Path, "message", w.Message)
	}
	a.logger.Debug("input loaded",
		"input", src.name,
		"format", src.format,
		"bytes", len(src.data),
		"blocks", len(src.doc),
	)
	return src, nil
}

// decode turns input bytes into a raw value. HTML is parsed and carried as a
// block tree so every command shares one build path.
func decode(f format.Format, data []byte) (model.RawValue, error) {
	switch f {
	case format.Text:
		return model.PlainString(data), nil
	case format.PortableText:
		trimmed := bytes.TrimSpace(data)
		if bytes.HasPrefix(trimmed, []byte("[")) {
			return portabletext.DecodeBytes(trimmed)
		}
		return portabletext.Value(json.RawMessage(trimmed)), nil
	case format.HTML:
		doc, err := htmldoc.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return portabletext.FromDocument(doc), nil
	default:
		return nil, nil
	}
}
