package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/richtext/htmldoc"
	"github.com/tsawler/richtext/internal/config"
	"github.com/tsawler/richtext/mddoc"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/portabletext"
	"github.com/tsawler/richtext/termdoc"
)

type renderOptions struct {
	format   string
	sanitize bool
	plain    bool
	width    int
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a description as HTML, Markdown, terminal text or Portable Text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Render.Format
			}
			if cmd.Flags().Changed("sanitize") {
				a.cfg.Render.Sanitize = opts.sanitize
			}
			if cmd.Flags().Changed("width") {
				a.cfg.Render.Width = opts.width
			}

			src, err := a.load(cmd, args, a.cfg.Builder())
			if err != nil {
				return err
			}

			out, err := renderDocument(src.doc, opts.format, opts.plain, a.cfg)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", config.FormatHTML, "Output format: html, markdown, terminal, text or portabletext")
	flags.BoolVar(&opts.sanitize, "sanitize", false, "Sanitize HTML output")
	flags.BoolVar(&opts.plain, "plain", false, "Disable terminal styling")
	flags.IntVar(&opts.width, "width", 0, "Wrap terminal output at this width")
	return cmd
}

func renderDocument(doc model.Document, f string, plain bool, cfg *config.Config) (string, error) {
	switch f {
	case config.FormatHTML:
		return htmldoc.RenderString(doc, cfg.HTMLOptions())
	case config.FormatMarkdown:
		return mddoc.RenderString(doc, cfg.MarkdownOptions()), nil
	case config.FormatTerminal:
		return termdoc.RenderString(doc, cfg.TerminalStyles(plain)), nil
	case config.FormatText:
		return doc.Text(), nil
	case config.FormatPortable:
		return portabletext.EncodeString(portabletext.FromDocument(doc))
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

// writeLine writes s followed by a newline unless it already ends in one.
// Empty output writes nothing.
func writeLine(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
