package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsawler/richtext/format"
	"github.com/tsawler/richtext/layout"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/text"
)

type spanView struct {
	Text string `json:"text"`
	Mark string `json:"mark"`
	Href string `json:"href,omitempty"`
}

type itemView struct {
	Level int        `json:"level"`
	Spans []spanView `json:"spans"`
}

type blockView struct {
	Kind  string     `json:"kind"`
	Level int        `json:"level,omitempty"`
	Text  string     `json:"text"`
	Spans []spanView `json:"spans,omitempty"`
	Items []itemView `json:"items,omitempty"`
}

type classificationView struct {
	Index    int      `json:"index"`
	Decision string   `json:"decision"`
	Rules    []string `json:"rules,omitempty"`
	List     string   `json:"list,omitempty"`
	Blocks   int      `json:"blocks"`
	Lines    []string `json:"lines"`
}

type inspectView struct {
	Input           string               `json:"input"`
	Format          string               `json:"format"`
	Words           int                  `json:"words"`
	Stats           model.DocumentStats  `json:"stats"`
	Blocks          []blockView          `json:"blocks"`
	Warnings        []string             `json:"warnings,omitempty"`
	Classifications []classificationView `json:"classifications,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	var classify bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the normalized document as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := a.cfg.Builder()
			src, err := a.load(cmd, args, b)
			if err != nil {
				return err
			}

			view := inspectView{
				Input:  src.name,
				Format: src.format.String(),
				Words:  text.CountWords(src.doc.Text()),
				Stats:  src.doc.Stats(),
				Blocks: blockViews(src.doc),
			}
			for _, w := range src.warnings {
				view.Warnings = append(view.Warnings, w.String())
			}

			if classify {
				if src.format != format.Text {
					return errors.New("--classify needs plain text input")
				}
				result := b.Classifier().Analyze(string(src.data))
				view.Classifications = classificationViews(result.Classifications)
			}

			return writeJSON(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().BoolVar(&classify, "classify", false, "Include the classifier decision for each paragraph")
	return cmd
}

func blockViews(doc model.Document) []blockView {
	views := make([]blockView, 0, len(doc))
	for _, b := range doc {
		v := blockView{
			Kind:  b.Kind().String(),
			Text:  b.Text(),
			Spans: spanViews(model.SpansOf(b)),
		}
		if h, ok := b.(*model.Heading); ok {
			v.Level = h.Level
		}
		for _, item := range model.ItemsOf(b) {
			v.Items = append(v.Items, itemView{Level: item.Level, Spans: spanViews(item.Spans)})
		}
		views = append(views, v)
	}
	return views
}

func spanViews(spans []model.Span) []spanView {
	var views []spanView
	for _, s := range spans {
		views = append(views, spanView{Text: s.Text, Mark: s.Mark.Kind.String(), Href: s.Mark.Href})
	}
	return views
}

func classificationViews(cs []layout.Classification) []classificationView {
	views := make([]classificationView, 0, len(cs))
	for _, c := range cs {
		v := classificationView{
			Index:    c.Index,
			Decision: c.Decision.String(),
			Blocks:   c.BlockCount,
			Lines:    c.Lines,
		}
		for _, r := range c.HeadingRules {
			v.Rules = append(v.Rules, r.String())
		}
		if c.ListType != layout.ListTypeUnknown {
			v.List = c.ListType.String()
		}
		views = append(views, v)
	}
	return views
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
