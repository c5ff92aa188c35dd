package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		words   int
		first   bool
		excerpt bool
	)

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Print the first words or the first paragraph of a description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if first && excerpt {
				return errors.New("--first and --excerpt are mutually exclusive")
			}
			if !cmd.Flags().Changed("words") {
				words = a.cfg.Summary.Words
			}

			b := a.cfg.Builder()
			src, err := a.load(cmd, args, b)
			if err != nil {
				return err
			}

			s := a.cfg.Summarizer(b)
			var out string
			switch {
			case first:
				out = s.FirstParagraphText(src.raw)
			case excerpt:
				out = s.Excerpt(src.raw, words)
			default:
				out = s.TruncateWords(src.raw, words)
			}
			return writeLine(cmd.OutOrStdout(), out)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&words, "words", "w", 30, "Maximum number of words")
	flags.BoolVar(&first, "first", false, "Print the first paragraph instead")
	flags.BoolVar(&excerpt, "excerpt", false, "Print the first paragraph, falling back to the first words")
	return cmd
}
