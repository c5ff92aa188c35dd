// Command richtext normalizes CMS description fields and renders them as
// HTML, Markdown, terminal text or Portable Text, or summarizes them.
//
// Usage:
//
//	richtext render [file] --format html|markdown|terminal|text|portabletext
//	richtext summary [file] --words 30 [--first | --excerpt]
//	richtext inspect [file] [--classify]
//
// Input is read from the file argument or stdin. Its format (plain text,
// Portable Text JSON or HTML) is detected unless --input is given.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
