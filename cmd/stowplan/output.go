package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/yudhap/stowplan/internal/importer"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
)

// printImportMessages writes importer warnings and skipped-row errors to
// stderr so they never mix with parseable stdout output.
func printImportMessages(res importer.ImportResult) {
	for _, w := range res.Warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, e := range res.Errors {
		errColor.Fprintf(os.Stderr, "import: %s\n", e)
	}
}
