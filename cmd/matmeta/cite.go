package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jasonthiese/commonmetadata/internal/export"
)

var (
	citeBibtex bool
	citeAppend string
)

func init() {
	citeCmd.Flags().BoolVar(&citeBibtex, "bibtex", false, "Output BibTeX entries instead of formatted strings")
	citeCmd.Flags().StringVar(&citeAppend, "append", "", "Append new BibTeX entries to this .bib file (skips existing DOIs/keys)")
	addInputFlags(citeCmd)
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite <record-file>",
	Short: "Format the citations of a record",
	Long: `Format each citation of a record as a single bibliographic string,
or as BibTeX entries.

Examples:
  matmeta cite dataset.yaml
  matmeta cite --human dataset.yaml
  matmeta cite --bibtex dataset.yaml > refs.bib
  matmeta cite --append refs.bib dataset.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	rec := mustReadRecord(args[0])

	if citeAppend != "" {
		bib, err := export.LoadBibliography(citeAppend)
		if err != nil {
			exitWithError(ExitError, "reading %s: %v", citeAppend, err)
		}
		added, err := bib.Append(rec.Citations)
		if err != nil {
			exitWithError(ExitError, "appending to %s: %v", citeAppend, err)
		}
		if humanOutput {
			outputHuman("Added %d entries to %s\n", added, citeAppend)
			return nil
		}
		return outputJSON(map[string]any{"added": added, "path": citeAppend})
	}

	if citeBibtex {
		// BibTeX is always text output, never JSON
		fmt.Print(export.ToBibTeXList(rec.Citations))
		return nil
	}

	citations := export.Citations(rec.Citations)
	if humanOutput {
		for i, c := range citations {
			outputHuman("%d. %s\n", i+1, c)
		}
		return nil
	}
	return outputJSON(citations)
}
