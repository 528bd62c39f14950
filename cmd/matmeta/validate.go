package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jasonthiese/commonmetadata/internal/importer"
	"github.com/jasonthiese/commonmetadata/internal/payload"
	"github.com/jasonthiese/commonmetadata/internal/schema"
	"github.com/jasonthiese/commonmetadata/internal/validate"
)

var validateServices []string

func init() {
	validateCmd.Flags().StringSliceVarP(&validateServices, "service", "s", nil, "Target service (repeatable; default: configured services)")
	addInputFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <record-file>",
	Short: "Check a record against service requirements",
	Long: `Check a record against the required fields of each selected service.
Every missing field is reported at once, as a dotted path.

A JSON file holding an array of records is checked entry by entry; each
result then carries the 1-based entry number. Entries that cannot be
decoded are reported without a service.

Exits with code 3 if any record does not satisfy every selected service.

Examples:
  matmeta validate dataset.yaml
  matmeta validate --service mdf dataset.json
  matmeta validate --human datasets.json
  cat dataset.json | matmeta validate -s mc -`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	services, err := resolveServices(validateServices)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	entries, decodeErrs, err := readEntries(args[0])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	results, allValid := validateEntries(entries, decodeErrs, services)

	if humanOutput {
		for _, line := range validationLines(results, schema.AllFields()) {
			outputHuman("%s\n", line)
		}
	} else if err := outputJSON(results); err != nil {
		return err
	}

	if !allValid {
		os.Exit(ExitDataError)
	}
	return nil
}

// validateEntries checks every entry against every service. Decode errors
// come first, one result each.
func validateEntries(entries []importer.Entry, decodeErrs []error, services []schema.Service) ([]ValidationResult, bool) {
	results := make([]ValidationResult, 0, len(decodeErrs)+len(entries)*len(services))
	allValid := len(decodeErrs) == 0
	for _, err := range decodeErrs {
		result := ValidationResult{Error: err.Error()}
		var entryErr *importer.EntryError
		if errors.As(err, &entryErr) {
			result.Entry = entryErr.Index
			result.Error = entryErr.Err.Error()
		}
		results = append(results, result)
	}

	for _, e := range entries {
		for _, s := range services {
			result := ValidationResult{Entry: e.Index, Service: string(s), Valid: true}
			if err := payload.Validate(s, e.Record); err != nil {
				allValid = false
				result.Valid = false
				result.Missing = validate.MissingPaths(err)
				result.Error = err.Error()
			}
			results = append(results, result)
		}
	}
	return results, allValid
}

// validationLines renders results for a terminal. Each missing field is
// listed on its own line with its type from fields.
func validationLines(results []ValidationResult, fields schema.Schema) []string {
	var lines []string
	for _, r := range results {
		prefix := ""
		if r.Entry > 0 {
			prefix = fmt.Sprintf("entry %d: ", r.Entry)
		}
		switch {
		case r.Service == "":
			lines = append(lines, fmt.Sprintf("%s%s", prefix, r.Error))
		case r.Valid:
			lines = append(lines, fmt.Sprintf("%s%-24s ok", prefix, r.Service))
		case len(r.Missing) == 0:
			lines = append(lines, fmt.Sprintf("%s%-24s %s", prefix, r.Service, r.Error))
		default:
			lines = append(lines, fmt.Sprintf("%s%-24s missing %d field(s)", prefix, r.Service, len(r.Missing)))
			for _, path := range r.Missing {
				lines = append(lines, fmt.Sprintf("  %-30s %s", path, fieldType(fields, path)))
			}
		}
	}
	return lines
}

// fieldType describes the type of the field at a dotted path, e.g.
// "list of object" for "data_contacts".
func fieldType(fields schema.Schema, path string) string {
	n, ok := fields.Lookup(strings.Split(path, ".")...)
	if !ok {
		return "unknown"
	}
	desc := ""
	for n.IsList() {
		desc += "list of "
		n = n.Elem
	}
	return desc + string(n.Type)
}
