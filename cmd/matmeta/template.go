package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jasonthiese/commonmetadata/internal/schema"
)

var templateServices []string

func init() {
	templateCmd.Flags().StringSliceVarP(&templateServices, "service", "s", nil, "Target service (repeatable; default: configured services)")
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Show the common record template",
	Long: `Show every known field of the common record and the fields the
selected services require.

Services: citrine (cit), materials_commons (mc), materials_data_facility (mdf)

Examples:
  matmeta template
  matmeta template --service mdf
  matmeta template -s mc -s mdf --human`,
	Args: cobra.NoArgs,
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	services, err := resolveServices(templateServices)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	tmpl := schema.NewTemplate(services...)
	if !humanOutput {
		return outputJSON(tmpl)
	}

	outputHuman("Required fields (%s):\n", joinServices(services))
	req := schema.RequirementsFor(services...)
	if len(req) == 0 {
		outputHuman("  (none)\n")
	}
	for _, line := range describeLines(req, "  ") {
		outputHuman("%s\n", line)
	}
	outputHuman("\nAll fields:\n")
	for _, line := range describeLines(schema.AllFields(), "  ") {
		outputHuman("%s\n", line)
	}
	outputHuman("\nUsage: %s\n", tmpl.Usage)
	return nil
}

// describeLines renders a schema as an indented field list.
func describeLines(s schema.Schema, indent string) []string {
	var lines []string
	for _, key := range s.Keys() {
		node := s[key]
		switch {
		case node.IsNested():
			lines = append(lines, fmt.Sprintf("%s%s:", indent, key))
			lines = append(lines, describeLines(node.Fields, indent+"  ")...)
		case node.IsList() && node.Elem.IsNested():
			lines = append(lines, fmt.Sprintf("%s%s[]:", indent, key))
			lines = append(lines, describeLines(node.Elem.Fields, indent+"  ")...)
		case node.IsList():
			lines = append(lines, fmt.Sprintf("%s%s: [%s]", indent, key, node.Elem.Type))
		default:
			lines = append(lines, fmt.Sprintf("%s%s: %s", indent, key, node.Type))
		}
	}
	return lines
}

func joinServices(services []schema.Service) string {
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = string(s)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
