package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jasonthiese/commonmetadata/internal/payload"
	"github.com/jasonthiese/commonmetadata/internal/schema"
	"github.com/jasonthiese/commonmetadata/internal/validate"
)

var projectService string

func init() {
	projectCmd.Flags().StringVarP(&projectService, "service", "s", "", "Target service: citrine, materials_commons, materials_data_facility (or cit, mc, mdf)")
	_ = projectCmd.MarkFlagRequired("service")
	addInputFlags(projectCmd)
	rootCmd.AddCommand(projectCmd)
}

var projectCmd = &cobra.Command{
	Use:   "project <record-file>",
	Short: "Build a service payload from a record",
	Long: `Build the metadata payload of one publication service from a common
record and print it as JSON. The payload is what the service's ingest API
expects; submitting it is left to the caller.

Examples:
  matmeta project --service mdf dataset.yaml
  matmeta project -s citrine dataset.json > pif.json`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func runProject(cmd *cobra.Command, args []string) error {
	service, err := schema.ParseService(projectService)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	rec := mustReadRecord(args[0])

	projector, err := payload.For(service, payload.WithLogger(logger))
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	out, err := projector.Project(rec)
	if err != nil {
		var malformed *validate.MalformedSubstructureError
		if validate.IsMissing(err) || errors.As(err, &malformed) {
			exitWithError(ExitDataError, "%s: %v", service, err)
		}
		exitWithError(ExitError, "%s: %v", service, err)
	}

	logger.Debug("payload built", zap.String("service", string(service)))
	// Payloads are JSON documents; --human does not change them
	return outputJSON(out)
}
