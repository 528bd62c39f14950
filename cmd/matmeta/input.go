package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jasonthiese/commonmetadata/internal/config"
	"github.com/jasonthiese/commonmetadata/internal/importer"
	"github.com/jasonthiese/commonmetadata/internal/record"
	"github.com/jasonthiese/commonmetadata/internal/schema"
)

// inputFormat overrides format detection from the file extension.
var inputFormat string

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&inputFormat, "format", "", "Input format: json or yaml (default: from file extension; json for stdin)")
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}
	return data, nil
}

func formatFor(path string) importer.Format {
	if inputFormat != "" {
		return importer.Format(inputFormat)
	}
	return importer.FormatFromPath(path)
}

// readRecord reads a record from path, or stdin when path is "-".
func readRecord(path string) (record.Record, error) {
	data, err := readInput(path)
	if err != nil {
		return record.Record{}, err
	}
	return importer.ParseRecord(data, formatFor(path))
}

// readEntries reads either a single record or, for JSON input holding an
// array, every record in it. A single record is returned as entry 0.
// Array elements that fail to decode are returned as *importer.EntryError
// values in the second slice.
func readEntries(path string) ([]importer.Entry, []error, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, nil, err
	}
	if formatFor(path) == importer.FormatJSON && importer.IsArray(data) {
		entries, errs := importer.ParseRecords(data)
		if len(entries) == 0 && len(errs) == 1 {
			var entryErr *importer.EntryError
			if !errors.As(errs[0], &entryErr) {
				return nil, nil, errs[0]
			}
		}
		logger.Debug("records loaded",
			zap.String("path", path),
			zap.Int("records", len(entries)),
			zap.Int("rejected", len(errs)))
		return entries, errs, nil
	}
	rec, err := importer.ParseRecord(data, formatFor(path))
	if err != nil {
		return nil, nil, err
	}
	return []importer.Entry{{Record: rec}}, nil, nil
}

// mustReadRecord reads a record, exits on error.
func mustReadRecord(path string) record.Record {
	rec, err := readRecord(path)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	logger.Debug("record loaded",
		zap.String("path", path),
		zap.Int("additional", len(rec.Additional)))
	return rec
}

// resolveServices parses service names, falling back to the configured
// default list when none are given.
func resolveServices(names []string) ([]schema.Service, error) {
	if len(names) == 0 {
		cfg, err := loadConfigQuiet()
		if err != nil {
			return nil, err
		}
		return cfg.TargetServices()
	}
	services := make([]schema.Service, 0, len(names))
	for _, name := range names {
		s, err := schema.ParseService(name)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, nil
}

func loadConfigQuiet() (*config.GlobalConfig, error) {
	return config.LoadGlobalConfig()
}
