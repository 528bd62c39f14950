// Package importer reads common records from JSON and YAML documents.
package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jasonthiese/commonmetadata/internal/record"
)

// Format is an input document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseRecord parses a single record document.
func ParseRecord(data []byte, format Format) (record.Record, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return record.Record{}, fmt.Errorf("parsing YAML record: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return record.Record{}, fmt.Errorf("parsing JSON record: %w", err)
		}
	default:
		return record.Record{}, fmt.Errorf("unsupported format %q", format)
	}
	if raw == nil {
		return record.Record{}, fmt.Errorf("empty record document")
	}
	return record.Decode(raw)
}

// Entry is one decoded element of a record array.
type Entry struct {
	Index  int // 1-based position in the array
	Record record.Record
}

// EntryError reports an array element that could not be decoded.
type EntryError struct {
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// IsArray reports whether data holds a JSON array rather than a single
// record document.
func IsArray(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// ParseRecords parses a JSON array of records. Entries that fail to decode
// are reported as *EntryError values and skipped; the rest are returned in
// array order.
func ParseRecords(data []byte) ([]Entry, []error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, []error{fmt.Errorf("parsing JSON records: %w", err)}
	}

	var entries []Entry
	var errs []error
	for i, item := range raw {
		rec, err := record.Decode(item)
		if err != nil {
			errs = append(errs, &EntryError{Index: i + 1, Err: err})
			continue
		}
		entries = append(entries, Entry{Index: i + 1, Record: rec})
	}
	return entries, errs
}
