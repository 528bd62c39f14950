package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", jsonIndent())
	return enc.Encode(v)
}

// jsonIndent returns the configured indent, falling back to the default
// when the config cannot be loaded.
func jsonIndent() string {
	if cfg, err := loadConfigQuiet(); err == nil {
		return cfg.Indent
	}
	return "  "
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...any) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		_ = outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResult reports whether a record satisfies one service.
type ValidationResult struct {
	Entry   int      `json:"entry,omitempty"` // 1-based array position; 0 for a single record
	Service string   `json:"service,omitempty"`
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Path     string   `json:"path"`
	Services []string `json:"services"`
	LogLevel string   `json:"log_level,omitempty"`
	Indent   string   `json:"indent"`
}
