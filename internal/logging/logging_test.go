package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(tt.level, &buf)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.level, err)
			}

			logger.Debug("debug message")
			logger.Warn("warn message", zap.String("source_name", "S"))

			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v:\n%s", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "warn message"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v:\n%s", got, tt.wantWarn, out)
			}
			if tt.wantWarn && !strings.Contains(out, `"source_name": "S"`) {
				t.Errorf("fields missing from output:\n%s", out)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Error("New(loud) expected error")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Error("OrNop(nil) = nil")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Error("OrNop(l) did not return l")
	}
}
