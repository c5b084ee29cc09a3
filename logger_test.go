package easel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	Logger().Debug("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("log output missing message: %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// The default logger discards everything without formatting.
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger enabled at error level")
	}
}
