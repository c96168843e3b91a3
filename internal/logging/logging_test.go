package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level)
		if err != nil {
			t.Errorf("New(%q) error: %v", level, err)
			continue
		}
		_ = logger.Sync()
	}
	if _, err := New("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, zapcore.WarnLevel)
	logger.Info("hidden")
	logger.Warn("file collision", zap.String("path", "src/Z.js"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "src/Z.js") {
		t.Errorf("unexpected output: %q", out)
	}
}
