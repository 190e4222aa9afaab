package label

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if _, ok := logger().Handler().(nopHandler); !ok {
		t.Fatalf("default handler = %T, want nopHandler", logger().Handler())
	}
	if logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should not be enabled")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Resolve(nil, 24)
	if !strings.Contains(buf.String(), "embedded font") {
		t.Errorf("fallback not logged:\n%s", buf.String())
	}

	SetLogger(nil)
	if _, ok := logger().Handler().(nopHandler); !ok {
		t.Errorf("handler after SetLogger(nil) = %T, want nopHandler", logger().Handler())
	}
}
