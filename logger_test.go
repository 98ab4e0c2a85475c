package vecmap

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	Logger().Debug("render pass", "figures", 3)
	if !strings.Contains(buf.String(), "render pass") {
		t.Errorf("log output missing record: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(nil, slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent default")
	}
}

func TestSetLogger_DrawLogsPhases(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	canvas := &recorder{}
	m := NewMap(equatorProjector(), canvas, Config{BuildingMode: BuildingExtruded})
	if err := m.Draw(testScene()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, phase := range []string{"drawing ways", "drawing roads", "drawing buildings", "drawing markers"} {
		if !strings.Contains(out, phase) {
			t.Errorf("log output missing phase %q", phase)
		}
	}
}
