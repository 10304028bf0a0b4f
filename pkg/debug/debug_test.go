package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetEnabled(false) })
	return &buf
}

func TestLogDisabledIsSilent(t *testing.T) {
	buf := capture(t)
	SetEnabled(false)

	Log("hidden %d", 1)
	LogTiming("hidden", time.Millisecond)
	LogEnterExit("hidden")()
	Dump("hidden", 1)

	if buf.Len() != 0 {
		t.Errorf("expected no output while disabled, got %q", buf.String())
	}
}

func TestLogWritesWhenEnabled(t *testing.T) {
	buf := capture(t)

	Log("pager: advance -> %d", 3)
	if !strings.Contains(buf.String(), "pager: advance -> 3") {
		t.Errorf("missing message in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "TSG_DEBUG") {
		t.Errorf("missing logger name in %q", buf.String())
	}
}

func TestLogIf(t *testing.T) {
	buf := capture(t)

	LogIf(false, "skipped")
	LogIf(true, "kept")

	out := buf.String()
	if strings.Contains(out, "skipped") {
		t.Errorf("LogIf(false) wrote output: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("LogIf(true) missing output: %q", out)
	}
}

func TestLogEnterExit(t *testing.T) {
	buf := capture(t)

	LogEnterExit("render")()

	out := buf.String()
	if !strings.Contains(out, "-> render") || !strings.Contains(out, "<- render") {
		t.Errorf("expected enter and exit lines, got %q", out)
	}
}

func TestEnabled(t *testing.T) {
	capture(t)
	if !Enabled() {
		t.Error("expected Enabled after SetOutput")
	}
	SetEnabled(false)
	if Enabled() {
		t.Error("expected disabled after SetEnabled(false)")
	}
}
