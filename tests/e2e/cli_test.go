package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

var tsgBinaryPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tsg-e2e")
	if err != nil {
		panic(err)
	}
	tsgBinaryPath = filepath.Join(dir, "tsg")
	cmd := exec.Command("go", "build", "-o", tsgBinaryPath, "./cmd/tsg")
	cmd.Dir = "../../"
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build tsg failed: " + err.Error() + "\n" + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// runTsg runs the binary with an isolated config home.
func runTsg(t *testing.T, args ...string) string {
	t.Helper()
	cmd := exec.Command(tsgBinaryPath, args...)
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir())
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("tsg %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

func TestPrintRendersHeading(t *testing.T) {
	out := runTsg(t, "--print")
	for _, want := range []string{"TypeScript Tutorial 2025", "Type Annotations", "Section 1 of 6"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPrintStartLesson(t *testing.T) {
	out := runTsg(t, "--print", "--lesson", "2", "--no-examples")
	if !strings.Contains(out, "Interfaces") || !strings.Contains(out, "Section 2 of 6") {
		t.Errorf("expected lesson 2 in output:\n%s", out)
	}
	if strings.Contains(out, "Testing User Component") {
		t.Error("expected examples pane hidden")
	}
}

func TestInvalidLessonExitsNonZero(t *testing.T) {
	cmd := exec.Command(tsgBinaryPath, "--print", "--lesson", "9")
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir())
	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %v", err)
	}
}

func TestDumpLessons(t *testing.T) {
	out := runTsg(t, "--dump-lessons")
	var entries []struct {
		ID         int    `json:"id"`
		Difficulty string `json:"difficulty"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(entries) != 6 || entries[5].Difficulty != "Advanced" {
		t.Errorf("unexpected catalog: %+v", entries)
	}
}

func TestVersion(t *testing.T) {
	if out := runTsg(t, "--version"); !strings.HasPrefix(out, "tsg v") {
		t.Errorf("unexpected version output %q", out)
	}
}
