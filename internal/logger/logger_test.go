package logger

import (
	"os"
	"strings"
	"testing"
)

func TestLogStoresAndPersists(t *testing.T) {
	chdirTemp(t)

	l := New()
	l.Log("first line")
	l.Log("second line")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() = %d entries, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "first line") || !strings.HasSuffix(lines[1], "second line") {
		t.Errorf("lines lost content: %v", lines)
	}
	if !strings.HasPrefix(lines[0], "[") {
		t.Errorf("line missing timestamp prefix: %q", lines[0])
	}

	data, err := os.ReadFile(LogFilePath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "first line") || !strings.Contains(string(data), "second line") {
		t.Errorf("log file missing entries: %q", data)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	chdirTemp(t)

	l := New()
	l.Log("kept")
	lines := l.Lines()
	lines[0] = "clobbered"
	if got := l.Lines()[0]; !strings.HasSuffix(got, "kept") {
		t.Errorf("internal state mutated through returned slice: %q", got)
	}
}

// chdirTemp switches into a fresh temp dir for the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
