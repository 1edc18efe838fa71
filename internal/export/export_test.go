package export

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tracker/internal/game"
)

func TestFormat(t *testing.T) {
	history := []game.AttemptResult{
		{Level: 1, Elapsed: 2.5, Completed: true},
		{Level: 1, Elapsed: 4.1, Completed: false},
	}

	got, err := Format(history)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	// Byte-exact: rows joined with newlines, no trailing newline
	want := "Level,Result,Time (s)\n1,Answered,2.50\n1,Gave Up,4.10"
	if got != want {
		t.Errorf("Format() = %q, want exactly %q", got, want)
	}
}

func TestFormatRounding(t *testing.T) {
	history := []game.AttemptResult{
		{Level: 3, Elapsed: 1.005, Completed: true},
		{Level: 4, Elapsed: 10, Completed: true},
	}

	got, err := Format(history)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[1] != "3,Answered,1.00" && lines[1] != "3,Answered,1.01" {
		t.Errorf("unexpected rounding: %q", lines[1])
	}
	if lines[2] != "4,Answered,10.00" {
		t.Errorf("expected two decimals on whole seconds, got %q", lines[2])
	}
}

func TestFormatEmptyHistory(t *testing.T) {
	if _, err := Format(nil); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	history := []game.AttemptResult{
		{Level: 2, Elapsed: 3.33, Completed: false},
	}

	path, err := Write(dir, 42, history)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("file written outside target dir: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read exported file: %v", err)
	}
	want := "Level,Result,Time (s)\n2,Gave Up,3.33"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", string(data), want)
	}
}

func TestWriteEmptyHistoryCreatesNothing(t *testing.T) {
	dir := t.TempDir()

	if _, err := Write(dir, 1, nil); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files, found %d", len(entries))
	}
}
