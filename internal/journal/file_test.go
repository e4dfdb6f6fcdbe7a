package journal

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	input := "# 2020-01-01 09:00 work-start\ndid stuff\n\n# 2020-01-01 17:00 work-end\n"
	lines, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	want := []string{
		"# 2020-01-01 09:00 work-start",
		"did stuff",
		"",
		"# 2020-01-01 17:00 work-end",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ReadLines() = %q, want %q", lines, want)
	}
}

func TestReadLinesNoTrailingNewline(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("only line"))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 1 || lines[0] != "only line" {
		t.Errorf("ReadLines() = %q, want the final unterminated line kept", lines)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.md")
	content := "# 2020-01-01 09:00 work-start\n# 2020-01-01 17:00 work-end\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("LoadFile() returned %d lines, want 2", len(lines))
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.md"))
	if err == nil {
		t.Fatal("LoadFile() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), "open journal") {
		t.Errorf("error = %q, want it to mention opening the journal", err)
	}
}
