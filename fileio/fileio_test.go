package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func joinLines(lines []string) string { return strings.Join(lines, "|") }

func TestRead_StripsTerminatorsAndBOM(t *testing.T) {
	lines, err := Read(strings.NewReader("\xef\xbb\xbfone\r\ntwo\nthree"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got, want := joinLines(lines), "one|two|three"; got != want {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestRead_KeepsEmptyLines(t *testing.T) {
	lines, err := Read(strings.NewReader("a\n\nb\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(lines) != 3 || joinLines(lines) != "a||b" {
		t.Fatalf("lines=%q, want [a  b]", lines)
	}

	lines, err = Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read empty: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("lines=%q, want none", lines)
	}
}

func TestReadFile_Missing(t *testing.T) {
	lines, exists, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if exists || lines != nil {
		t.Fatalf("exists=%v lines=%q, want false and nil", exists, lines)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	n, err := Save(path, []string{"x", "\ty"}, SaveOptions{})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != 5 {
		t.Fatalf("n=%d, want 5", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "x\n\ty\n"; got != want {
		t.Fatalf("file=%q, want %q", got, want)
	}

	lines, exists, err := ReadFile(path)
	if err != nil || !exists {
		t.Fatalf("ReadFile: exists=%v err=%v", exists, err)
	}
	if got, want := joinLines(lines), "x|\ty"; got != want {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestSave_Backup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Save(path, []string{"new"}, SaveOptions{Backup: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	bak, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if got, want := string(bak), "old\n"; got != want {
		t.Fatalf("backup=%q, want %q", got, want)
	}
}

func TestSave_NoName(t *testing.T) {
	if _, err := Save("", []string{"a"}, SaveOptions{}); !errors.Is(err, ErrNoFileName) {
		t.Fatalf("err=%v, want ErrNoFileName", err)
	}
}

func TestEncode(t *testing.T) {
	if got, want := string(Encode([]string{"a", "", "b"})), "a\n\nb\n"; got != want {
		t.Fatalf("Encode=%q, want %q", got, want)
	}
	if got := Encode(nil); len(got) != 0 {
		t.Fatalf("Encode(nil)=%q, want empty", got)
	}
}
