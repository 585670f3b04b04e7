// Package fileio loads and saves documents as lines of text.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dimchansky/utfbom"
)

// ErrNoFileName is returned by Save when the document has no name yet.
var ErrNoFileName = errors.New("fileio: no file name")

// BackupSuffix is appended to a file's name for its pre-save copy.
const BackupSuffix = ".bak"

// Read splits r into lines. A leading byte order mark is dropped, and so are
// line terminators ("\n" and "\r\n"). A final line without a terminator is
// kept.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(utfbom.SkipOnly(r))
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ReadFile loads the lines of path. A missing file is not an error: it
// yields no lines and exists=false, so the name can still be saved to.
func ReadFile(path string) (lines []string, exists bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err = Read(f)
	if err != nil {
		return nil, true, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, true, nil
}

// Encode renders lines the way Save writes them: every line, including the
// last, ends with "\n".
func Encode(lines []string) []byte {
	size := 0
	for _, l := range lines {
		size += len(l) + 1
	}
	out := make([]byte, 0, size)
	for _, l := range lines {
		out = append(out, l...)
		out = append(out, '\n')
	}
	return out
}

type SaveOptions struct {
	// Backup copies the existing file to path+BackupSuffix before writing.
	Backup bool
}

// Save writes lines to path and returns the number of bytes written.
func Save(path string, lines []string, opt SaveOptions) (int, error) {
	if path == "" {
		return 0, ErrNoFileName
	}
	if opt.Backup {
		if err := backup(path); err != nil {
			return 0, err
		}
	}
	data := Encode(lines)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(data), nil
}

func backup(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}
	if err := os.WriteFile(path+BackupSuffix, data, 0o644); err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}
	return nil
}
