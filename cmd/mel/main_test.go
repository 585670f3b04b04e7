package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/mel/config"
)

func TestParseFlags(t *testing.T) {
	opt, err := parseFlags([]string{"-b", "-w", "80", "-l", "12", "notes.txt"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opt.backup || opt.width != 80 || opt.line != 12 || opt.file != "notes.txt" {
		t.Fatalf("opt=%+v", opt)
	}

	opt, err = parseFlags([]string{"--line", "3"}, io.Discard)
	if err != nil {
		t.Fatalf("parse long form: %v", err)
	}
	if opt.line != 3 || opt.file != "" || opt.width != -1 {
		t.Fatalf("opt=%+v", opt)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	if _, err := parseFlags([]string{"-l", "-2"}, io.Discard); err == nil {
		t.Fatalf("expected error for negative line")
	}
	if _, err := parseFlags([]string{"a", "b"}, io.Discard); err == nil {
		t.Fatalf("expected error for two files")
	}
	if _, err := parseFlags([]string{"-w"}, io.Discard); err == nil {
		t.Fatalf("expected error for missing width")
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "tab_stop = 8\ncolumn_marker = 72\nbackup = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(options{configPath: path, width: -1})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TabStop != 8 || cfg.ColumnMarker != 72 || cfg.Backup {
		t.Fatalf("cfg=%+v", cfg)
	}

	cfg, err = loadConfig(options{configPath: path, width: 100, backup: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ColumnMarker != 100 || !cfg.Backup {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("nope = 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadConfig(options{configPath: path, width: -1}); err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("err=%v, want error naming %s", err, path)
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines, err := loadDocument(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := strings.Join(lines, "|"), "one|two"; got != want {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	lines, err = loadDocument(filepath.Join(dir, "missing.txt"), false)
	if err != nil || len(lines) != 0 {
		t.Fatalf("missing file: lines=%q err=%v", lines, err)
	}
}

func TestPrintConfig_ReflectsFlags(t *testing.T) {
	opt, err := parseFlags([]string{"-print-config", "-w", "72", "-b"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opt.dumpConfig {
		t.Fatalf("expected -print-config to be set")
	}
	opt.configPath = filepath.Join(t.TempDir(), "none.toml")
	cfg, err := loadConfig(opt)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var out bytes.Buffer
	if err := printConfig(&out, cfg); err != nil {
		t.Fatalf("print: %v", err)
	}
	got, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("parse printed config %q: %v", out.String(), err)
	}
	if got != cfg || got.ColumnMarker != 72 || !got.Backup {
		t.Fatalf("printed=%+v, want %+v", got, cfg)
	}
}
