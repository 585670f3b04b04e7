// Package config loads mel's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

const (
	HistoryUnlimited = -1
	HistoryDisabled  = 0
)

// Config holds every user-tunable setting. The zero value is not useful;
// start from Default.
type Config struct {
	// HistoryLimit caps the undo log: -1 unlimited, 0 disabled.
	HistoryLimit    int    `toml:"history_limit"`
	TabStop         int    `toml:"tab_stop"`
	ShowLineNumbers bool   `toml:"show_line_numbers"`
	ColumnMarker    int    `toml:"column_marker"` // 0 disables
	Backup          bool   `toml:"backup"`
	LogFile         string `toml:"log_file"`
}

func Default() Config {
	return Config{
		HistoryLimit:    80,
		TabStop:         4,
		ShowLineNumbers: true,
	}
}

// DefaultPath is ~/.config/mel/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("config: locate home: %w", err)
	}
	return filepath.Join(home, ".config", "mel", "config.toml"), nil
}

func (c Config) Validate() error {
	if c.HistoryLimit < HistoryUnlimited {
		return fmt.Errorf("%w: history_limit %d (want -1, 0 or a positive count)", ErrInvalid, c.HistoryLimit)
	}
	if c.TabStop < 1 {
		return fmt.Errorf("%w: tab_stop %d (want >= 1)", ErrInvalid, c.TabStop)
	}
	if c.ColumnMarker < 0 {
		return fmt.Errorf("%w: column_marker %d (want >= 0)", ErrInvalid, c.ColumnMarker)
	}
	return nil
}

// Parse decodes data over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the file at path; "~" is expanded. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: expand %s: %w", path, err)
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", p, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", p, err)
	}
	if c.LogFile != "" {
		if c.LogFile, err = homedir.Expand(c.LogFile); err != nil {
			return Config{}, fmt.Errorf("config: expand log_file: %w", err)
		}
	}
	return c, nil
}

// Marshal encodes c as TOML, for writing a starter file.
func Marshal(c Config) ([]byte, error) {
	return toml.Marshal(c)
}
