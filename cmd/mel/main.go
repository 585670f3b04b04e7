package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/mel"
	"github.com/iw2rmb/mel/buffer"
	"github.com/iw2rmb/mel/config"
	"github.com/iw2rmb/mel/editor"
	"github.com/iw2rmb/mel/fileio"
)

type options struct {
	configPath string
	backup     bool
	width      int
	line       int
	version    bool
	dumpConfig bool
	file       string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opt options
	fs := flag.NewFlagSet("mel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.configPath, "config", "", "config file (default ~/.config/mel/config.toml)")
	fs.BoolVar(&opt.backup, "b", false, "write <file>.bak before saving")
	fs.BoolVar(&opt.backup, "backup", false, "write <file>.bak before saving")
	fs.IntVar(&opt.width, "w", -1, "show a column marker at `column`")
	fs.IntVar(&opt.width, "width", -1, "show a column marker at `column`")
	fs.IntVar(&opt.line, "l", 0, "start on `line`")
	fs.IntVar(&opt.line, "line", 0, "start on `line`")
	fs.BoolVar(&opt.version, "v", false, "print the version and exit")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")
	fs.BoolVar(&opt.dumpConfig, "print-config", false, "print the effective configuration as TOML and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mel [options] [file]\n\n")
		fmt.Fprintf(stderr, "A small terminal editor with syntax highlighting and undo.\n")
		fmt.Fprintf(stderr, "Reads the document from stdin when it is not a terminal.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if opt.line < 0 {
		return opt, errors.New("line number must be positive")
	}
	if fs.NArg() > 1 {
		return opt, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opt.file = fs.Arg(0)
	return opt, nil
}

func loadConfig(opt options) (config.Config, error) {
	path := opt.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if opt.backup {
		cfg.Backup = true
	}
	if opt.width >= 0 {
		cfg.ColumnMarker = opt.width
	}
	return cfg, nil
}

// printConfig writes cfg as TOML, ready to be saved as a config file.
func printConfig(w io.Writer, cfg config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { _ = f.Close() }, nil
}

// loadDocument reads piped stdin, or the named file. A missing file opens an
// empty document bound to that name.
func loadDocument(file string, piped bool) ([]string, error) {
	if piped {
		lines, err := fileio.Read(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return lines, nil
	}
	if file == "" {
		return nil, nil
	}
	lines, _, err := fileio.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func run(args []string) error {
	opt, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opt.version {
		fmt.Printf("mel - version %s\n", mel.Version())
		return nil
	}

	cfg, err := loadConfig(opt)
	if err != nil {
		return err
	}
	if opt.dumpConfig {
		return printConfig(os.Stdout, cfg)
	}
	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	piped := !term.IsTerminal(int(os.Stdin.Fd()))
	lines, err := loadDocument(opt.file, piped)
	if err != nil {
		return err
	}
	fileName := opt.file
	if piped {
		fileName = ""
	}
	log.Info("starting", "version", mel.VersionTag(), "file", fileName, "rows", len(lines), "stdin", piped)

	ed := editor.New(editor.Config{
		Lines:     lines,
		FileName:  fileName,
		StartLine: opt.line,
		Buffer: buffer.Options{
			HistoryLimit: cfg.HistoryLimit,
			TabStop:      cfg.TabStop,
		},
		ShowLineNums: cfg.ShowLineNumbers,
		ColumnMarker: cfg.ColumnMarker,
		Style:        editor.DefaultStyle(),
		Clipboard:    editor.NewSystemClipboard(),
		Backup:       cfg.Backup,
		Logger:       log,
	})

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if piped {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(model{editor: ed}, progOpts...)
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "err", err)
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString("mel: " + err.Error() + "\n")
		os.Exit(1)
	}
}
