// Package cmd implements the CLI application to manage a savings ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/savings"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.csv", "Path to the ledger file")
var configFile = flag.String("config", defaultConfigPath(), "Path to the optional TOML configuration file")

// Verbose turns on log output.
var Verbose = flag.Bool("v", false, "Print verbose logs on stderr")

// config is loaded by Setup.
var config = DefaultConfig()

// Commands lists every subcommand with its help group.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"records", &addCmd{}},
	{"records", &previewCmd{}},
	{"records", &fmtCmd{}},
	{"reports", &listCmd{}},
	{"reports", &summaryCmd{}},
	{"reports", &chartCmd{}},
	{"reports", &exportCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// IsCommand reports whether name is a builtin subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmd := range Commands {
		if cmd.Command.Name() == name {
			return true
		}
	}
	return false
}

// Setup configures logging and applies the configuration file. It must be
// called after the global flags are parsed.
func Setup() error {
	if *Verbose {
		log.SetFlags(0)
		log.SetPrefix("sav: ")
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	config = cfg

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["ledger-file"] && cfg.LedgerFile != "" {
		*ledgerFile = cfg.LedgerFile
	}
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "savings", "config.toml")
}

// OpenLedger loads the application ledger file, wired to the terminal.
// A missing file yields an empty ledger.
func OpenLedger(assumeYes bool) (*savings.Ledger, error) {
	l := savings.NewLedger(
		savings.WithConfirmer(&terminalConfirmer{in: os.Stdin, out: os.Stderr, assumeYes: assumeYes || config.Prompt.AssumeYes}),
		savings.WithNotifier(&terminalNotifier{out: os.Stderr}),
	)
	if err := l.LoadFile(*ledgerFile); err != nil {
		return nil, err
	}
	return l, nil
}

// ReadLedger loads the application ledger file without ever writing it.
// A missing file yields an empty ledger.
func ReadLedger() (*savings.Ledger, error) {
	l := savings.NewLedger(savings.WithNotifier(&terminalNotifier{out: os.Stderr}))
	if err := l.ReadFile(*ledgerFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return l, nil
}

// SaveLedger rewrites the application ledger file.
func SaveLedger(l *savings.Ledger) error {
	return l.SaveFile(*ledgerFile)
}

// printMarkdown renders md for the terminal on stdout. When rendering fails
// the raw markdown is printed instead.
func printMarkdown(md string) {
	style := glamour.WithAutoStyle()
	if s := config.Display.Style; s != "" && s != "auto" {
		style = glamour.WithStandardStyle(s)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
