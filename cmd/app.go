// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *Config) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&rebalanceCmd{cfg: cfg}, "portfolio")
	c.Register(&checkCmd{cfg: cfg}, "portfolio")

	c.Register(&serveCmd{cfg: cfg}, "service")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose switches logging to debug level.
var Verbose = flag.Bool("v", false, "verbose logging")

// logger returns the application logger for 'cfg'.
func logger(cfg *Config) zerolog.Logger {
	level := cfg.LogLevel
	if *Verbose {
		level = "debug"
	}
	return NewLogger(level, true)
}

// DecodePortfolio decodes the portfolio file.
func DecodePortfolio(file string) (*rebalance.Portfolio, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := rebalance.DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return p, nil
}

// DecodePrices decodes the prices file, selecting prices with the JSONPath 'path' if not empty.
func DecodePrices(file, path, currency string) (rebalance.Prices, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	prices, err := rebalance.DecodePrices(f, path, currency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return prices, nil
}

// printMarkdown renders markdown for the terminal, or prints it as is if it
// cannot be rendered.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, md)
}

// stdout returns w, or os.Stdout if w is nil.
func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
