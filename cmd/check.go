package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

type checkCmd struct {
	cfg *Config

	portfolioFile string
	write         bool
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validates the portfolio file, optionally rewriting it into a canonical form"
}
func (*checkCmd) Usage() string {
	return `rebal check [-portfolio <file>] [-w]

  Validates the portfolio file: holding names must be unique, shares must not
  be negative, the allocation must only name existing holdings, and its
  fractions must sum to 1.
  With -w, the file is rewritten in a canonical JSON form.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolioFile, "portfolio", c.cfg.PortfolioFile, "Path to the portfolio file (JSON)")
	f.BoolVar(&c.write, "w", false, "rewrite the file in canonical form")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger(c.cfg)

	p, err := DecodePortfolio(c.portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", c.portfolioFile).Int("holdings", len(p.Names())).Msg("portfolio is valid")
	if !c.write {
		return subcommands.ExitSuccess
	}

	var b bytes.Buffer
	if err := rebalance.EncodePortfolio(&b, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.portfolioFile, b.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio %q: %v\n", c.portfolioFile, err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", c.portfolioFile).Msg("portfolio formatted")
	return subcommands.ExitSuccess
}
